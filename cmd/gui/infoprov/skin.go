package infoprov

import (
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type SkinStore interface {
	Bool(name string) bool
	String(name string) string
	Theme() string
	ColourTheme() string
	AspectRatio() string
	Font() string
}

// Skin answers Skin.* queries from the persisted skin settings.
type Skin struct {
	base
	store SkinStore
}

func NewSkin(store SkinStore) *Skin {
	return &Skin{store: store}
}

func (p *Skin) Name() string { return "skin" }

func (p *Skin) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeSkin}
}

func (p *Skin) GetLabel(_ *listitem.Item, q Query, _ *string) (string, bool) {
	if p.store == nil {
		return "", false
	}
	switch q.Code() {
	case infocode.SkinString:
		return p.store.String(q.Info.Data3), true
	case infocode.SkinTheme:
		return p.store.Theme(), true
	case infocode.SkinColourTheme:
		return p.store.ColourTheme(), true
	case infocode.SkinAspectRatio:
		return p.store.AspectRatio(), true
	case infocode.SkinFont:
		return p.store.Font(), true
	}
	return "", false
}

func (p *Skin) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	if p.store == nil {
		return false, false
	}
	switch q.Code() {
	case infocode.SkinBool:
		return p.store.Bool(q.Info.Data3), true
	case infocode.SkinString:
		return p.store.String(q.Info.Data3) != "", true
	case infocode.SkinStringIsEqual:
		return lowerEq(p.store.String(q.Info.Data3), q.Info.Data4), true
	case infocode.SkinHasTheme:
		theme := p.store.Theme()
		if theme == "" || lowerEq(theme, "skindefault") {
			theme = "SKINDEFAULT"
		}
		return lowerEq(theme, q.Info.Data3), true
	}
	return false, false
}
