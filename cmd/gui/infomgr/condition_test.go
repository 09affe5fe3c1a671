package infomgr

import (
	"testing"

	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type skinBools map[string]bool

func (s skinBools) Bool(n string) bool { return s[n] }
func (s skinBools) String(n string) string {
	if s[n] {
		return "on"
	}
	return ""
}
func (s skinBools) Theme() string       { return "" }
func (s skinBools) ColourTheme() string { return "" }
func (s skinBools) AspectRatio() string { return "" }
func (s skinBools) Font() string        { return "" }

func newSkinManager(bools map[string]bool) *Manager {
	return New(WithProviders(infoprov.NewSkin(skinBools(bools)), infoprov.NewListItem(infoprov.SystemClock{}, nil)))
}

func TestConditionEvaluation(t *testing.T) {
	m := newSkinManager(map[string]bool{"a": true, "b": false, "c": true})
	tests := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"Skin.HasSetting(a)", true},
		{"!Skin.HasSetting(a)", false},
		{"Skin.HasSetting(a) + Skin.HasSetting(b)", false},
		{"Skin.HasSetting(a) | Skin.HasSetting(b)", true},
		{"!Skin.HasSetting(b) + Skin.HasSetting(c)", true},
		{"Skin.HasSetting(b) + Skin.HasSetting(a) | Skin.HasSetting(c)", true},
		{"Skin.HasSetting(b) + [Skin.HasSetting(a) | Skin.HasSetting(c)]", false},
		{"![Skin.HasSetting(a) + Skin.HasSetting(b)]", true},
		{"!!Skin.HasSetting(a)", true},
		{"true + !false", true},
		{"String.IsEqual(Skin.String(c),ON)", true},
		{"String.IsEmpty(Skin.String(b))", true},
	}
	for _, tt := range tests {
		if got := m.EvaluateBool(tt.expr, 0, nil); got != tt.want {
			t.Errorf("%q = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestInvalidConditionsAreFalse(t *testing.T) {
	m := newSkinManager(nil)
	for _, expr := range []string{
		"Skin.HasSetting(a) +",
		"[Skin.HasSetting(a)",
		"Skin.HasSetting(a)]",
		"+ Skin.HasSetting(a)",
		"unknown.label",
		"Skin.HasSetting(a) Skin.HasSetting(b)",
	} {
		c := m.Condition(expr)
		if c.Valid() {
			t.Errorf("%q compiled", expr)
		}
		if c.Evaluate(0, nil) {
			t.Errorf("%q evaluated true", expr)
		}
	}
}

func TestConditionCached(t *testing.T) {
	m := newSkinManager(nil)
	if m.Condition("Skin.HasSetting(a)") != m.Condition(" Skin.HasSetting(a) ") {
		t.Errorf("condition not cached")
	}
}

func TestIntegerComparisons(t *testing.T) {
	m := New(WithProviders(infoprov.NewListItem(infoprov.SystemClock{}, nil)))
	item := &listitem.Item{Video: &listitem.VideoTag{Season: 3, Episode: 5}}
	tests := []struct {
		expr string
		want bool
	}{
		{"Integer.IsGreater(ListItem.Season,2)", true},
		{"Integer.IsLess(ListItem.Season,ListItem.Episode)", true},
		{"Integer.IsEqual(ListItem.Episode,5)", true},
		{"Integer.IsGreaterOrEqual(ListItem.Season,4)", false},
		{"Integer.IsEqual(ListItem.Episode,five)", false},
	}
	for _, tt := range tests {
		if got := m.EvaluateBool(tt.expr, 0, item); got != tt.want {
			t.Errorf("%q = %v, want %v", tt.expr, got, tt.want)
		}
	}
}
