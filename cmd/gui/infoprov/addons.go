package infoprov

import (
	"strconv"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type AddonRegistry interface {
	Addon(id string) (*listitem.AddonTag, bool)
	Setting(id, key string) (string, bool)
}

// Addons answers System.HasAddon(id) style queries and the addon fields of
// list items carrying an addon tag.
type Addons struct {
	base
	registry AddonRegistry
}

func NewAddons(registry AddonRegistry) *Addons {
	return &Addons{registry: registry}
}

func (p *Addons) Name() string { return "addons" }

func (p *Addons) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeAddon, {Name: "listitem.addon", Start: infocode.ListItemAddonName, End: infocode.ListItemAddonIsEnabled}}
}

func (p *Addons) lookup(id string) (*listitem.AddonTag, bool) {
	if p.registry == nil || id == "" {
		return nil, false
	}
	return p.registry.Addon(id)
}

func (p *Addons) GetLabel(item *listitem.Item, q Query, _ *string) (string, bool) {
	switch q.Code() {
	case infocode.SystemAddonTitle, infocode.SystemAddonIcon, infocode.SystemAddonVersion:
		a, ok := p.lookup(q.Info.Data3)
		if !ok {
			return "", true
		}
		switch q.Code() {
		case infocode.SystemAddonTitle:
			return a.Name, true
		case infocode.SystemAddonVersion:
			return a.Version, true
		default:
			return "special://addons/" + a.ID + "/icon.png", true
		}
	case infocode.AddonSettingString:
		if p.registry == nil {
			return "", true
		}
		v, _ := p.registry.Setting(q.Info.Data3, q.Info.Data4)
		return v, true
	}

	if item == nil || item.Addon == nil {
		return "", false
	}
	a := item.Addon
	switch q.Code() {
	case infocode.ListItemAddonName:
		return a.Name, true
	case infocode.ListItemAddonVersion:
		return a.Version, true
	case infocode.ListItemAddonSummary:
		return a.Summary, true
	case infocode.ListItemAddonDescription:
		return a.Description, true
	case infocode.ListItemAddonCreator:
		return a.Creator, true
	case infocode.ListItemAddonType:
		return a.Type, true
	}
	return "", false
}

func (p *Addons) GetInt(_ *listitem.Item, q Query) (int, bool) {
	if q.Code() != infocode.AddonSettingInt || p.registry == nil {
		return 0, false
	}
	v, ok := p.registry.Setting(q.Info.Data3, q.Info.Data4)
	if !ok {
		return 0, true
	}
	n, _ := strconv.Atoi(v)
	return n, true
}

func (p *Addons) GetBool(item *listitem.Item, q Query) (bool, bool) {
	switch q.Code() {
	case infocode.SystemHasAddon:
		_, ok := p.lookup(q.Info.Data3)
		return ok, true
	case infocode.SystemAddonIsEnabled:
		a, ok := p.lookup(q.Info.Data3)
		return ok && a.Enabled, true
	case infocode.AddonSettingBool:
		if p.registry == nil {
			return false, true
		}
		v, _ := p.registry.Setting(q.Info.Data3, q.Info.Data4)
		return v == "true", true
	case infocode.ListItemAddonIsEnabled:
		if item == nil || item.Addon == nil {
			return false, false
		}
		return item.Addon.Enabled, true
	}
	return false, false
}
