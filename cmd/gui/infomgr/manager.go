// Package infomgr dispatches info queries to the ordered provider list and
// owns everything label strings turn into: registered infos, boolean
// conditions and composite labels.
package infomgr

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

type Option func(*Manager)

// WithProviders sets the provider list. Order is priority: the first
// provider to answer wins.
func WithProviders(providers ...infoprov.Provider) Option {
	return func(m *Manager) { m.providers = providers }
}

func WithGUI(gui infoprov.GUIContext) Option {
	return func(m *Manager) { m.gui = gui }
}

func WithLocalizer(loc infoprov.Localizer) Option {
	return func(m *Manager) { m.loc = loc }
}

// Manager is the info dispatcher. Queries run on the render thread; the
// registry is guarded so labels may be registered from any goroutine.
type Manager struct {
	providers []infoprov.Provider
	gui       infoprov.GUIContext
	loc       infoprov.Localizer

	mu     sync.RWMutex
	infos  []infocode.Info
	byText map[string]int

	conditions map[string]*Condition
	labels     map[string]*Label

	current *listitem.Item
}

func New(opts ...Option) *Manager {
	m := &Manager{
		infos:      []infocode.Info{{}},
		byText:     map[string]int{},
		conditions: map[string]*Condition{},
		labels:     map[string]*Label{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.loc == nil {
		m.loc = localize.New()
	}
	return m
}

// SetGUI attaches the window manager once it exists; it needs the manager
// itself for its visibility conditions.
func (m *Manager) SetGUI(gui infoprov.GUIContext) { m.gui = gui }

func (m *Manager) Providers() []infoprov.Provider { return m.providers }

func (m *Manager) Localizer() infoprov.Localizer { return m.loc }

// Register translates label once and returns its id. 0 means the label is
// invalid; such ids resolve to zero values.
func (m *Manager) Register(label string) int {
	key := strings.ToLower(strings.TrimSpace(label))
	m.mu.RLock()
	id, ok := m.byText[key]
	m.mu.RUnlock()
	if ok {
		return id
	}

	info, err := translate(label, m.Register)
	if err != nil {
		slog.Warn("infomgr: cannot translate label", "label", label, "error", err)
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byText[key]; ok {
		return id
	}
	m.infos = append(m.infos, info)
	id = len(m.infos) - 1
	m.byText[key] = id
	return id
}

// Info returns the translated form of a registered id.
func (m *Manager) Info(id int) (infocode.Info, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id <= 0 || id >= len(m.infos) {
		return infocode.Info{}, false
	}
	return m.infos[id], true
}

// Translate parses a label without registering it.
func (m *Manager) Translate(label string) (infocode.Info, error) {
	return translate(label, m.Register)
}

func (m *Manager) GetLabel(id, window int, item *listitem.Item, fallback *string) string {
	info, ok := m.Info(id)
	if !ok {
		return ""
	}
	return m.LabelOf(info, window, item, fallback)
}

func (m *Manager) GetInt(id, window int, item *listitem.Item) int {
	info, ok := m.Info(id)
	if !ok {
		return 0
	}
	return m.IntOf(info, window, item)
}

func (m *Manager) GetBool(id, window int, item *listitem.Item) bool {
	info, ok := m.Info(id)
	if !ok {
		return false
	}
	return m.BoolOf(info, window, item)
}

// Label registers and resolves a plain label in one call.
func (m *Manager) Label(label string, window int, item *listitem.Item) string {
	return m.GetLabel(m.Register(label), window, item, nil)
}

func (m *Manager) LabelOf(info infocode.Info, window int, item *listitem.Item, fallback *string) string {
	item, ok := m.itemFor(info, window, item)
	if !ok {
		return ""
	}
	if infocode.RangeString.Contains(info.Code) {
		if m.compare(info, window, item) {
			return m.loc.Get(localize.Yes)
		}
		return m.loc.Get(localize.No)
	}
	q := infoprov.Query{Info: info, ContextWindow: window}
	for _, p := range m.providers {
		if !infoprov.Claims(p, info.Code) {
			continue
		}
		if v, found := p.GetLabel(item, q, fallback); found {
			return v
		}
	}
	// Fall back to integer then bool providers, as skins use e.g.
	// $INFO[Container.NumItems] for int-only infos.
	for _, p := range m.providers {
		if !infoprov.Claims(p, info.Code) {
			continue
		}
		if v, found := p.GetInt(item, q); found {
			return strconv.Itoa(v)
		}
	}
	return ""
}

func (m *Manager) IntOf(info infocode.Info, window int, item *listitem.Item) int {
	item, ok := m.itemFor(info, window, item)
	if !ok {
		return 0
	}
	q := infoprov.Query{Info: info, ContextWindow: window}
	for _, p := range m.providers {
		if !infoprov.Claims(p, info.Code) {
			continue
		}
		if v, found := p.GetInt(item, q); found {
			return v
		}
	}
	return 0
}

func (m *Manager) BoolOf(info infocode.Info, window int, item *listitem.Item) bool {
	switch info.Value() {
	case infocode.SystemAlwaysTrue:
		return true
	case infocode.SystemAlwaysFalse:
		return false
	}
	item, ok := m.itemFor(info, window, item)
	if !ok {
		return false
	}
	if infocode.RangeString.Contains(info.Code) {
		return m.compare(info, window, item)
	}
	q := infoprov.Query{Info: info, ContextWindow: window}
	for _, p := range m.providers {
		if !infoprov.Claims(p, info.Code) {
			continue
		}
		if v, found := p.GetBool(item, q); found {
			return v
		}
	}
	return false
}

// itemFor picks the item a query is about. Only list item codes are
// redirected; everything else keeps the caller's item.
func (m *Manager) itemFor(info infocode.Info, window int, item *listitem.Item) (*listitem.Item, bool) {
	if !infocode.IsListItem(info.Code) {
		return item, true
	}
	plain := info.Data1 == 0 && info.Data2 == 0 && info.Flags() == 0
	if item != nil && plain {
		return item, true
	}
	resolved := m.CurrentListItem(window, info.Data1, info.Data2, info.Flags())
	return resolved, resolved != nil
}

const windowItemMask = infocode.FlagListItemContainer | infocode.FlagListItemNoWrap | infocode.FlagListItemPosition

// CurrentListItem resolves the list item a query in window refers to. With
// no container id, no offset and none of the container, nowrap and position
// flags the window's own current item wins; otherwise the active container
// is asked for the item at offset.
func (m *Manager) CurrentListItem(window, containerID, offset int, flags infocode.Code) *listitem.Item {
	if m.gui == nil {
		return nil
	}
	if containerID == 0 && offset == 0 && flags&windowItemMask == 0 {
		if item := m.gui.CurrentListItem(window); item != nil {
			return item
		}
	}
	c := m.gui.Container(window, containerID)
	if c == nil {
		slog.Debug("infomgr: no container for list item query", "window", window, "container", containerID)
		return nil
	}
	return c.ListItem(offset, flags)
}

func (m *Manager) compare(info infocode.Info, window int, item *listitem.Item) bool {
	left, _ := m.Info(info.Data1)
	switch info.Value() {
	case infocode.StringIsEmpty:
		return m.LabelOf(left, window, item, nil) == ""
	case infocode.StringIsEqual, infocode.StringStartsWith, infocode.StringEndsWith, infocode.StringContains:
		l := strings.ToLower(m.LabelOf(left, window, item, nil))
		r := strings.ToLower(info.Data3)
		if info.Data2 != 0 {
			r = strings.ToLower(m.GetLabel(info.Data2, window, item, nil))
		}
		switch info.Value() {
		case infocode.StringIsEqual:
			return l == r
		case infocode.StringStartsWith:
			return strings.HasPrefix(l, r)
		case infocode.StringEndsWith:
			return strings.HasSuffix(l, r)
		default:
			return strings.Contains(l, r)
		}
	}

	l := m.IntOf(left, window, item)
	var r int
	if info.Data2 != 0 {
		r = m.GetInt(info.Data2, window, item)
	} else {
		var err error
		if r, err = strconv.Atoi(info.Data3); err != nil {
			slog.Warn("infomgr: non-integer comparison operand", "operand", info.Data3)
			return false
		}
	}
	switch info.Value() {
	case infocode.IntegerIsEqual:
		return l == r
	case infocode.IntegerIsGreater:
		return l > r
	case infocode.IntegerIsGreaterOrEqual:
		return l >= r
	case infocode.IntegerIsLess:
		return l < r
	case infocode.IntegerIsLessOrEqual:
		return l <= r
	}
	return false
}

// InitCurrentItem tells every provider playback of item started. Provider
// results are logged only.
func (m *Manager) InitCurrentItem(item *listitem.Item) {
	m.current = item
	for _, p := range m.providers {
		if p.InitCurrentItem(item) {
			slog.Debug("infomgr: provider took current item", "provider", p.Name())
		}
	}
}

func (m *Manager) CurrentItem() *listitem.Item { return m.current }

// IsPlaying compares by path with the current item.
func (m *Manager) IsPlaying(item *listitem.Item) bool {
	return m.current.IsSamePath(item)
}

func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("infomgr(%d providers, %d infos)", len(m.providers), len(m.infos)-1)
}
