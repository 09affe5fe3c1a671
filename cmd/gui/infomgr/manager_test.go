package infomgr

import (
	"testing"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

// spy answers every query in its ranges with a fixed value and counts calls.
type spy struct {
	name   string
	ranges []infocode.Range
	label  string
	found  bool
	calls  int
	inits  int
}

func (s *spy) Name() string             { return s.name }
func (s *spy) Ranges() []infocode.Range { return s.ranges }
func (s *spy) InitCurrentItem(*listitem.Item) bool {
	s.inits++
	return true
}

func (s *spy) GetLabel(_ *listitem.Item, _ infoprov.Query, _ *string) (string, bool) {
	s.calls++
	return s.label, s.found
}

func (s *spy) GetInt(_ *listitem.Item, _ infoprov.Query) (int, bool) {
	s.calls++
	return len(s.label), s.found
}

func (s *spy) GetBool(_ *listitem.Item, _ infoprov.Query) (bool, bool) {
	s.calls++
	return s.label != "", s.found
}

func TestShortCircuit(t *testing.T) {
	first := &spy{name: "first", ranges: []infocode.Range{infocode.RangePlayer}, label: "first", found: true}
	second := &spy{name: "second", ranges: []infocode.Range{infocode.RangePlayer}, label: "second", found: true}
	m := New(WithProviders(first, second))

	id := m.Register("player.time")
	if got := m.GetLabel(id, 0, nil, nil); got != "first" {
		t.Errorf("got %q, want first", got)
	}
	m.GetBool(id, 0, nil)
	m.GetInt(id, 0, nil)
	if second.calls != 0 {
		t.Errorf("lower priority provider called %d times", second.calls)
	}
	if first.calls != 3 {
		t.Errorf("first provider called %d times, want 3", first.calls)
	}
}

func TestFallThroughToNextProvider(t *testing.T) {
	first := &spy{name: "first", ranges: []infocode.Range{infocode.RangePlayer}}
	second := &spy{name: "second", ranges: []infocode.Range{infocode.RangePlayer}, label: "second", found: true}
	m := New(WithProviders(first, second))
	if got := m.Label("player.time", 0, nil); got != "second" {
		t.Errorf("got %q, want second", got)
	}
	if first.calls == 0 {
		t.Errorf("first provider skipped")
	}
}

func TestRangeDispatch(t *testing.T) {
	var spies []*spy
	var providers []infoprov.Provider
	for _, r := range infocode.Ranges() {
		s := &spy{name: r.Name, ranges: []infocode.Range{r}}
		spies = append(spies, s)
		providers = append(providers, s)
	}
	m := New(WithProviders(providers...))

	for _, e := range infocode.Entries() {
		for _, s := range spies {
			s.calls = 0
		}
		info := infocode.Info{Code: e.Code}
		m.LabelOf(info, 0, &listitem.Item{}, nil)
		m.BoolOf(info, 0, &listitem.Item{})
		for _, s := range spies {
			if s.calls > 0 && !s.ranges[0].Contains(e.Code) {
				t.Errorf("%s: provider %s called outside its range", e.Name, s.name)
			}
		}
	}
}

func TestPlaylistRepeatOffEndToEnd(t *testing.T) {
	loc := localize.New()
	m := New(WithLocalizer(loc), WithProviders(infoprov.Standard(infoprov.Deps{Localizer: loc})...))
	if got := m.Label("Playlist.Repeat", 0, nil); got != "Off" {
		t.Errorf("Playlist.Repeat = %q, want Off", got)
	}
}

func TestInitCurrentItemReachesAllProviders(t *testing.T) {
	a := &spy{name: "a", ranges: []infocode.Range{infocode.RangePlayer}}
	b := &spy{name: "b", ranges: []infocode.Range{infocode.RangeSkin}}
	m := New(WithProviders(a, b))
	item := &listitem.Item{Path: "/x.mkv"}
	m.InitCurrentItem(item)
	if a.inits != 1 || b.inits != 1 {
		t.Errorf("inits = %d,%d", a.inits, b.inits)
	}
	if !m.IsPlaying(&listitem.Item{Path: "/x.mkv"}) || m.IsPlaying(&listitem.Item{Path: "/y.mkv"}) {
		t.Errorf("IsPlaying path comparison wrong")
	}
}

func TestRegisterDedupesAndRejects(t *testing.T) {
	m := New()
	a := m.Register("Player.Time")
	b := m.Register("player.time")
	if a == 0 || a != b {
		t.Errorf("ids %d %d", a, b)
	}
	if m.Register("bogus.label") != 0 {
		t.Errorf("bogus label registered")
	}
	if got := m.GetLabel(0, 0, nil, nil); got != "" {
		t.Errorf("invalid id resolved to %q", got)
	}
}

// fakeGUI serves one container and an optional window item.
type fakeGUI struct {
	infoprov.GUIContext
	windowItem *listitem.Item
	container  *fakeContainer
}

func (g *fakeGUI) CurrentListItem(int) *listitem.Item { return g.windowItem }

func (g *fakeGUI) Container(_, id int) infoprov.ContainerView {
	if g.container == nil || (id != 0 && id != g.container.id) {
		return nil
	}
	return g.container
}

type fakeContainer struct {
	infoprov.ContainerView
	id        int
	items     []*listitem.Item
	gotOffset int
	gotFlags  infocode.Code
}

func (c *fakeContainer) ListItem(offset int, flags infocode.Code) *listitem.Item {
	c.gotOffset, c.gotFlags = offset, flags
	if offset < 0 || offset >= len(c.items) {
		return nil
	}
	return c.items[offset]
}

func TestListItemResolution(t *testing.T) {
	items := []*listitem.Item{listitem.New("zero"), listitem.New("one"), listitem.New("two")}
	fc := &fakeContainer{id: 50, items: items}
	gui := &fakeGUI{windowItem: listitem.New("window"), container: fc}
	m := New(WithGUI(gui), WithProviders(infoprov.NewListItem(infoprov.SystemClock{}, nil)))

	tests := []struct {
		label      string
		want       string
		wantFlags  infocode.Code
		wantOffset int
	}{
		{"ListItem.Label", "window", 0, 0},
		{"Container(50).ListItem(2).Label", "two", infocode.FlagListItemContainer | infocode.FlagListItemWrap, 2},
		{"Container.ListItemNoWrap(1).Label", "one", infocode.FlagListItemContainer | infocode.FlagListItemNoWrap, 1},
		{"ListItemAbsolute(1).Label", "one", infocode.FlagListItemAbsolute, 1},
		{"Container(99).ListItem(1).Label", "", 0, 0},
	}
	for _, tt := range tests {
		fc.gotFlags, fc.gotOffset = 0, 0
		if got := m.Label(tt.label, 0, nil); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.label, got, tt.want)
		}
		if fc.gotFlags != tt.wantFlags || fc.gotOffset != tt.wantOffset {
			t.Errorf("%s: container saw offset=%d flags=%08X", tt.label, fc.gotOffset, uint32(fc.gotFlags))
		}
	}

	// an explicit item wins for plain list item labels
	if got := m.Label("ListItem.Label", 0, listitem.New("explicit")); got != "explicit" {
		t.Errorf("explicit item ignored: %q", got)
	}

	// without a window item the focused container's selection is used
	gui.windowItem = nil
	if got := m.Label("ListItem.Label", 0, nil); got != "zero" {
		t.Errorf("container fallback = %q", got)
	}
}
