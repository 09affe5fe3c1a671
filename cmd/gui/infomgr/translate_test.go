package infomgr

import (
	"testing"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
)

func TestTranslate(t *testing.T) {
	m := New()
	tests := []struct {
		label string
		want  infocode.Info
	}{
		{"player.time", infocode.Info{Code: infocode.PlayerTime}},
		{"System.Time(hh:mm:ss)", infocode.Info{Code: infocode.SystemTime, Data3: "hh:mm:ss"}},
		{"Skin.HasSetting(HideClock)", infocode.Info{Code: infocode.SkinBool, Data3: "HideClock"}},
		{"Skin.String(Theme,Dark)", infocode.Info{Code: infocode.SkinStringIsEqual, Data3: "Theme", Data4: "Dark"}},
		{"Control.HasFocus(50)", infocode.Info{Code: infocode.ControlHasFocus, Data1: 50}},
		{"Window.IsActive(home)", infocode.Info{Code: infocode.WindowIsActive, Data3: "home"}},
		{"Container(50).NumItems", infocode.Info{Code: infocode.ContainerNumItems, Data1: 50}},
		{"Container(50).Row(2)", infocode.Info{Code: infocode.ContainerRow, Data1: 50, Data2: 2}},
		{"ListItem.Property(Foo)", infocode.Info{Code: infocode.ListItemProperty, Data3: "Foo"}},
		{"ListItem(-1).Label", infocode.Info{Code: infocode.ListItemLabel | infocode.FlagListItemWrap, Data2: -1}},
		{"ListItemPosition(3).Label", infocode.Info{Code: infocode.ListItemLabel | infocode.FlagListItemPosition, Data2: 3}},
		{"Container(7).ListItemAbsolute(4).Art(poster)", infocode.Info{
			Code: infocode.ListItemArt | infocode.FlagListItemAbsolute | infocode.FlagListItemContainer, Data1: 7, Data2: 4, Data3: "poster",
		}},
		{"ListItem.Picture.CameraMake", infocode.Info{Code: infocode.ListItemPictureCameraMake}},
		{"System.AddonTitle(plugin.video.x)", infocode.Info{Code: infocode.SystemAddonTitle, Data3: "plugin.video.x"}},
		{"true", infocode.Info{Code: infocode.SystemAlwaysTrue}},
	}
	for _, tt := range tests {
		got, err := m.Translate(tt.label)
		if err != nil {
			t.Errorf("Translate(%q): %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Translate(%q) = %+v, want %+v", tt.label, got, tt.want)
		}
	}
}

func TestTranslateComparisons(t *testing.T) {
	m := New()
	got, err := m.Translate("String.IsEqual(ListItem.Label,Apple)")
	if err != nil {
		t.Fatal(err)
	}
	if got.Value() != infocode.StringIsEqual || got.Data1 == 0 || got.Data2 != 0 || got.Data3 != "Apple" {
		t.Errorf("literal operand: %+v", got)
	}
	got, err = m.Translate("Integer.IsGreater(Container.NumItems,Playlist.Length)")
	if err != nil {
		t.Fatal(err)
	}
	if got.Data1 == 0 || got.Data2 == 0 {
		t.Errorf("info operand not registered: %+v", got)
	}
}

func TestTranslateErrors(t *testing.T) {
	m := New()
	for _, label := range []string{
		"",
		"nope",
		"player.time(",
		"container(x).numitems",
		"container.listitem(a).label",
		"listitem(1)",
		"string.isequal(listitem.label)",
		"skin.hassetting(a,b,c)",
	} {
		if _, err := m.Translate(label); err == nil {
			t.Errorf("Translate(%q) should fail", label)
		}
	}
}
