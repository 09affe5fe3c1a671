package infomgr

import (
	"testing"

	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/localize"
)

func TestCompositeLabels(t *testing.T) {
	loc := localize.New()
	m := New(WithLocalizer(loc), WithProviders(infoprov.NewListItem(infoprov.SystemClock{}, nil)))
	item := &listitem.Item{Label: "Movie", Video: &listitem.VideoTag{Year: 2001}}
	tests := []struct {
		text string
		want string
	}{
		{"plain text", "plain text"},
		{"$INFO[ListItem.Label]", "Movie"},
		{"$INFO[ListItem.Year,(,)]", "(2001)"},
		{"$INFO[ListItem.Label] $INFO[ListItem.Year,[,]]", "Movie [2001]"},
		{"$INFO[ListItem.Genre,Genre: ]", ""},
		{"$INFO[ListItem.Label,a$COMMAb ]", "a,b Movie"},
		{"Repeat: $LOCALIZE[594]", "Repeat: Off"},
		{"$info[listitem.label]", "Movie"},
		{"$INFO[ListItem.Label", "$INFO[ListItem.Label"},
	}
	for _, tt := range tests {
		if got := m.ParseLabel(tt.text).Resolve(0, item); got != tt.want {
			t.Errorf("%q = %q, want %q", tt.text, got, tt.want)
		}
	}
	if !m.ParseLabel("Repeat: $LOCALIZE[594]").IsConstant() {
		t.Errorf("localized label should be constant")
	}
	if m.ParseLabel("$INFO[ListItem.Label]").IsConstant() {
		t.Errorf("info label reported constant")
	}
}
