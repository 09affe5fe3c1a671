package labels

import (
	"bytes"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	tests := []struct {
		filter, rng string
		contains    string
		excludes    string
	}{
		{"", "player", "player.title", "listitem.label"},
		{"title", "", "listitem.title", "player.hasmedia"},
		{"nowrecording", "pvr", "pvr.nowrecordingtitle", "player.title"},
	}
	for _, tt := range tests {
		names := map[string]bool{}
		for _, l := range List(tt.filter, tt.rng) {
			names[l.Name] = true
			if tt.rng != "" && l.Range != tt.rng {
				t.Errorf("List(%q, %q) returned %s from %s", tt.filter, tt.rng, l.Name, l.Range)
			}
		}
		if !names[tt.contains] || names[tt.excludes] {
			t.Errorf("List(%q, %q): want %s without %s", tt.filter, tt.rng, tt.contains, tt.excludes)
		}
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&Params{Filter: "skin.has"}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "skin.hassetting") {
		t.Errorf("output lacks skin.hassetting:\n%s", out.String())
	}
	if err := Run(&Params{Range: "bogus"}, &out); err == nil {
		t.Errorf("unknown range accepted")
	}
}
