package query

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const scenario = `{
  "player": {"has_media": true, "speed": 1},
  "playing": {"label": "Ran", "path": "/movies/ran.mkv", "video": {"title": "Ran"}},
  "skin": {"bools": {"compact": true}},
  "items": [{"label": "Alien"}, {"label": "Heat"}, {"label": "Ran"}]
}`

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "scenario.json")
	if err := os.WriteFile(path, []byte(scenario), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunJSON(t *testing.T) {
	params := &Params{
		Labels:     []string{"Player.Title", "Container.NumItems", "$INFO[ListItem.Label,> ]", "Player.Bogus"},
		Conditions: []string{"Skin.HasSetting(compact)", "Player.Paused"},
		Scenario:   setup(t),
		JSON:       true,
		LogLevel:   "error",
	}
	var out bytes.Buffer
	if err := Run(context.Background(), params, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var results []Result
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	want := []string{"Ran", "3", "> Alien", "", "true", "false"}
	if len(results) != len(want) {
		t.Fatalf("results = %+v", results)
	}
	for i, w := range want {
		if results[i].Value != w {
			t.Errorf("%s = %q, want %q", results[i].Expression, results[i].Value, w)
		}
	}
	if results[0].Info != "player.title" {
		t.Errorf("info = %q", results[0].Info)
	}
	if !strings.HasPrefix(results[3].Info, "invalid") {
		t.Errorf("bogus label info = %q", results[3].Info)
	}
	if results[4].Kind != "condition" {
		t.Errorf("kind = %q", results[4].Kind)
	}
}

func TestRunTable(t *testing.T) {
	params := &Params{Labels: []string{"Player.Title"}, Scenario: setup(t), LogLevel: "error"}
	var out bytes.Buffer
	if err := Run(context.Background(), params, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range []string{"Expression", "Player.Title", "Ran"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("table lacks %q:\n%s", s, out.String())
		}
	}
}

func TestRunNeedsInput(t *testing.T) {
	if err := Run(context.Background(), &Params{}, &bytes.Buffer{}); err == nil {
		t.Errorf("empty query accepted")
	}
}

func TestRunItemFromNFODir(t *testing.T) {
	path := setup(t)
	dir := t.TempDir()
	nfos := map[string]string{
		"alien.nfo": `<movie><title>Alien</title><year>1979</year></movie>`,
		"heat.nfo":  `<movie><title>Heat</title><year>1995</year></movie>`,
	}
	for name, body := range nfos {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	params := &Params{
		Labels:   []string{"ListItem.Label", "Container.NumItems"},
		Scenario: path,
		Dir:      dir,
		Item:     2,
		JSON:     true,
		LogLevel: "error",
	}
	var out bytes.Buffer
	if err := Run(context.Background(), params, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var results []Result
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if len(results) != 2 || results[0].Value != "Heat" || results[1].Value != "2" {
		t.Errorf("results = %+v", results)
	}

	params.Item = 3
	if err := Run(context.Background(), params, &bytes.Buffer{}); err == nil {
		t.Errorf("out of range item accepted")
	}
}
