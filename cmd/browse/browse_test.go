package browse

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gigurra/guiinfo/cmd/common/config"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/session"
)

func newTestModel(t *testing.T, params *Params) model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.PVR.BackendFile = ""
	cfg.Skin.SettingsFile = ""
	cfg.GUI.ScrollTimeMs = 0
	opts, err := sessionOptions(params, 4)
	if err != nil {
		t.Fatalf("sessionOptions: %v", err)
	}
	items := make([]*listitem.Item, 12)
	for i := range items {
		items[i] = &listitem.Item{Label: fmt.Sprintf("Movie %02d", i), Label2: fmt.Sprintf("%d", 1990+i), Path: fmt.Sprintf("/movies/%02d.mkv", i)}
	}
	items[5].Label = "Ran"
	opts.Scenario = &session.Scenario{Items: items}
	s, err := session.New(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	t.Cleanup(s.Close)
	return newModel(s, footers(params), 60, 12)
}

func press(m model, msgs ...tea.KeyMsg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestListNavigation(t *testing.T) {
	m := newTestModel(t, &Params{Layout: "list"})
	view := m.View()
	if !strings.Contains(view, "Movie 00") || !strings.Contains(view, "1990") || strings.Contains(view, "Movie 04") {
		t.Fatalf("first page wrong:\n%s", view)
	}
	if !strings.Contains(view, "1/12") {
		t.Errorf("footer lacks position:\n%s", view)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.s.Label("ListItem.Label", nil); got != "Movie 02" {
		t.Errorf("after two downs focused %q", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if got := m.s.Label("ListItem.Label", nil); got != "Ran" {
		t.Errorf("letter jump focused %q", got)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	if got := m.s.Label("Container.CurrentItem", nil); got != "12" {
		t.Errorf("end moved to item %s", got)
	}
}

func TestPanelGrid(t *testing.T) {
	m := newTestModel(t, &Params{Layout: "panel", Columns: 3})
	rows, columns := m.grid()
	if columns != 3 || len(rows) != 4 {
		t.Fatalf("grid = %d rows x %d columns", len(rows), columns)
	}
	if rows[1][0].Index != 3 {
		t.Errorf("second row starts at item %d", rows[1][0].Index)
	}
}

func TestCopyFocusedPath(t *testing.T) {
	var copied string
	orig := clipboardWriteAll
	clipboardWriteAll = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { clipboardWriteAll = orig })

	m := newTestModel(t, &Params{Layout: "list"})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyCtrlY})
	if copied != "/movies/01.mkv" || !strings.Contains(m.status, "copied") {
		t.Errorf("copied %q, status %q", copied, m.status)
	}
}

func TestUnknownLayout(t *testing.T) {
	if _, err := sessionOptions(&Params{Layout: "carousel"}, 10); err == nil {
		t.Errorf("unknown layout accepted")
	}
}
