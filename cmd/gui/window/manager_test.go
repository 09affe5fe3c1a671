package window

import (
	"fmt"
	"testing"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/action"
	"github.com/gigurra/guiinfo/cmd/gui/container"
	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
	"github.com/google/uuid"
)

type fakeInfo struct {
	truths map[string]bool
}

func (f *fakeInfo) EvaluateBool(expr string, _ int, _ *listitem.Item) bool {
	return expr == "" || f.truths[expr]
}

func (f *fakeInfo) ResolveLabel(text string, _ int, item *listitem.Item) string {
	if item != nil {
		return item.Label
	}
	return text
}

type executed struct {
	command string
	item    *listitem.Item
}

type fakeExecutor struct {
	runs []executed
}

func (f *fakeExecutor) Execute(command string, msg *message.Message) bool {
	f.runs = append(f.runs, executed{command, msg.Item})
	return true
}

type fixture struct {
	m      *Manager
	exec   *fakeExecutor
	home   *Window
	list   *container.Container
	scroll *control.ScrollBar
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m := NewManager(&fakeInfo{truths: map[string]bool{"allowed": true}})
	exec := &fakeExecutor{}
	m.SetExecutor(exec)

	home := New(Home, "Home")
	m.Add(home)
	list := container.New(50, Home, m, container.List{}, container.Config{Height: 4, PageControl: 60})
	scroll := control.NewScrollBar(60, Home, m, false)
	home.Add(list)
	home.Add(scroll)

	items := make([]*listitem.Item, 10)
	for i := range items {
		items[i] = &listitem.Item{Label: fmt.Sprintf("Movie %d", i), Path: fmt.Sprintf("/movies/%d.mkv", i)}
	}
	list.SetItems(items, 0)
	if err := m.Activate(Home); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	return &fixture{m: m, exec: exec, home: home, list: list, scroll: scroll}
}

func TestActivateFocusesDefaultControl(t *testing.T) {
	f := newFixture(t)
	if f.m.ActiveWindow() != Home || !f.m.IsWindowActive(Home) {
		t.Fatalf("home not active")
	}
	if !f.m.ControlHasFocus(0, 50) || f.m.ControlHasFocus(Home, 60) {
		t.Errorf("default control not focused")
	}
	if c := f.m.Container(0, 0); c == nil || c.ID() != 50 {
		t.Errorf("Container(0,0) = %v", c)
	}
	if c := f.m.Container(Home, 60); c != nil {
		t.Errorf("scrollbar reported as container")
	}
	if c := f.m.Container(Videos, 50); c != nil {
		t.Errorf("unknown window returned a container")
	}
	if err := f.m.Activate(Videos); err == nil {
		t.Errorf("expected error for unknown window")
	}
}

func TestWindowID(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		id   int
		ok   bool
	}{
		{"home", Home, true},
		{"HOME", Home, true},
		{"10000", Home, true},
		{"videos", 0, false},
		{"10025", Videos, false},
	}
	for _, tt := range tests {
		id, ok := f.m.WindowID(tt.name)
		if ok != tt.ok || (ok && id != tt.id) {
			t.Errorf("WindowID(%q) = %d,%v", tt.name, id, ok)
		}
	}
}

func TestClickRunsActions(t *testing.T) {
	f := newFixture(t)
	f.home.SetClickActions(50, action.New(
		action.CondAction{Action: "PlayMedia"},
		action.CondAction{Condition: "denied", Action: "Notification(x,y)"},
		action.CondAction{Condition: "allowed", Action: "SetProperty(played,1)"},
	))
	f.list.OnAction(control.NewAction(control.ActionMoveDown))
	if !f.m.OnAction(control.NewAction(control.ActionSelectItem)) {
		t.Fatalf("click not handled")
	}
	if len(f.exec.runs) != 2 {
		t.Fatalf("runs = %v", f.exec.runs)
	}
	if f.exec.runs[0].command != "PlayMedia" || f.exec.runs[1].command != "SetProperty(played,1)" {
		t.Errorf("wrong commands: %v", f.exec.runs)
	}
	if f.exec.runs[0].item != f.list.Items()[1] {
		t.Errorf("click carried the wrong item")
	}
}

func TestNavigationMovesFocus(t *testing.T) {
	f := newFixture(t)
	f.list.SetNavigation(control.ActionMoveRight, action.Navigate(60))
	f.scroll.SetNavigation(control.ActionMoveLeft, action.Navigate(50))

	f.m.OnAction(control.NewAction(control.ActionMoveRight))
	if !f.m.ControlHasFocus(Home, 60) || f.list.HasFocus() {
		t.Fatalf("focus did not move to the scrollbar")
	}
	f.m.OnAction(control.NewAction(control.ActionMoveLeft))
	if !f.m.ControlHasFocus(Home, 50) || f.scroll.HasFocus() {
		t.Errorf("focus did not come back")
	}
}

func TestPageControlRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.m.Process(0)
	if f.scroll.PageSize() != 4 || f.scroll.NumItems() != 10 {
		t.Fatalf("scrollbar range = %d/%d", f.scroll.PageSize(), f.scroll.NumItems())
	}
	f.scroll.Move(3)
	if f.list.Offset() != 3 {
		t.Errorf("list offset after page change = %d", f.list.Offset())
	}
	for i := 1; i <= 20; i++ {
		f.m.Process(time.Duration(i) * 16 * time.Millisecond)
	}
	if f.scroll.Offset() != 3 {
		t.Errorf("scrollbar offset = %d", f.scroll.Offset())
	}
}

func TestGestureClaim(t *testing.T) {
	f := newFixture(t)
	f.m.OnAction(control.NewAction(control.ActionGestureBegin))
	claim := f.m.ExclusiveClaim()
	if claim.ControlID != 50 || claim.WindowID != Home {
		t.Fatalf("claim = %+v", claim)
	}
	if _, err := uuid.Parse(claim.Gesture); err != nil {
		t.Errorf("gesture id %q: %v", claim.Gesture, err)
	}

	// focus moves away but pointer events still reach the claiming list
	f.m.SendMessage(&message.Message{ID: message.SetFocus, ControlID: 60, WindowID: Home})
	f.m.OnAction(control.Action{ID: control.ActionGesturePan, OffsetY: -2})
	if f.list.Offset() != 2 {
		t.Errorf("pan did not reach the claiming control, offset %d", f.list.Offset())
	}
	f.m.OnAction(control.NewAction(control.ActionGestureEnd))
	if f.m.ExclusiveClaim().ControlID != 0 {
		t.Errorf("claim not released")
	}
}

func TestThreadMessages(t *testing.T) {
	f := newFixture(t)
	f.m.SendThreadMessage(message.Message{ID: message.ItemSelect, ControlID: 50, Param1: 3, WindowID: Home})
	if f.list.SelectedIndex() != 0 {
		t.Fatalf("thread message delivered early")
	}
	if n := f.m.ProcessThreadMessages(); n != 1 {
		t.Fatalf("processed %d", n)
	}
	if f.list.SelectedIndex() != 3 {
		t.Errorf("selected = %d", f.list.SelectedIndex())
	}
	if n := f.m.ProcessThreadMessages(); n != 0 {
		t.Errorf("queue not drained, %d left", n)
	}
}

func TestDialogs(t *testing.T) {
	f := newFixture(t)
	info := NewDialog(MovieInfo, "movieinformation")
	info.Add(control.NewScrollBar(5, MovieInfo, f.m, false))
	info.SetCurrentItem(&listitem.Item{Label: "Alien"})
	info.SetProperty("Rating", "8.5")
	f.m.Add(info)

	if err := f.m.ActivateByName("movieinformation"); err != nil {
		t.Fatalf("open dialog: %v", err)
	}
	if !f.m.IsDialogTopmost(MovieInfo) || !f.m.IsWindowActive(MovieInfo) || !f.m.IsWindowActive(Home) {
		t.Errorf("dialog state wrong")
	}
	if f.m.ActiveWindow() != Home {
		t.Errorf("dialog replaced the active window")
	}
	if got := f.m.CurrentListItem(0); got == nil || got.Label != "Alien" {
		t.Errorf("current item = %v", got)
	}
	if got := f.m.WindowProperty(MovieInfo, "rating"); got != "8.5" {
		t.Errorf("property = %q", got)
	}
	if !f.m.ControlHasFocus(0, 5) {
		t.Errorf("dialog control not focused")
	}

	f.m.OnAction(control.NewAction(control.ActionPreviousMenu))
	if f.m.IsWindowActive(MovieInfo) || f.m.IsDialogTopmost(MovieInfo) {
		t.Errorf("previous menu did not close the dialog")
	}
	if err := f.m.OpenDialog(Home); err == nil {
		t.Errorf("opened a non-dialog as dialog")
	}
}

func TestVisibilityConditions(t *testing.T) {
	f := newFixture(t)
	f.scroll.SetVisibleCondition("denied")
	f.m.Process(0)
	if f.m.ControlIsVisible(Home, 60) {
		t.Errorf("hidden scrollbar reported visible")
	}
	if !f.m.ControlIsVisible(Home, 50) || !f.m.ControlIsEnabled(Home, 50) {
		t.Errorf("list should be visible and enabled")
	}
	if f.m.ControlIsVisible(Home, 99) {
		t.Errorf("unknown control visible")
	}
}
