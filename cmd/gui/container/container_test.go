package container

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/action"
	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
)

var _ infoprov.ContainerView = (*Container)(nil)

type fakeEnv struct {
	truths map[string]bool
	sent   []message.Message
}

func (f *fakeEnv) EvaluateBool(expr string, _ int, _ *listitem.Item) bool { return f.truths[expr] }

func (f *fakeEnv) SendMessage(msg *message.Message) bool {
	f.sent = append(f.sent, *msg)
	return true
}

func (f *fakeEnv) SendThreadMessage(msg message.Message) { f.sent = append(f.sent, msg) }

func (f *fakeEnv) ResolveLabel(_ string, _ int, item *listitem.Item) string { return item.Label }

func (f *fakeEnv) messages(id message.ID) []message.Message {
	var out []message.Message
	for _, m := range f.sent {
		if m.ID == id {
			out = append(out, m)
		}
	}
	return out
}

func makeItems(labels ...string) []*listitem.Item {
	items := make([]*listitem.Item, len(labels))
	for i, l := range labels {
		items[i] = &listitem.Item{Label: l, Path: "/media/" + l}
	}
	return items
}

func numbered(n int) []*listitem.Item {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Item %02d", i)
	}
	return makeItems(labels...)
}

// newContainer builds a focused container whose page holds height items.
func newContainer(t *testing.T, s Strategy, height float64, items []*listitem.Item) (*Container, *fakeEnv) {
	t.Helper()
	env := &fakeEnv{truths: map[string]bool{}}
	c := New(50, 1000, env, s, Config{Width: 3, Height: height, CacheItems: 2})
	c.SetItems(items, 0)
	c.SetFocus(true)
	c.Process(0)
	return c, env
}

func TestLastPageSelectsLastItem(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
	}{
		{"list", List{}},
		{"panel", Panel{Columns: 3}},
		{"wraplist", WrapList{FixedPosition: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContainer(t, tt.strategy, 4, numbered(10))
			if tt.name != "wraplist" && c.SelectedIndex() != 0 {
				t.Fatalf("initial selection = %d", c.SelectedIndex())
			}
			c.OnAction(control.NewAction(control.ActionLastPage))
			if got := c.SelectedIndex(); got != 9 {
				t.Errorf("selected = %d, want 9", got)
			}
			c.OnAction(control.NewAction(control.ActionFirstPage))
			if got := c.SelectedIndex(); got != 0 {
				t.Errorf("after first page selected = %d, want 0", got)
			}
		})
	}
}

func TestJumpLetter(t *testing.T) {
	c, _ := newContainer(t, List{}, 4, makeItems("Apple", "Banana", "Cherry"))
	c.OnAction(control.Action{ID: control.ActionUnicode, Unicode: 'B'})
	if got := c.SelectedIndex(); got != 1 {
		t.Errorf("jump B selected %d, want 1", got)
	}
	c.Process(2 * time.Second)
	c.OnAction(control.Action{ID: control.ActionUnicode, Unicode: 'c'})
	if got := c.SelectedIndex(); got != 2 {
		t.Errorf("jump c selected %d, want 2", got)
	}
}

func TestJumpLetterPrefixBuffer(t *testing.T) {
	c, _ := newContainer(t, List{}, 10, makeItems("Bat", "Bear", "Bee", "Éclair", "Egg"))
	for _, r := range "BEE" {
		c.OnAction(control.Action{ID: control.ActionUnicode, Unicode: r})
	}
	if got := c.SelectedIndex(); got != 2 {
		t.Errorf("prefix BEE selected %d, want 2", got)
	}

	c.Process(5 * time.Second)
	c.OnAction(control.Action{ID: control.ActionUnicode, Unicode: 'E'})
	if got := c.SelectedIndex(); got != 3 {
		t.Errorf("E should match the accented label first, got %d", got)
	}
	// "EX" matches nothing, so the search restarts with X past the
	// current item and finds nothing either.
	c.OnAction(control.Action{ID: control.ActionUnicode, Unicode: 'X'})
	if got := c.SelectedIndex(); got != 3 {
		t.Errorf("failed match moved the selection to %d", got)
	}
}

func TestLetterOffsets(t *testing.T) {
	c, _ := newContainer(t, List{}, 4, makeItems("apple", "Avocado", "banana", "Élan", "eel"))
	want := []LetterOffset{{0, "A"}, {2, "B"}, {3, "E"}}
	got := c.LetterOffsets()
	if len(got) != len(want) {
		t.Fatalf("offsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLetterRoundTrip(t *testing.T) {
	c, _ := newContainer(t, List{}, 4, makeItems("A1", "A2", "B1", "B2", "C1", "C2", "D1", "D2"))
	for _, start := range []int{2, 4} {
		c.SelectItem(start)
		c.OnAction(control.NewAction(control.ActionNextLetter))
		if got := c.SelectedIndex(); got != start+2 {
			t.Fatalf("next letter from %d = %d", start, got)
		}
		c.OnAction(control.NewAction(control.ActionPrevLetter))
		if got := c.SelectedIndex(); got != start {
			t.Errorf("round trip from %d ended at %d", start, got)
		}
	}
}

func TestJumpSMS(t *testing.T) {
	c, _ := newContainer(t, List{}, 10, makeItems("Apple", "Banana", "Cherry", "Date"))
	for _, want := range []int{1, 2, 0, 1} {
		c.OnAction(control.NewAction(control.ActionJumpSMS2))
		if got := c.SelectedIndex(); got != want {
			t.Fatalf("SMS 2 selected %d, want %d", got, want)
		}
	}
	c.OnAction(control.NewAction(control.ActionJumpSMS3))
	if got := c.SelectedIndex(); got != 3 {
		t.Errorf("SMS 3 selected %d, want 3", got)
	}
	c.OnAction(control.NewAction(control.ActionJumpSMS9))
	if got := c.SelectedIndex(); got != 3 {
		t.Errorf("SMS 9 with no W-Z items moved to %d", got)
	}
}

func TestHoldRepeatCreditAccumulates(t *testing.T) {
	c, _ := newContainer(t, List{}, 10, numbered(1000))
	c.OnAction(control.NewAction(control.ActionMoveDown))

	prevCredit := c.scrollItemsPerFrame
	moved := -1
	for frame := 1; frame <= 20; frame++ {
		now := time.Duration(frame) * 10 * time.Millisecond
		c.Process(now)
		before := c.SelectedIndex()
		c.OnAction(control.Action{ID: control.ActionMoveDown, HoldTime: holdTimeStart + now})
		if c.SelectedIndex() != before {
			moved = frame
			break
		}
		if c.scrollItemsPerFrame < prevCredit {
			t.Fatalf("credit decreased without a move at frame %d: %v < %v", frame, c.scrollItemsPerFrame, prevCredit)
		}
		prevCredit = c.scrollItemsPerFrame
	}
	if moved < 0 || moved > 11 {
		t.Fatalf("first repeat happened at frame %d, want within 11", moved)
	}
	if c.scrollItemsPerFrame >= 1 {
		t.Errorf("credit not consumed: %v", c.scrollItemsPerFrame)
	}
}

func TestHoldRepeatFrameCap(t *testing.T) {
	c, _ := newContainer(t, List{}, 10, numbered(1000))
	c.OnAction(control.NewAction(control.ActionMoveDown))
	c.Process(time.Second)
	c.OnAction(control.Action{ID: control.ActionMoveDown, HoldTime: holdTimeEnd + holdTimeStart})
	// a capped 50ms frame at full speed over 1000 rows moves 0.05*1000/7 items
	if got := c.SelectedIndex(); got != 8 {
		t.Errorf("selected = %d, want 8", got)
	}
	if math.Abs(c.scrollItemsPerFrame-1.0/7) > 1e-9 {
		t.Errorf("leftover credit = %v", c.scrollItemsPerFrame)
	}
}

func TestWrapCorrectOffset(t *testing.T) {
	for n := 1; n <= 7; n++ {
		c, _ := newContainer(t, WrapList{}, 4, numbered(n))
		for offset := -20; offset <= 20; offset++ {
			for cursor := 0; cursor < 4; cursor++ {
				got := c.strategy.correctOffset(c, offset, cursor)
				if got < 0 || got >= n {
					t.Fatalf("n=%d correctOffset(%d,%d) = %d out of range", n, offset, cursor, got)
				}
				if again := c.strategy.correctOffset(c, got, 0); again != got {
					t.Fatalf("n=%d correctOffset not idempotent: %d -> %d", n, got, again)
				}
			}
		}
	}
}

func TestScrollConverges(t *testing.T) {
	c, _ := newContainer(t, List{}, 10, numbered(100))
	c.ScrollToOffset(50)
	if !c.scroller.IsScrolling() {
		t.Fatalf("not scrolling after ScrollToOffset")
	}
	if v := c.ScrollValue(); v != 48 {
		t.Errorf("long jump should snap within the correction range, value = %v", v)
	}
	transitions := 0
	prev := true
	frames := 0
	for frames = 1; frames <= 100; frames++ {
		c.Process(time.Duration(frames) * 16 * time.Millisecond)
		cur := c.scroller.IsScrolling()
		if prev && !cur {
			transitions++
		}
		prev = cur
	}
	if transitions != 1 {
		t.Errorf("scrolling to idle transitions = %d, want 1", transitions)
	}
	if v := c.ScrollValue(); v != 50 {
		t.Errorf("scroll value = %v, want 50", v)
	}
	if c.Offset() != 50 {
		t.Errorf("offset = %d", c.Offset())
	}
}

func TestListItemFlags(t *testing.T) {
	c, _ := newContainer(t, List{}, 4, numbered(10))
	c.SelectItem(2)
	wrap, nowrap := infocode.FlagListItemWrap, infocode.FlagListItemNoWrap
	pos, abs := infocode.FlagListItemPosition, infocode.FlagListItemAbsolute
	tests := []struct {
		offset int
		flags  infocode.Code
		want   int
	}{
		{0, 0, 2},
		{1, 0, 3},
		{-5, 0, -1},
		{-5, wrap, 7},
		{-5, wrap | nowrap, -1},
		{4, abs, 4},
		{1, pos, 1},
		{4, abs | pos, 4},
		{12, abs | wrap, 2},
		{12, abs, -1},
	}
	for _, tt := range tests {
		got := c.ListItem(tt.offset, tt.flags)
		switch {
		case tt.want < 0 && got != nil:
			t.Errorf("ListItem(%d, %08X) = %q, want nil", tt.offset, uint32(tt.flags), got.Label)
		case tt.want >= 0 && got != c.Items()[tt.want]:
			t.Errorf("ListItem(%d, %08X) wrong item, want index %d", tt.offset, uint32(tt.flags), tt.want)
		}
	}
}

func TestProcessFreesOffscreenItems(t *testing.T) {
	c, _ := newContainer(t, List{}, 5, numbered(20))
	frame := c.LastFrame()
	if len(frame.Items) == 0 {
		t.Fatalf("empty frame")
	}
	onScreen := 0
	for _, fi := range frame.Items {
		if fi.OnScreen {
			onScreen++
		}
		if fi.Focused != (fi.Index == 0) {
			t.Errorf("item %d focused=%v", fi.Index, fi.Focused)
		}
		if len(fi.Labels) != 1 || fi.Labels[0] != fi.Item.Label {
			t.Errorf("item %d labels = %v", fi.Index, fi.Labels)
		}
		if fi.Item.CurrentItem() != fi.Index+1 {
			t.Errorf("item %d CurrentItem = %d", fi.Index, fi.Item.CurrentItem())
		}
	}
	if onScreen != 5 {
		t.Errorf("on screen = %d, want 5", onScreen)
	}
	if !c.Items()[0].HasLayout() {
		t.Fatalf("visible item has no layout")
	}

	c.SelectItem(15)
	for f := 1; f <= 30; f++ {
		c.Process(time.Duration(f) * 16 * time.Millisecond)
	}
	if c.Items()[0].HasLayout() {
		t.Errorf("item 0 kept its layout after scrolling away")
	}
	for i := 11; i <= 15; i++ {
		if !c.Items()[i].HasLayout() {
			t.Errorf("visible item %d has no layout", i)
		}
	}
}

func TestPageControl(t *testing.T) {
	env := &fakeEnv{}
	c := New(50, 1000, env, List{}, Config{Height: 4, PageControl: 60})
	c.SetItems(numbered(10), 0)
	resets := env.messages(message.LabelReset)
	if len(resets) == 0 {
		t.Fatalf("no LABEL_RESET sent to the page control")
	}
	if r := resets[len(resets)-1]; r.ControlID != 60 || r.Param1 != 4 || r.Param2 != 10 || r.WindowID != 1000 {
		t.Errorf("bad range message %s", r.String())
	}
	c.Process(0)
	c.Process(16 * time.Millisecond)
	if sel := env.messages(message.ItemSelect); len(sel) != 1 || sel[0].Param1 != 0 {
		t.Errorf("expected a single ITEM_SELECT(0), got %v", sel)
	}

	c.OnMessage(&message.Message{ID: message.PageChange, SenderID: 60, Param1: 3})
	if c.Offset() != 3 {
		t.Errorf("offset after page change = %d", c.Offset())
	}
	c.OnMessage(&message.Message{ID: message.PageChange, SenderID: 61, Param1: 5})
	if c.Offset() != 3 {
		t.Errorf("page change from another control moved the list")
	}
}

func TestContainerInfo(t *testing.T) {
	c, _ := newContainer(t, List{}, 4, numbered(10))
	if c.NumPages() != 3 || c.CurrentPage() != 1 || !c.HasNext() || c.HasPrevious() {
		t.Errorf("first page: pages=%d page=%d next=%v prev=%v", c.NumPages(), c.CurrentPage(), c.HasNext(), c.HasPrevious())
	}
	c.OnAction(control.NewAction(control.ActionLastPage))
	if c.CurrentPage() != 3 || c.HasNext() || !c.HasPrevious() {
		t.Errorf("last page: page=%d next=%v prev=%v", c.CurrentPage(), c.HasNext(), c.HasPrevious())
	}
	if !c.IsMovingNext() || c.IsMovingPrevious() {
		t.Errorf("container should be moving forward")
	}
}

func TestMessages(t *testing.T) {
	c, _ := newContainer(t, List{}, 4, numbered(10))
	c.OnMessage(&message.Message{ID: message.ItemSelect, ControlID: 50, Param1: 5})
	msg := &message.Message{ID: message.ItemSelected, ControlID: 50}
	c.OnMessage(msg)
	if msg.Param1 != 5 || msg.Item != c.Items()[5] {
		t.Errorf("ITEM_SELECTED reply = %d", msg.Param1)
	}
	c.OnMessage(&message.Message{ID: message.MoveOffset, ControlID: 50, Param1: -2})
	if c.SelectedIndex() != 3 {
		t.Errorf("MOVE_OFFSET -2 selected %d", c.SelectedIndex())
	}

	// rebinding with -1 keeps the focused path
	c.Process(time.Second)
	items := append([]*listitem.Item{{Label: "New", Path: "/media/New"}}, c.Items()...)
	c.OnMessage(&message.Message{ID: message.LabelBind, ControlID: 50, Param1: -1, Items: items})
	if got := c.SelectedItem(); got == nil || got.Label != "Item 03" {
		t.Errorf("rebind lost the selection: %v", got)
	}

	c.OnMessage(&message.Message{ID: message.LabelReset, ControlID: 50})
	if c.NumAllItems() != 0 || c.SelectedIndex() != -1 || c.CanFocus() {
		t.Errorf("reset left %d items", c.NumAllItems())
	}
}

func TestMoveWrapAndNavigation(t *testing.T) {
	c, env := newContainer(t, List{}, 10, numbered(3))
	c.OnAction(control.NewAction(control.ActionMoveUp))
	if got := c.SelectedIndex(); got != 2 {
		t.Errorf("move up at the top should wrap, selected %d", got)
	}
	c.OnAction(control.NewAction(control.ActionMoveDown))
	if got := c.SelectedIndex(); got != 0 {
		t.Errorf("move down at the bottom should wrap, selected %d", got)
	}

	c.SetNavigation(control.ActionMoveUp, action.Navigate(7))
	c.OnAction(control.NewAction(control.ActionMoveUp))
	if got := c.SelectedIndex(); got != 0 {
		t.Errorf("navigation away should not move the cursor, selected %d", got)
	}
	focus := env.messages(message.SetFocus)
	if len(focus) != 1 || focus[0].ControlID != 7 {
		t.Errorf("expected SETFOCUS to 7, got %v", focus)
	}
	c.OnAction(control.NewAction(control.ActionMoveLeft))
	if len(env.messages(message.SetFocus)) != 1 {
		t.Errorf("left without navigation sent focus messages")
	}
}

func TestPanelMoves(t *testing.T) {
	c, _ := newContainer(t, Panel{Columns: 3}, 2, numbered(8))
	steps := []struct {
		dir  control.ActionID
		want int
	}{
		{control.ActionMoveRight, 1},
		{control.ActionMoveDown, 4},
		{control.ActionMoveDown, 7},
		{control.ActionMoveRight, 6},
		{control.ActionMoveLeft, 8 - 1},
		{control.ActionMoveUp, 4},
	}
	for i, s := range steps {
		c.OnAction(control.NewAction(s.dir))
		if got := c.SelectedIndex(); got != s.want {
			t.Fatalf("step %d (%s): selected %d, want %d", i, s.dir, got, s.want)
		}
	}
	if c.Row() != 0 || c.Column() != 1 {
		t.Errorf("row/column = %d/%d", c.Row(), c.Column())
	}
}

func TestGesture(t *testing.T) {
	c, env := newContainer(t, List{}, 5, numbered(30))
	if r := c.OnMouseEvent(control.NewAction(control.ActionGestureNotify)); r != control.EventPanVertical {
		t.Errorf("notify = %v", r)
	}
	c.OnMouseEvent(control.NewAction(control.ActionGestureBegin))
	if !c.GestureActive() {
		t.Fatalf("gesture not active")
	}
	c.OnMouseEvent(control.Action{ID: control.ActionGesturePan, OffsetY: -2.4})
	if c.ScrollValue() != 2.4 || c.Offset() != 2 {
		t.Errorf("pan: value=%v offset=%d", c.ScrollValue(), c.Offset())
	}
	c.OnMouseEvent(control.NewAction(control.ActionGestureEnd))
	claims := env.messages(message.ExclusiveMouse)
	if len(claims) != 2 || claims[0].SenderID != 50 || claims[1].SenderID != 0 {
		t.Fatalf("exclusive claims = %v", claims)
	}
	for f := 1; f <= 30; f++ {
		c.Process(time.Duration(f) * 16 * time.Millisecond)
	}
	if c.ScrollValue() != 2 || c.waitForScrollEnd || c.GestureActive() {
		t.Errorf("after settle: value=%v wait=%v", c.ScrollValue(), c.waitForScrollEnd)
	}
}

func TestClickSendsMessage(t *testing.T) {
	c, env := newContainer(t, List{}, 5, numbered(10))
	c.OnAction(control.Action{ID: control.ActionMouseLeftClick, X: 0.5, Y: 2.5})
	if c.SelectedIndex() != 2 {
		t.Errorf("click selected %d", c.SelectedIndex())
	}
	clicks := env.messages(message.Click)
	if len(clicks) != 1 || clicks[0].SenderID != 50 || clicks[0].Item != c.Items()[2] {
		t.Errorf("clicks = %v", clicks)
	}
}

func TestLayoutConditions(t *testing.T) {
	env := &fakeEnv{truths: map[string]bool{}}
	cfg := Config{Height: 6, Layouts: []Layout{
		{Condition: "big", Width: 1, Height: 2, Labels: []string{"x"}},
		{Width: 1, Height: 1, Labels: []string{"x"}},
	}}
	c := New(50, 1000, env, List{}, cfg)
	c.SetItems(numbered(20), 0)
	c.Process(0)
	if c.ItemsPerPage() != 6 {
		t.Fatalf("items per page = %d, want 6", c.ItemsPerPage())
	}
	env.truths["big"] = true
	c.Process(16 * time.Millisecond)
	// the focused layout list defaults to the same conditional layouts
	if c.ItemsPerPage() != 3 {
		t.Errorf("items per page after layout switch = %d, want 3", c.ItemsPerPage())
	}
}

func TestAutoScroll(t *testing.T) {
	env := &fakeEnv{truths: map[string]bool{"auto": true}}
	c := New(50, 1000, env, List{}, Config{Height: 4, AutoScroll: &AutoScroll{Condition: "auto", MoveTime: 100 * time.Millisecond}})
	c.SetItems(numbered(10), 0)
	for f := 0; f <= 8; f++ {
		c.Process(time.Duration(f) * 16 * time.Millisecond)
	}
	if c.SelectedIndex() != 1 {
		t.Errorf("auto scroll selected %d, want 1", c.SelectedIndex())
	}
}
