package action

import (
	"testing"

	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
)

// fakeEnv treats conditions as names of true flags and records messages.
type fakeEnv struct {
	truths map[string]bool
	sync   []message.Message
	queued []message.Message
}

func (f *fakeEnv) EvaluateBool(expr string, _ int, _ *listitem.Item) bool { return f.truths[expr] }

func (f *fakeEnv) SendMessage(msg *message.Message) bool {
	f.sync = append(f.sync, *msg)
	return true
}

func (f *fakeEnv) SendThreadMessage(msg message.Message) { f.queued = append(f.queued, msg) }

func TestExecuteActions(t *testing.T) {
	env := &fakeEnv{truths: map[string]bool{"yes": true}}
	a := New(
		CondAction{Action: "first"},
		CondAction{Condition: "no", Action: "skipped"},
		CondAction{Condition: "yes", Action: "second"},
		CondAction{Action: "42"},
	)
	item := listitem.New("x")
	if !a.ExecuteActions(env, 10, 20, item) {
		t.Fatal("ExecuteActions returned false")
	}
	if len(env.sync) != 2 || env.sync[0].StringParam != "first" || env.sync[1].StringParam != "second" {
		t.Fatalf("unexpected messages: %+v", env.sync)
	}
	m := env.sync[0]
	if m.ID != message.Execute || m.SenderID != 10 || m.ControlID != 20 || m.Item != item {
		t.Errorf("bad message %+v", m)
	}
	if len(env.queued) != 0 {
		t.Errorf("sync mode queued messages")
	}
}

func TestExecuteActionsThreadMode(t *testing.T) {
	env := &fakeEnv{}
	a := New(CondAction{Action: "go"})
	a.SendThreadMessages = true
	a.ExecuteActions(env, 1, 2, nil)
	if len(env.queued) != 1 || len(env.sync) != 0 {
		t.Errorf("thread mode: sync=%d queued=%d", len(env.sync), len(env.queued))
	}
}

func TestExecuteNothing(t *testing.T) {
	env := &fakeEnv{}
	if New().ExecuteActions(env, 1, 2, nil) {
		t.Errorf("empty action executed")
	}
	if New(CondAction{Action: "12"}).ExecuteActions(env, 1, 2, nil) {
		t.Errorf("navigation-only action executed")
	}
}

func TestNavigation(t *testing.T) {
	env := &fakeEnv{truths: map[string]bool{"alt": true}}
	a := New(CondAction{Condition: "nope", Action: "5"}, CondAction{Condition: "alt", Action: "7"}, CondAction{Action: "9"})
	if got := a.GetNavigation(env); got != 7 {
		t.Errorf("GetNavigation = %d, want 7", got)
	}
	env.truths["alt"] = false
	if got := a.GetNavigation(env); got != 9 {
		t.Errorf("GetNavigation = %d, want 9", got)
	}

	a.SetNavigation(11)
	if got := a.GetNavigation(env); got != 11 {
		t.Errorf("SetNavigation did not replace: %d", got)
	}
	if len(a.Actions()) != 3 {
		t.Errorf("SetNavigation appended instead of replacing")
	}

	b := New(CondAction{Action: "Close"})
	b.SetNavigation(3)
	if len(b.Actions()) != 2 || b.GetNavigation(env) != 3 {
		t.Errorf("SetNavigation should append: %+v", b.Actions())
	}
	b.SetNavigation(0)
	if b.GetNavigation(env) != 3 {
		t.Errorf("SetNavigation(0) changed navigation")
	}
}

func TestHasActionsMeetingCondition(t *testing.T) {
	env := &fakeEnv{truths: map[string]bool{}}
	a := New(CondAction{Condition: "x", Action: "5"})
	if a.HasActionsMeetingCondition(env) {
		t.Errorf("unmet condition reported")
	}
	env.truths["x"] = true
	if !a.HasActionsMeetingCondition(env) {
		t.Errorf("met condition not reported")
	}
	var nilAction *Action
	if nilAction.HasAnyActions() || nilAction.GetNavigation(env) != 0 {
		t.Errorf("nil action should be empty")
	}
}
