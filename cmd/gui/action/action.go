// Package action couples action strings with optional conditions, as used
// for control navigation (onup, ondown, ...) and click handlers.
package action

import (
	"strconv"
	"strings"

	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
)

type Evaluator interface {
	EvaluateBool(expr string, window int, item *listitem.Item) bool
}

// Env is what executing actions needs: conditions and a message bus.
type Env interface {
	Evaluator
	message.Sender
}

// CondAction is one action guarded by an optional condition. A purely
// numeric action is a navigation target control id.
type CondAction struct {
	Condition string `json:"condition,omitempty"`
	Action    string `json:"action"`
}

func (c CondAction) isNavigation() bool {
	_, err := strconv.Atoi(strings.TrimSpace(c.Action))
	return err == nil
}

func (c CondAction) met(ev Evaluator, item *listitem.Item) bool {
	return c.Condition == "" || ev.EvaluateBool(c.Condition, 0, item)
}

type Action struct {
	actions []CondAction
	// SendThreadMessages queues GUI_MSG_EXECUTE instead of sending it
	// synchronously.
	SendThreadMessages bool
}

func New(actions ...CondAction) *Action {
	return &Action{actions: actions}
}

// Navigate returns an action holding a single unconditional navigation id.
func Navigate(id int) *Action {
	a := &Action{}
	a.SetNavigation(id)
	return a
}

func (a *Action) Append(c CondAction) {
	a.actions = append(a.actions, c)
}

func (a *Action) Actions() []CondAction { return a.actions }

func (a *Action) HasAnyActions() bool { return a != nil && len(a.actions) > 0 }

// ExecuteActions sends one GUI_MSG_EXECUTE per satisfied non-navigation
// action, in list order. Conditions are all evaluated before anything is
// sent so an action cannot change which others run.
func (a *Action) ExecuteActions(env Env, controlID, parentID int, item *listitem.Item) bool {
	if !a.HasAnyActions() {
		return false
	}
	var run []string
	for _, c := range a.actions {
		if c.met(env, item) && !c.isNavigation() {
			run = append(run, c.Action)
		}
	}
	for _, s := range run {
		msg := message.Message{ID: message.Execute, SenderID: controlID, ControlID: parentID, StringParam: s, Item: item}
		if a.SendThreadMessages {
			env.SendThreadMessage(msg)
		} else {
			env.SendMessage(&msg)
		}
	}
	return len(run) > 0
}

// GetNavigation returns the first satisfied navigation id, 0 if none.
func (a *Action) GetNavigation(ev Evaluator) int {
	if a == nil {
		return 0
	}
	for _, c := range a.actions {
		if !c.isNavigation() || !c.met(ev, nil) {
			continue
		}
		id, _ := strconv.Atoi(strings.TrimSpace(c.Action))
		return id
	}
	return 0
}

// SetNavigation replaces the unconditional navigation id, or appends one.
func (a *Action) SetNavigation(id int) {
	if id == 0 {
		return
	}
	s := strconv.Itoa(id)
	for i, c := range a.actions {
		if c.isNavigation() && c.Condition == "" {
			a.actions[i].Action = s
			return
		}
	}
	a.actions = append(a.actions, CondAction{Action: s})
}

func (a *Action) HasActionsMeetingCondition(ev Evaluator) bool {
	if a == nil {
		return false
	}
	for _, c := range a.actions {
		if c.met(ev, nil) {
			return true
		}
	}
	return false
}
