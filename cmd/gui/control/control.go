// Package control holds the control contract shared by windows and the
// basic control types: the navigable base and the scrollbar page control.
package control

import (
	"log/slog"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/action"
	"github.com/gigurra/guiinfo/cmd/gui/message"
)

type Control interface {
	ID() int
	ParentID() int
	Process(now time.Duration)
	OnAction(a Action) bool
	OnMessage(msg *message.Message) bool
	HasFocus() bool
	SetFocus(focus bool)
	CanFocus() bool
	IsVisible() bool
	IsDisabled() bool
	// UpdateVisibility re-evaluates the visible and enable conditions.
	UpdateVisibility()
}

// Env is what controls need from their window manager.
type Env = action.Env

// Base implements focus, visibility and navigation. Concrete controls
// embed it and override what they handle themselves.
type Base struct {
	id       int
	parentID int
	env      Env

	focus    bool
	visible  bool
	enabled  bool
	canFocus bool

	visibleCond string
	enableCond  string

	navigation map[ActionID]*action.Action
	focusActs  *action.Action
}

func NewBase(id, parentID int, env Env) Base {
	return Base{
		id:         id,
		parentID:   parentID,
		env:        env,
		visible:    true,
		enabled:    true,
		canFocus:   true,
		navigation: map[ActionID]*action.Action{},
	}
}

func (b *Base) ID() int       { return b.id }
func (b *Base) ParentID() int { return b.parentID }
func (b *Base) Env() Env      { return b.env }

func (b *Base) HasFocus() bool { return b.focus }

func (b *Base) SetFocus(focus bool) {
	gained := focus && !b.focus
	b.focus = focus
	if gained && b.focusActs.HasAnyActions() {
		b.focusActs.ExecuteActions(b.env, b.id, b.parentID, nil)
	}
}

func (b *Base) SetCanFocus(v bool) { b.canFocus = v }

func (b *Base) CanFocus() bool { return b.canFocus && b.visible && b.enabled }

func (b *Base) IsVisible() bool { return b.visible }

func (b *Base) SetVisible(v bool) { b.visible = v }

func (b *Base) IsDisabled() bool { return !b.enabled }

func (b *Base) SetEnabled(v bool) { b.enabled = v }

// SetVisibleCondition makes visibility follow expr; "" means always.
func (b *Base) SetVisibleCondition(expr string) { b.visibleCond = expr }

func (b *Base) SetEnableCondition(expr string) { b.enableCond = expr }

func (b *Base) UpdateVisibility() {
	if b.env == nil {
		return
	}
	if b.visibleCond != "" {
		b.visible = b.env.EvaluateBool(b.visibleCond, b.parentID, nil)
		if !b.visible && b.focus {
			b.focus = false
		}
	}
	if b.enableCond != "" {
		b.enabled = b.env.EvaluateBool(b.enableCond, b.parentID, nil)
	}
}

// SetNavigation binds a direction (up/down/left/right/back) to an action
// list.
func (b *Base) SetNavigation(dir ActionID, a *action.Action) { b.navigation[dir] = a }

// Navigation returns the action list bound to dir; never nil.
func (b *Base) Navigation(dir ActionID) *action.Action {
	if a, ok := b.navigation[dir]; ok {
		return a
	}
	return action.New()
}

func (b *Base) SetFocusActions(a *action.Action) { b.focusActs = a }

// WrapsAround reports whether moving past the end in dir should wrap:
// true when dir navigates to this control or nothing else is reachable.
func (b *Base) WrapsAround(dir ActionID) bool {
	a := b.Navigation(dir)
	if b.env == nil {
		return !a.HasAnyActions()
	}
	return a.GetNavigation(b.env) == b.id || !a.HasActionsMeetingCondition(b.env)
}

// Navigate moves focus along dir: a navigation id becomes a SETFOCUS
// message to the window, anything else is executed.
func (b *Base) Navigate(dir ActionID) bool {
	if !b.focus || b.env == nil {
		return false
	}
	a := b.Navigation(dir)
	if id := a.GetNavigation(b.env); id != 0 {
		if id == b.id {
			return true
		}
		msg := message.New(message.SetFocus, b.parentID, id)
		msg.WindowID = b.parentID
		return b.env.SendMessage(msg)
	}
	return a.ExecuteActions(b.env, b.id, b.parentID, nil)
}

// OnAction handles navigation for controls without their own movement.
func (b *Base) OnAction(a Action) bool {
	switch a.ID {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight, ActionNavBack:
		return b.Navigate(a.ID)
	}
	return false
}

// OnMessage handles the focus, visibility and enable messages addressed
// to this control.
func (b *Base) OnMessage(msg *message.Message) bool {
	if msg.ControlID != b.id {
		return false
	}
	switch msg.ID {
	case message.SetFocus:
		if !b.CanFocus() {
			slog.Debug("control: cannot take focus", "control", b.id)
			return false
		}
		b.SetFocus(true)
		return true
	case message.LoseFocus:
		b.focus = false
		return true
	case message.Visible:
		b.visible = true
		return true
	case message.Hidden:
		b.visible = false
		b.focus = false
		return true
	case message.Enable:
		b.enabled = true
		return true
	case message.Disable:
		b.enabled = false
		return true
	}
	return false
}

// SendWindowMessage sends msg to the window this control lives in.
func (b *Base) SendWindowMessage(msg *message.Message) bool {
	if b.env == nil {
		return false
	}
	msg.WindowID = b.parentID
	return b.env.SendMessage(msg)
}

func (b *Base) Process(time.Duration) {}
