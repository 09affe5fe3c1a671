package control

import (
	"fmt"
	"time"
)

// ActionID identifies an input action delivered to controls.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPageUp
	ActionPageDown
	ActionFirstPage
	ActionLastPage
	ActionNextLetter
	ActionPrevLetter
	ActionJumpSMS2
	ActionJumpSMS3
	ActionJumpSMS4
	ActionJumpSMS5
	ActionJumpSMS6
	ActionJumpSMS7
	ActionJumpSMS8
	ActionJumpSMS9
	ActionSelectItem
	ActionNavBack
	ActionPreviousMenu
	ActionMouseLeftClick
	ActionMouseRightClick
	ActionMouseDoubleClick
	ActionMouseWheelUp
	ActionMouseWheelDown
	ActionMouseMove
	ActionGestureNotify
	ActionGestureBegin
	ActionGesturePan
	ActionGestureEnd
	ActionGestureAbort
	// ActionUnicode carries a typed character in Action.Unicode.
	ActionUnicode
)

var actionNames = map[ActionID]string{
	ActionNone:             "none",
	ActionMoveLeft:         "left",
	ActionMoveRight:        "right",
	ActionMoveUp:           "up",
	ActionMoveDown:         "down",
	ActionPageUp:           "pageup",
	ActionPageDown:         "pagedown",
	ActionFirstPage:        "firstpage",
	ActionLastPage:         "lastpage",
	ActionNextLetter:       "nextletter",
	ActionPrevLetter:       "prevletter",
	ActionJumpSMS2:         "jumpsms2",
	ActionJumpSMS3:         "jumpsms3",
	ActionJumpSMS4:         "jumpsms4",
	ActionJumpSMS5:         "jumpsms5",
	ActionJumpSMS6:         "jumpsms6",
	ActionJumpSMS7:         "jumpsms7",
	ActionJumpSMS8:         "jumpsms8",
	ActionJumpSMS9:         "jumpsms9",
	ActionSelectItem:       "select",
	ActionNavBack:          "back",
	ActionPreviousMenu:     "previousmenu",
	ActionMouseLeftClick:   "leftclick",
	ActionMouseRightClick:  "rightclick",
	ActionMouseDoubleClick: "doubleclick",
	ActionMouseWheelUp:     "wheelup",
	ActionMouseWheelDown:   "wheeldown",
	ActionMouseMove:        "mousemove",
	ActionGestureNotify:    "gesturenotify",
	ActionGestureBegin:     "gesturebegin",
	ActionGesturePan:       "gesturepan",
	ActionGestureEnd:       "gestureend",
	ActionGestureAbort:     "gestureabort",
	ActionUnicode:          "unicode",
}

func (id ActionID) String() string {
	if n, ok := actionNames[id]; ok {
		return n
	}
	return fmt.Sprintf("action(%d)", int(id))
}

// ActionByName resolves the names used by String, for key maps.
func ActionByName(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// IsMouse reports pointer and gesture actions, which are routed with
// OnMouseEvent semantics.
func (id ActionID) IsMouse() bool {
	return id >= ActionMouseLeftClick && id <= ActionGestureAbort
}

// Action is one input event. HoldTime is how long the key producing it has
// been held; X/Y are pointer coordinates relative to the control and
// OffsetX/OffsetY the pan delta of a gesture.
type Action struct {
	ID       ActionID
	HoldTime time.Duration
	Unicode  rune
	X, Y     float64
	OffsetX  float64
	OffsetY  float64
}

func NewAction(id ActionID) Action { return Action{ID: id} }

// EventResult is what a pointer event did.
type EventResult int

const (
	EventUnhandled EventResult = iota
	EventHandled
	EventPanHorizontal
	EventPanVertical
)
