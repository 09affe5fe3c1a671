package container

import (
	"math"

	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/message"
)

// alongAxis reports whether a move action runs along the scroll axis.
func (c *Container) alongAxis(id control.ActionID) bool {
	if c.cfg.Orientation == Vertical {
		return id == control.ActionMoveUp || id == control.ActionMoveDown
	}
	return id == control.ActionMoveLeft || id == control.ActionMoveRight
}

func (c *Container) OnAction(a control.Action) bool {
	if a.ID.IsMouse() {
		return c.OnMouseEvent(a) != control.EventUnhandled
	}
	c.resetAutoScrolling()
	if a.ID == control.ActionUnicode {
		c.OnJumpLetter(string(a.Unicode), false)
		return true
	}
	c.matchTimer.stop()

	switch a.ID {
	case control.ActionMoveLeft, control.ActionMoveRight, control.ActionMoveUp, control.ActionMoveDown, control.ActionNavBack:
		if !c.HasFocus() {
			return false
		}
		if a.HoldTime > holdTimeStart && c.alongAxis(a.ID) {
			c.holdRepeat(a)
			return true
		}
		c.lastHoldTime = c.now
		c.scrollItemsPerFrame = 0
		return c.move(a.ID)
	case control.ActionPageUp:
		c.strategy.pageUp(c)
		return true
	case control.ActionPageDown:
		c.strategy.pageDown(c)
		return true
	case control.ActionFirstPage:
		c.SelectItem(0)
		return true
	case control.ActionLastPage:
		if len(c.items) > 0 {
			c.SelectItem(len(c.items) - 1)
		}
		return true
	case control.ActionNextLetter:
		c.OnNextLetter()
		return true
	case control.ActionPrevLetter:
		c.OnPrevLetter()
		return true
	case control.ActionJumpSMS2, control.ActionJumpSMS3, control.ActionJumpSMS4, control.ActionJumpSMS5,
		control.ActionJumpSMS6, control.ActionJumpSMS7, control.ActionJumpSMS8, control.ActionJumpSMS9:
		c.OnJumpSMS(int(a.ID-control.ActionJumpSMS2) + 2)
		return true
	case control.ActionSelectItem:
		return c.onClick(a.ID)
	}
	return false
}

// move handles one directional step. Along the scroll axis the strategy
// moves between rows, across it between columns; when the strategy cannot
// move the control's navigation takes over.
func (c *Container) move(dir control.ActionID) bool {
	if dir == control.ActionNavBack {
		return c.Navigate(dir)
	}
	wrap := c.WrapsAround(dir)
	var moved bool
	prev, next, crossPrev, crossNext := control.ActionMoveUp, control.ActionMoveDown, control.ActionMoveLeft, control.ActionMoveRight
	if c.cfg.Orientation == Horizontal {
		prev, next, crossPrev, crossNext = crossPrev, crossNext, prev, next
	}
	switch dir {
	case prev:
		moved = c.strategy.moveUp(c, wrap)
	case next:
		moved = c.strategy.moveDown(c, wrap)
	case crossPrev:
		moved = c.strategy.moveLeft(c, wrap)
	case crossNext:
		moved = c.strategy.moveRight(c, wrap)
	}
	if moved {
		return true
	}
	c.Navigate(dir)
	return true
}

// holdRepeat moves a held key at a rate ramping from 10 items/s to
// max(30, rows/7) items/s between holdTimeStart and holdTimeEnd. Partial
// items carry over to the next frame.
func (c *Container) holdRepeat(a control.Action) {
	speed := min(1.0, float64(a.HoldTime-holdTimeStart)/float64(holdTimeEnd-holdTimeStart))
	frame := min(c.now-c.lastHoldTime, maxFrameDuration).Seconds()
	maxSpeed := max(frame*30, frame*float64(c.rows())/7)
	minSpeed := frame * 10
	c.scrollItemsPerFrame += max(minSpeed, speed*maxSpeed)
	c.lastHoldTime = c.now

	back := a.ID == control.ActionMoveUp || a.ID == control.ActionMoveLeft
	for c.scrollItemsPerFrame >= 1 {
		if back {
			c.strategy.moveUp(c, false)
		} else {
			c.strategy.moveDown(c, false)
		}
		c.scrollItemsPerFrame--
	}
}

func (c *Container) onClick(id control.ActionID) bool {
	msg := message.New(message.Click, c.ID(), c.ParentID())
	msg.Param1 = int(id)
	msg.Item = c.SelectedItem()
	return c.SendWindowMessage(msg)
}

// OnMouseEvent handles clicks, the wheel and the gesture protocol:
// notify, begin (claim the pointer), pan (drag the scroll value), end or
// abort (release and settle on the nearest row).
func (c *Container) OnMouseEvent(a control.Action) control.EventResult {
	switch a.ID {
	case control.ActionMouseLeftClick, control.ActionMouseRightClick, control.ActionMouseDoubleClick:
		if c.strategy.selectFromPoint(c, a.X, a.Y) {
			c.onClick(a.ID)
			return control.EventHandled
		}
	case control.ActionMouseWheelUp:
		c.strategy.scroll(c, -1)
		return control.EventHandled
	case control.ActionMouseWheelDown:
		c.strategy.scroll(c, 1)
		return control.EventHandled
	case control.ActionGestureNotify:
		c.waitForScrollEnd = true
		c.lastScrollValue = c.scroller.Value()
		if c.cfg.Orientation == Horizontal {
			return control.EventPanHorizontal
		}
		return control.EventPanVertical
	case control.ActionGestureBegin:
		c.gestureActive = true
		c.SendWindowMessage(message.New(message.ExclusiveMouse, c.ID(), c.ParentID()))
		return control.EventHandled
	case control.ActionGesturePan:
		delta := a.OffsetY
		if c.cfg.Orientation == Horizontal {
			delta = a.OffsetX
		}
		c.scroller.SetValue(c.scroller.Value() - delta)
		c.lastScrollStart.stop()
		if !c.scrollTimer.running {
			c.scrollTimer.startAt(c.now)
		}
		c.offset = int(math.Round(c.scroller.Value() / c.itemSize()))
		c.strategy.validateOffset(c)
		return control.EventHandled
	case control.ActionGestureEnd, control.ActionGestureAbort:
		c.SendWindowMessage(message.New(message.ExclusiveMouse, 0, c.ParentID()))
		c.scrollTimer.stop()
		pos := c.scroller.Value() / c.itemSize()
		to := int(math.Round(pos))
		// start one row off so the settle eases toward to
		if float64(to) < pos {
			c.offset = to + 1
		} else {
			c.offset = to - 1
		}
		c.ScrollToOffset(to)
		c.strategy.validateOffset(c)
		c.setCursor(c.cursor)
		c.SetFocus(true)
		c.waitForScrollEnd = true
		c.gestureActive = false
		return control.EventHandled
	}
	return control.EventUnhandled
}

// GestureActive reports whether a pan currently owns the pointer.
func (c *Container) GestureActive() bool { return c.gestureActive }
