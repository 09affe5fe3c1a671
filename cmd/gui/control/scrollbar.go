package control

import (
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/message"
)

// ScrollBar is a page control. Its container tells it the page size and
// row count (LABEL_RESET) and the current offset (ITEM_SELECT); moving it
// sends PAGE_CHANGE back.
type ScrollBar struct {
	Base
	horizontal bool
	pageSize   int
	numItems   int
	offset     int
}

func NewScrollBar(id, parentID int, env Env, horizontal bool) *ScrollBar {
	return &ScrollBar{Base: NewBase(id, parentID, env), horizontal: horizontal, pageSize: 1}
}

func (s *ScrollBar) Process(time.Duration) {}

func (s *ScrollBar) OnMessage(msg *message.Message) bool {
	if msg.ControlID == s.id {
		switch msg.ID {
		case message.ItemSelect:
			s.offset = msg.Param1
			return true
		case message.LabelReset:
			s.pageSize = max(msg.Param1, 1)
			s.numItems = max(msg.Param2, 0)
			s.offset = min(s.offset, s.maxOffset())
			return true
		}
	}
	return s.Base.OnMessage(msg)
}

func (s *ScrollBar) OnAction(a Action) bool {
	back, fwd := ActionMoveUp, ActionMoveDown
	if s.horizontal {
		back, fwd = ActionMoveLeft, ActionMoveRight
	}
	switch a.ID {
	case back:
		s.Move(-1)
		return true
	case fwd:
		s.Move(1)
		return true
	case ActionPageUp:
		s.Move(-s.pageSize)
		return true
	case ActionPageDown:
		s.Move(s.pageSize)
		return true
	}
	return s.Base.OnAction(a)
}

func (s *ScrollBar) maxOffset() int { return max(s.numItems-s.pageSize, 0) }

// Move shifts the offset by n rows, clamped, and announces the change.
func (s *ScrollBar) Move(n int) {
	next := min(max(s.offset+n, 0), s.maxOffset())
	if next == s.offset {
		return
	}
	s.offset = next
	msg := message.New(message.PageChange, s.id, 0)
	msg.Param1 = s.offset
	s.SendWindowMessage(msg)
}

func (s *ScrollBar) Offset() int   { return s.offset }
func (s *ScrollBar) PageSize() int { return s.pageSize }
func (s *ScrollBar) NumItems() int { return s.numItems }

// Fraction returns the start and end of the visible page in [0,1].
func (s *ScrollBar) Fraction() (start, end float64) {
	if s.numItems <= 0 {
		return 0, 1
	}
	start = float64(s.offset) / float64(s.numItems)
	end = min(float64(s.offset+s.pageSize)/float64(s.numItems), 1)
	return start, end
}
