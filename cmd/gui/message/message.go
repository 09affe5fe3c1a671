// Package message is the window message bus shared by windows, controls and
// actions.
package message

import (
	"fmt"
	"sync"

	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type ID int

const (
	WindowInit ID = iota + 1
	WindowDeinit
	SetFocus
	LoseFocus
	Click
	LabelAdd
	LabelBind
	LabelReset
	ItemSelect
	ItemSelected
	PageChange
	RefreshList
	MoveOffset
	Execute
	ExclusiveMouse
	NotifyAll
	Visible
	Hidden
	Enable
	Disable
	Selected
	Deselected
	SetLabel
	UpdateItem
)

var idNames = map[ID]string{
	WindowInit:     "WINDOW_INIT",
	WindowDeinit:   "WINDOW_DEINIT",
	SetFocus:       "SETFOCUS",
	LoseFocus:      "LOSTFOCUS",
	Click:          "CLICKED",
	LabelAdd:       "LABEL_ADD",
	LabelBind:      "LABEL_BIND",
	LabelReset:     "LABEL_RESET",
	ItemSelect:     "ITEM_SELECT",
	ItemSelected:   "ITEM_SELECTED",
	PageChange:     "PAGE_CHANGE",
	RefreshList:    "REFRESH_LIST",
	MoveOffset:     "MOVE_OFFSET",
	Execute:        "EXECUTE",
	ExclusiveMouse: "EXCLUSIVE_MOUSE",
	NotifyAll:      "NOTIFY_ALL",
	Visible:        "VISIBLE",
	Hidden:         "HIDDEN",
	Enable:         "ENABLED",
	Disable:        "DISABLED",
	Selected:       "SELECTED",
	Deselected:     "DESELECTED",
	SetLabel:       "LABEL_SET",
	UpdateItem:     "UPDATE_ITEM",
}

func (id ID) String() string {
	if n, ok := idNames[id]; ok {
		return n
	}
	return fmt.Sprintf("MSG(%d)", int(id))
}

// Message is addressed to a window (SenderID is the window the sender lives
// in) and optionally to one control inside it. Param1/Param2 carry small
// integers; Item/Items carry list payloads without copying them.
type Message struct {
	ID          ID
	SenderID    int
	ControlID   int
	Param1      int
	Param2      int
	StringParam string
	Item        *listitem.Item
	Items       []*listitem.Item
	// WindowID targets a specific window; 0 means the active window.
	WindowID int
}

func New(id ID, senderID, controlID int) *Message {
	return &Message{ID: id, SenderID: senderID, ControlID: controlID}
}

func (m *Message) String() string {
	return fmt.Sprintf("%s sender=%d control=%d p1=%d p2=%d %q", m.ID, m.SenderID, m.ControlID, m.Param1, m.Param2, m.StringParam)
}

// Sender delivers messages. SendMessage runs synchronously on the render
// thread; SendThreadMessage may be called from any goroutine and is
// delivered on the next drain.
type Sender interface {
	SendMessage(msg *Message) bool
	SendThreadMessage(msg Message)
}

// Handler receives messages.
type Handler interface {
	OnMessage(msg *Message) bool
}

// Queue buffers thread messages until the render thread drains them.
type Queue struct {
	mu      sync.Mutex
	pending []Message
}

func (q *Queue) Push(msg Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, msg)
}

// Drain removes and returns everything queued so far, oldest first.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
