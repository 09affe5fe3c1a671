package window

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/infoprov"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Info evaluates conditions and resolves labels; the info manager
// implements it.
type Info interface {
	EvaluateBool(expr string, window int, item *listitem.Item) bool
	ResolveLabel(text string, window int, item *listitem.Item) string
}

// Executor runs GUI_MSG_EXECUTE strings such as "ActivateWindow(home)".
type Executor interface {
	Execute(command string, msg *message.Message) bool
}

// Claim is a control holding the pointer exclusively for a gesture.
type Claim struct {
	WindowID  int
	ControlID int
	Gesture   string
}

// Manager owns the windows. Everything except SendThreadMessage runs on
// the render thread.
type Manager struct {
	info Info
	exec Executor

	windows map[int]*Window
	byName  map[string]int
	active  int
	dialogs []int

	queue message.Queue
	claim Claim
}

func NewManager(info Info) *Manager {
	return &Manager{
		info:    info,
		windows: map[int]*Window{},
		byName:  map[string]int{},
	}
}

// SetInfo attaches the info manager. Sessions create the window manager
// first because the providers need it as their GUI context.
func (m *Manager) SetInfo(info Info) { m.info = info }

func (m *Manager) SetExecutor(e Executor) { m.exec = e }

func (m *Manager) Add(w *Window) {
	m.windows[w.id] = w
	if w.name != "" {
		m.byName[w.name] = w.id
	}
}

// Window returns the window with id; 0 means the topmost window.
func (m *Manager) Window(id int) *Window {
	if id == 0 {
		return m.topmost()
	}
	return m.windows[id]
}

func (m *Manager) topmost() *Window {
	if n := len(m.dialogs); n > 0 {
		return m.windows[m.dialogs[n-1]]
	}
	return m.windows[m.active]
}

// Activate makes id the active window, closing all dialogs. Dialog ids
// are opened on top instead.
func (m *Manager) Activate(id int) error {
	w, ok := m.windows[id]
	if !ok {
		return fmt.Errorf("unknown window %d", id)
	}
	if w.dialog {
		return m.OpenDialog(id)
	}
	if old := m.windows[m.active]; old != nil && old != w {
		m.route(old, message.New(message.WindowDeinit, 0, 0))
	}
	m.dialogs = nil
	m.active = id
	m.route(w, message.New(message.WindowInit, 0, 0))
	slog.Debug("window: activated", "window", id, "name", w.name)
	return nil
}

// ActivateByName accepts a registered name or a numeric id.
func (m *Manager) ActivateByName(name string) error {
	id, ok := m.WindowID(name)
	if !ok {
		return fmt.Errorf("unknown window %q", name)
	}
	return m.Activate(id)
}

func (m *Manager) OpenDialog(id int) error {
	w, ok := m.windows[id]
	if !ok || !w.dialog {
		return fmt.Errorf("window %d is not a dialog", id)
	}
	m.dialogs = append(lo.Without(m.dialogs, id), id)
	m.route(w, message.New(message.WindowInit, 0, 0))
	return nil
}

// CloseDialog closes dialog id, or the topmost dialog for id 0.
func (m *Manager) CloseDialog(id int) bool {
	if len(m.dialogs) == 0 {
		return false
	}
	if id == 0 {
		id = m.dialogs[len(m.dialogs)-1]
	}
	if !lo.Contains(m.dialogs, id) {
		return false
	}
	m.dialogs = lo.Without(m.dialogs, id)
	m.route(m.windows[id], message.New(message.WindowDeinit, 0, 0))
	return true
}

func (m *Manager) CloseAllDialogs() {
	for len(m.dialogs) > 0 {
		m.CloseDialog(0)
	}
}

// ExclusiveClaim returns the current pointer claim, ControlID 0 if none.
func (m *Manager) ExclusiveClaim() Claim { return m.claim }

// OnAction delivers a user action to the focused control of the topmost
// window. Pointer actions go to the claiming control while a gesture
// holds the pointer.
func (m *Manager) OnAction(a control.Action) bool {
	if a.ID.IsMouse() && m.claim.ControlID != 0 {
		if w := m.windows[m.claim.WindowID]; w != nil {
			if c, ok := w.byID[m.claim.ControlID]; ok {
				return c.OnAction(a)
			}
		}
		slog.Warn("window: claiming control is gone", "window", m.claim.WindowID, "control", m.claim.ControlID)
		m.claim = Claim{}
	}
	w := m.topmost()
	if w == nil {
		return false
	}
	if a.ID == control.ActionPreviousMenu && w.dialog {
		return m.CloseDialog(w.id)
	}
	c := w.Focused()
	if c == nil {
		return false
	}
	return c.OnAction(a)
}

// SendMessage handles EXECUTE and EXCLUSIVE_MOUSE itself and routes
// everything else to the target window.
func (m *Manager) SendMessage(msg *message.Message) bool {
	switch msg.ID {
	case message.Execute:
		if m.exec == nil {
			slog.Warn("window: no executor for action", "action", msg.StringParam)
			return false
		}
		return m.exec.Execute(msg.StringParam, msg)
	case message.ExclusiveMouse:
		m.setClaim(msg)
		return true
	}
	w := m.Window(msg.WindowID)
	if w == nil {
		slog.Debug("window: message for unknown window", "msg", msg.String(), "window", msg.WindowID)
		return false
	}
	return m.route(w, msg)
}

// SendThreadMessage queues msg for the next ProcessThreadMessages. Safe
// from any goroutine.
func (m *Manager) SendThreadMessage(msg message.Message) { m.queue.Push(msg) }

// ProcessThreadMessages delivers queued messages and reports how many.
func (m *Manager) ProcessThreadMessages() int {
	msgs := m.queue.Drain()
	for i := range msgs {
		m.SendMessage(&msgs[i])
	}
	return len(msgs)
}

func (m *Manager) setClaim(msg *message.Message) {
	if msg.SenderID == 0 {
		if m.claim.ControlID != 0 {
			slog.Debug("window: pointer released", "control", m.claim.ControlID, "gesture", m.claim.Gesture)
		}
		m.claim = Claim{}
		return
	}
	window := msg.WindowID
	if window == 0 {
		if w := m.topmost(); w != nil {
			window = w.id
		}
	}
	m.claim = Claim{WindowID: window, ControlID: msg.SenderID, Gesture: uuid.NewString()}
	slog.Debug("window: pointer claimed", "control", msg.SenderID, "gesture", m.claim.Gesture)
}

func (m *Manager) route(w *Window, msg *message.Message) bool {
	switch msg.ID {
	case message.WindowInit:
		w.focusDefault()
		return true
	case message.WindowDeinit:
		if c := w.Focused(); c != nil {
			c.SetFocus(false)
		}
		w.focused = 0
		return true
	case message.SetFocus:
		c, ok := w.byID[msg.ControlID]
		if !ok {
			slog.Debug("window: focus on unknown control", "window", w.id, "control", msg.ControlID)
			return false
		}
		if !c.OnMessage(msg) {
			return false
		}
		if prev := w.Focused(); prev != nil && w.focused != msg.ControlID {
			prev.SetFocus(false)
		}
		w.focused = msg.ControlID
		return true
	case message.Click:
		return m.click(w, msg)
	}
	if msg.ControlID != 0 && msg.ControlID != w.id {
		c, ok := w.byID[msg.ControlID]
		if !ok {
			slog.Debug("window: message for unknown control", "msg", msg.String(), "window", w.id)
			return false
		}
		return c.OnMessage(msg)
	}
	handled := false
	for _, c := range w.controls {
		if c.OnMessage(msg) {
			handled = true
		}
	}
	return handled
}

func (m *Manager) click(w *Window, msg *message.Message) bool {
	a, ok := w.clicks[msg.SenderID]
	if !ok || !a.HasAnyActions() {
		slog.Debug("window: click without actions", "window", w.id, "control", msg.SenderID)
		return false
	}
	return a.ExecuteActions(m, msg.SenderID, w.id, msg.Item)
}

// Process delivers thread messages, then updates and processes the
// controls of every visible window.
func (m *Manager) Process(now time.Duration) {
	m.ProcessThreadMessages()
	for _, w := range m.visible() {
		for _, c := range w.controls {
			c.UpdateVisibility()
			if c.IsVisible() {
				c.Process(now)
			}
		}
	}
}

func (m *Manager) visible() []*Window {
	var out []*Window
	if w := m.windows[m.active]; w != nil {
		out = append(out, w)
	}
	for _, id := range m.dialogs {
		out = append(out, m.windows[id])
	}
	return out
}

// EvaluateBool and ResolveLabel let controls reach the info manager
// through their environment.
func (m *Manager) EvaluateBool(expr string, window int, item *listitem.Item) bool {
	if m.info == nil {
		return strings.TrimSpace(expr) == ""
	}
	return m.info.EvaluateBool(expr, window, item)
}

func (m *Manager) ResolveLabel(text string, window int, item *listitem.Item) string {
	if m.info == nil {
		return text
	}
	return m.info.ResolveLabel(text, window, item)
}

func (m *Manager) Container(windowID, containerID int) infoprov.ContainerView {
	w := m.Window(windowID)
	if w == nil {
		return nil
	}
	c := w.Container(containerID)
	if c == nil {
		return nil
	}
	return c
}

func (m *Manager) CurrentListItem(windowID int) *listitem.Item {
	if w := m.Window(windowID); w != nil {
		return w.item
	}
	return nil
}

func (m *Manager) WindowID(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if id, ok := m.byName[name]; ok {
		return id, true
	}
	id, err := strconv.Atoi(name)
	if err != nil {
		return 0, false
	}
	_, ok := m.windows[id]
	return id, ok
}

// ActiveWindow is the base window under any dialogs.
func (m *Manager) ActiveWindow() int { return m.active }

func (m *Manager) IsWindowActive(id int) bool {
	return id != 0 && (id == m.active || lo.Contains(m.dialogs, id))
}

func (m *Manager) IsWindowVisible(id int) bool { return m.IsWindowActive(id) }

func (m *Manager) IsMediaWindow(id int) bool {
	w := m.Window(id)
	return w != nil && w.media
}

func (m *Manager) IsDialogTopmost(id int) bool {
	return len(m.dialogs) > 0 && m.dialogs[len(m.dialogs)-1] == id
}

func (m *Manager) controlByID(windowID, controlID int) control.Control {
	w := m.Window(windowID)
	if w == nil {
		return nil
	}
	return w.byID[controlID]
}

func (m *Manager) ControlHasFocus(windowID, controlID int) bool {
	w := m.Window(windowID)
	if w == nil || w.focused != controlID {
		return false
	}
	c := w.Focused()
	return c != nil && c.HasFocus()
}

func (m *Manager) ControlIsVisible(windowID, controlID int) bool {
	c := m.controlByID(windowID, controlID)
	return c != nil && c.IsVisible()
}

func (m *Manager) ControlIsEnabled(windowID, controlID int) bool {
	c := m.controlByID(windowID, controlID)
	return c != nil && !c.IsDisabled()
}

func (m *Manager) WindowProperty(windowID int, key string) string {
	if w := m.Window(windowID); w != nil {
		return w.Property(key)
	}
	return ""
}

var _ infoprov.GUIContext = (*Manager)(nil)
