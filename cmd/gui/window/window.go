// Package window holds windows, the controls inside them and the manager
// that routes actions and messages between them. The manager is also the
// GUI context the info providers query.
package window

import (
	"strings"

	"github.com/gigurra/guiinfo/cmd/gui/action"
	"github.com/gigurra/guiinfo/cmd/gui/container"
	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

// Well known window ids.
const (
	Home      = 10000
	Pictures  = 10002
	Settings  = 10004
	Videos    = 10025
	Music     = 10502
	TVGuide   = 10702
	MovieInfo = 12003
)

type Window struct {
	id     int
	name   string
	media  bool
	dialog bool

	controls       []control.Control
	byID           map[int]control.Control
	focused        int
	defaultControl int
	viewContainer  int

	properties map[string]string
	item       *listitem.Item
	clicks     map[int]*action.Action
}

func New(id int, name string) *Window {
	return &Window{
		id:         id,
		name:       strings.ToLower(name),
		byID:       map[int]control.Control{},
		properties: map[string]string{},
		clicks:     map[int]*action.Action{},
	}
}

// NewDialog returns a window that opens on top of the active one.
func NewDialog(id int, name string) *Window {
	w := New(id, name)
	w.dialog = true
	return w
}

func (w *Window) ID() int        { return w.id }
func (w *Window) Name() string   { return w.name }
func (w *Window) IsDialog() bool { return w.dialog }
func (w *Window) IsMedia() bool  { return w.media }

// SetMedia marks a media window, one whose view container lists media.
func (w *Window) SetMedia(v bool) { w.media = v }

// Add registers a control. The first control added is the default one
// unless SetDefaultControl says otherwise.
func (w *Window) Add(c control.Control) {
	w.controls = append(w.controls, c)
	w.byID[c.ID()] = c
	if w.defaultControl == 0 {
		w.defaultControl = c.ID()
	}
}

func (w *Window) Control(id int) (control.Control, bool) {
	c, ok := w.byID[id]
	return c, ok
}

func (w *Window) Controls() []control.Control { return w.controls }

func (w *Window) SetDefaultControl(id int) { w.defaultControl = id }

// SetViewContainer names the container Container.* infos without an id
// refer to.
func (w *Window) SetViewContainer(id int) { w.viewContainer = id }

func (w *Window) FocusedID() int { return w.focused }

func (w *Window) Focused() control.Control {
	if c, ok := w.byID[w.focused]; ok {
		return c
	}
	return nil
}

// SetClickActions binds what a click on controlID runs.
func (w *Window) SetClickActions(controlID int, a *action.Action) { w.clicks[controlID] = a }

func (w *Window) Property(key string) string { return w.properties[strings.ToLower(key)] }

func (w *Window) SetProperty(key, value string) { w.properties[strings.ToLower(key)] = value }

func (w *Window) ClearProperty(key string) { delete(w.properties, strings.ToLower(key)) }

// SetCurrentItem sets the item a dialog such as the info dialog shows.
func (w *Window) SetCurrentItem(item *listitem.Item) { w.item = item }

func (w *Window) CurrentItem() *listitem.Item { return w.item }

// Container finds a container by id. Id 0 picks the view container, else
// the focused control if it is a container.
func (w *Window) Container(id int) *container.Container {
	if id == 0 {
		id = w.viewContainer
		if id == 0 {
			id = w.focused
		}
	}
	c, ok := w.byID[id].(*container.Container)
	if !ok {
		return nil
	}
	return c
}

// focus moves focus to id, returning false if the control refuses.
func (w *Window) focus(id int) bool {
	c, ok := w.byID[id]
	if !ok || !c.CanFocus() {
		return false
	}
	if prev := w.Focused(); prev != nil && w.focused != id {
		prev.SetFocus(false)
	}
	c.SetFocus(true)
	w.focused = id
	return true
}

// focusDefault focuses the default control, or the first control that
// accepts focus.
func (w *Window) focusDefault() {
	if w.focus(w.defaultControl) {
		return
	}
	for _, c := range w.controls {
		if w.focus(c.ID()) {
			return
		}
	}
}
