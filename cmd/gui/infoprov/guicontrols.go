package infoprov

import (
	"fmt"

	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

// ContainerView is the read side of a container control.
type ContainerView interface {
	ID() int
	NumItems() int
	NumAllItems() int
	NumNonFolderItems() int
	// SelectedIndex is the 0-based index of the focused item, -1 if empty.
	SelectedIndex() int
	Cursor() int
	Row() int
	Column() int
	NumPages() int
	CurrentPage() int
	HasNext() bool
	HasPrevious() bool
	IsScrolling() bool
	IsMovingNext() bool
	IsMovingPrevious() bool
	HasFocus() bool
	Content() string
	// ListItem returns the item at offset interpreted through the list
	// item flags of code, nil if there is none.
	ListItem(offset int, flags infocode.Code) *listitem.Item
}

// GUIContext is the window manager as seen from the info system.
type GUIContext interface {
	// Container finds a container in window by id. An id of 0 picks the
	// window's view container, else its focused control if that is one.
	Container(windowID, containerID int) ContainerView
	// CurrentListItem is the window's own current item, e.g. a dialog
	// showing one item. Nil if the window has no such concept.
	CurrentListItem(windowID int) *listitem.Item
	WindowID(name string) (int, bool)
	ActiveWindow() int
	IsWindowActive(id int) bool
	IsWindowVisible(id int) bool
	IsMediaWindow(id int) bool
	IsDialogTopmost(id int) bool
	ControlHasFocus(windowID, controlID int) bool
	ControlIsVisible(windowID, controlID int) bool
	ControlIsEnabled(windowID, controlID int) bool
	WindowProperty(windowID int, key string) string
}

// GUIControls answers CONTAINER_*, CONTROL_* and WINDOW_* against the
// window manager.
type GUIControls struct {
	base
	gui GUIContext
}

func NewGUIControls(gui GUIContext) *GUIControls {
	return &GUIControls{gui: gui}
}

func (p *GUIControls) Name() string { return "guicontrols" }

func (p *GUIControls) Ranges() []infocode.Range {
	return []infocode.Range{infocode.RangeContainer, infocode.RangeControl, infocode.RangeWindow}
}

func (p *GUIControls) container(q Query) ContainerView {
	if p.gui == nil {
		return nil
	}
	return p.gui.Container(q.ContextWindow, q.Info.Data1)
}

func (p *GUIControls) window(q Query) int {
	if q.Info.Data3 != "" && p.gui != nil {
		if id, ok := p.gui.WindowID(q.Info.Data3); ok {
			return id
		}
		return -1
	}
	if q.Info.Data1 != 0 {
		return q.Info.Data1
	}
	return q.ContextWindow
}

func (p *GUIControls) GetLabel(item *listitem.Item, q Query, _ *string) (string, bool) {
	if q.Code() == infocode.WindowProperty {
		if p.gui == nil {
			return "", true
		}
		return p.gui.WindowProperty(q.ContextWindow, q.Info.Data3), true
	}
	if q.Code() == infocode.ContainerContent {
		if c := p.container(q); c != nil {
			return c.Content(), true
		}
		return "", true
	}
	if v, ok := p.GetInt(item, q); ok {
		return fmt.Sprintf("%d", v), true
	}
	return "", false
}

func (p *GUIControls) GetInt(_ *listitem.Item, q Query) (int, bool) {
	if !infocode.RangeContainer.Contains(q.Code()) {
		return 0, false
	}
	c := p.container(q)
	if c == nil {
		return 0, false
	}
	switch q.Code() {
	case infocode.ContainerNumItems:
		return c.NumItems(), true
	case infocode.ContainerNumAllItems:
		return c.NumAllItems(), true
	case infocode.ContainerNumNonFolderItems:
		return c.NumNonFolderItems(), true
	case infocode.ContainerCurrentItem:
		return c.SelectedIndex() + 1, true
	case infocode.ContainerPosition:
		return c.Cursor(), true
	case infocode.ContainerNumPages:
		return c.NumPages(), true
	case infocode.ContainerCurrentPage:
		return c.CurrentPage(), true
	case infocode.ContainerRow:
		return c.Row(), true
	case infocode.ContainerColumn:
		return c.Column(), true
	}
	return 0, false
}

func (p *GUIControls) GetBool(_ *listitem.Item, q Query) (bool, bool) {
	if p.gui == nil {
		return false, false
	}
	code := q.Code()
	switch code {
	case infocode.ControlHasFocus:
		return p.gui.ControlHasFocus(q.ContextWindow, q.Info.Data1), true
	case infocode.ControlIsVisible:
		return p.gui.ControlIsVisible(q.ContextWindow, q.Info.Data1), true
	case infocode.ControlIsEnabled:
		return p.gui.ControlIsEnabled(q.ContextWindow, q.Info.Data1), true
	case infocode.WindowIsActive:
		return p.gui.IsWindowActive(p.window(q)), true
	case infocode.WindowIsVisible:
		return p.gui.IsWindowVisible(p.window(q)), true
	case infocode.WindowIsMedia:
		return p.gui.IsMediaWindow(p.window(q)), true
	case infocode.WindowIsDialogTopmost:
		return p.gui.IsDialogTopmost(p.window(q)), true
	}
	if !infocode.RangeContainer.Contains(code) {
		return false, false
	}
	c := p.container(q)
	if c == nil {
		return code == infocode.ContainerIsEmpty, true
	}
	switch code {
	case infocode.ContainerIsEmpty:
		return c.NumItems() == 0, true
	case infocode.ContainerHasNext:
		return c.HasNext(), true
	case infocode.ContainerHasPrevious:
		return c.HasPrevious(), true
	case infocode.ContainerScrolling:
		return c.IsScrolling(), true
	case infocode.ContainerOnNext:
		return c.IsMovingNext(), true
	case infocode.ContainerOnPrevious:
		return c.IsMovingPrevious(), true
	case infocode.ContainerRow:
		return c.Row() == q.Info.Data2, true
	case infocode.ContainerColumn:
		return c.Column() == q.Info.Data2, true
	case infocode.ContainerHasFocus:
		if !c.HasFocus() {
			return false, true
		}
		return q.Info.Data2 == 0 || c.SelectedIndex()+1 == q.Info.Data2, true
	}
	return false, false
}
