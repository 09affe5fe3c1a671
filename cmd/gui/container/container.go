// Package container implements the virtualized list control: a window of
// items over a longer list, a cursor inside that window and an eased scroll
// position. List, panel and wraplist behaviour is plugged in as a Strategy.
package container

import (
	"log/slog"
	"math"
	"time"

	"github.com/gigurra/guiinfo/cmd/gui/control"
	"github.com/gigurra/guiinfo/cmd/gui/infocode"
	"github.com/gigurra/guiinfo/cmd/gui/listitem"
	"github.com/gigurra/guiinfo/cmd/gui/message"
	"github.com/gigurra/guiinfo/cmd/gui/scroller"
)

const (
	// scrollingGap is how long after the last scroll start the container
	// still counts as moving.
	scrollingGap = 200 * time.Millisecond
	// scrollingThreshold is how long continuous scrolling must last before
	// Container.Scrolling reports it.
	scrollingThreshold = 300 * time.Millisecond
	pageChangeHold     = 200 * time.Millisecond

	holdTimeStart    = 100 * time.Millisecond
	holdTimeEnd      = 3000 * time.Millisecond
	maxFrameDuration = 50 * time.Millisecond

	defaultScrollTime   = 200 * time.Millisecond
	defaultMatchTimeout = time.Second
)

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Env is what the container needs from the window manager: conditions, a
// message bus and label resolution.
type Env interface {
	control.Env
	ResolveLabel(text string, window int, item *listitem.Item) string
}

// Layout describes how one item is drawn. The first layout whose condition
// holds is used.
type Layout struct {
	Condition string   `json:"condition,omitempty"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Labels    []string `json:"labels"`
	// Visible is a per-item condition evaluated against the item.
	Visible string `json:"visible,omitempty"`
}

func (l *Layout) size(o Orientation) float64 {
	if o == Vertical {
		return l.Height
	}
	return l.Width
}

var defaultLayout = Layout{Width: 1, Height: 1, Labels: []string{"$INFO[ListItem.Label]"}}

type AutoScroll struct {
	Condition string
	MoveTime  time.Duration
	Reverse   bool
}

type Config struct {
	Orientation    Orientation
	Width, Height  float64
	Layouts        []Layout
	FocusedLayouts []Layout
	ScrollTime     time.Duration
	Tweener        scroller.Tweener
	// CacheItems is how many off-screen items keep their layouts.
	CacheItems int
	// PageControl is the id of a bound scrollbar, 0 for none.
	PageControl        int
	LetterMatchTimeout time.Duration
	AutoScroll         *AutoScroll
	Content            string
}

// FrameItem is one processed slot. Pos is the slot's start along the
// scroll axis relative to the container origin.
type FrameItem struct {
	Index    int
	Pos      float64
	Column   int
	Focused  bool
	OnScreen bool
	Visible  bool
	Labels   []string
	Item     *listitem.Item
}

// Frame is the result of one Process call.
type Frame struct {
	Offset      int
	ScrollValue float64
	Items       []FrameItem
}

type stopwatch struct {
	start   time.Duration
	running bool
}

func (s *stopwatch) startAt(now time.Duration) {
	s.start = now
	s.running = true
}

func (s *stopwatch) stop() { s.running = false }

func (s *stopwatch) elapsed(now time.Duration) time.Duration {
	if !s.running {
		return 0
	}
	return now - s.start
}

type Container struct {
	control.Base
	env      Env
	strategy Strategy
	cfg      Config

	layoutIdx, focusedIdx int
	invalidated           bool
	freeAll               bool

	items        []*listitem.Item
	cursor       int
	offset       int
	itemsPerPage int
	columns      int
	scroller     *scroller.Scroller

	letterOffsets []LetterOffset
	match         string
	matchTimer    stopwatch

	wasReset        bool
	containerMoving int
	scrollTimer     stopwatch
	lastScrollStart stopwatch
	pageChangeTimer stopwatch

	scrollItemsPerFrame float64
	lastHoldTime        time.Duration

	gestureActive     bool
	waitForScrollEnd  bool
	lastScrollValue   float64
	analogScrollCount float64

	autoScrollDelay time.Duration

	now        time.Duration
	lastRender time.Duration
	rendered   bool

	// lastItemPath identifies the last focused item across rebinds.
	lastItem     int
	lastItemPath string

	pageSent   bool
	lastPageTo int

	frame Frame
}

func New(id, parentID int, env Env, strategy Strategy, cfg Config) *Container {
	if len(cfg.Layouts) == 0 {
		cfg.Layouts = []Layout{defaultLayout}
	}
	if len(cfg.FocusedLayouts) == 0 {
		cfg.FocusedLayouts = cfg.Layouts
	}
	if cfg.ScrollTime <= 0 {
		cfg.ScrollTime = defaultScrollTime
	}
	if cfg.LetterMatchTimeout <= 0 {
		cfg.LetterMatchTimeout = defaultMatchTimeout
	}
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	c := &Container{
		Base:        control.NewBase(id, parentID, env),
		env:         env,
		strategy:    strategy,
		cfg:         cfg,
		scroller:    scroller.New(cfg.ScrollTime, cfg.Tweener),
		columns:     1,
		lastItem:    -1,
		invalidated: true,
	}
	c.strategy.calculateLayout(c)
	return c
}

func (c *Container) Strategy() Strategy { return c.strategy }

func (c *Container) layout() *Layout { return &c.cfg.Layouts[c.layoutIdx] }

func (c *Container) focusedLayout() *Layout { return &c.cfg.FocusedLayouts[c.focusedIdx] }

// itemSize is the unfocused layout extent along the scroll axis.
func (c *Container) itemSize() float64 {
	if s := c.layout().size(c.cfg.Orientation); s > 0 {
		return s
	}
	return 1
}

func (c *Container) focusedSize() float64 {
	if s := c.focusedLayout().size(c.cfg.Orientation); s > 0 {
		return s
	}
	return c.itemSize()
}

// length is the viewport extent along the scroll axis, cross across it.
func (c *Container) length() float64 {
	if c.cfg.Orientation == Vertical {
		return c.cfg.Height
	}
	return c.cfg.Width
}

func (c *Container) cross() float64 {
	if c.cfg.Orientation == Vertical {
		return c.cfg.Width
	}
	return c.cfg.Height
}

func (c *Container) crossSize(l *Layout) float64 {
	if c.cfg.Orientation == Vertical {
		return l.Width
	}
	return l.Height
}

// SetSize changes the viewport; layout is recomputed on the next frame.
func (c *Container) SetSize(width, height float64) {
	if width > 0 {
		c.cfg.Width = width
	}
	if height > 0 {
		c.cfg.Height = height
	}
	c.invalidated = true
}

// snapScroll puts a resting scroller exactly on the offset row.
func (c *Container) snapScroll() {
	if !c.scroller.IsScrolling() {
		c.scroller.SetValue(float64(c.offset) * c.itemSize())
	}
}

// ScrollCorrectionRange is how far from the target a long jump is snapped
// before easing the rest.
func (c *Container) ScrollCorrectionRange() int {
	return max(c.itemsPerPage/4, 1)
}

func (c *Container) setContainerMoving(direction int) {
	switch {
	case direction > 0:
		c.containerMoving = 1
	case direction < 0:
		c.containerMoving = -1
	}
}

func (c *Container) setCursor(cursor int) { c.strategy.setCursor(c, cursor) }

// ScrollToOffset moves the first visible row to offset, easing there from
// at most ScrollCorrectionRange rows away.
func (c *Container) ScrollToOffset(offset int) {
	if lo, hi, ok := c.strategy.offsetRange(c); ok {
		offset = max(lo, min(offset, hi))
	}
	size := c.itemSize()
	rng := float64(c.ScrollCorrectionRange())
	target := float64(offset) * size
	v := c.scroller.Value()
	if target < v && v-target > size*rng {
		c.scroller.SetValue(target + rng*size)
	}
	if target > v && target-v > size*rng {
		c.scroller.SetValue(target - rng*size)
	}
	c.scroller.ScrollTo(target)
	c.lastScrollStart.startAt(c.now)
	if !c.wasReset {
		c.setContainerMoving(offset - c.offset)
		if c.scroller.IsScrolling() {
			if !c.scrollTimer.running {
				c.scrollTimer.startAt(c.now)
			}
		} else {
			c.scrollTimer.stop()
		}
	} else {
		c.scrollTimer.stop()
	}
	c.offset = offset
}

func (c *Container) SelectItem(item int) { c.strategy.selectItem(c, item) }

// SetItems binds items and selects index selected; a negative index keeps
// the previously focused path selected if it is still present.
func (c *Container) SetItems(items []*listitem.Item, selected int) {
	lastPath := c.lastItemPath
	c.reset()
	c.items = append([]*listitem.Item(nil), items...)
	c.updateLayout(true)
	c.updateScrollByLetter()
	if selected < 0 && lastPath != "" {
		for i, it := range c.items {
			if it.Path == lastPath {
				selected = i
				break
			}
		}
	}
	c.SelectItem(selected)
}

func (c *Container) reset() {
	c.wasReset = true
	c.items = nil
	c.lastItem = -1
	c.lastItemPath = ""
	c.letterOffsets = nil
	c.resetAutoScrolling()
}

func (c *Container) Items() []*listitem.Item { return c.items }

func (c *Container) SelectedItem() *listitem.Item {
	i := c.SelectedIndex()
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

func (c *Container) Offset() int       { return c.offset }
func (c *Container) ItemsPerPage() int { return c.itemsPerPage }
func (c *Container) Columns() int      { return c.columns }

// ScrollValue is the eased scroll position in layout units.
func (c *Container) ScrollValue() float64 { return c.scroller.Value() }

func (c *Container) LastFrame() Frame { return c.frame }

func (c *Container) SetFocus(focus bool) {
	if focus != c.HasFocus() {
		c.lastItem = -1
	}
	c.Base.SetFocus(focus)
}

func (c *Container) CanFocus() bool {
	return c.Base.CanFocus() && len(c.items) > 0
}

// ListItem resolves an item relative to the selection. POSITION counts from
// the first visible row, ABSOLUTE from the first item and overrides
// POSITION; WRAP wraps modulo the item count last unless NOWRAP is set.
func (c *Container) ListItem(offset int, flags infocode.Code) *listitem.Item {
	n := len(c.items)
	if n == 0 {
		return nil
	}
	idx := c.SelectedIndex() + offset
	if flags.Has(infocode.FlagListItemPosition) {
		row := int(c.scroller.Value() / c.itemSize())
		idx = c.strategy.correctOffset(c, row, offset)
	}
	if flags.Has(infocode.FlagListItemAbsolute) {
		idx = offset
	}
	if flags.Has(infocode.FlagListItemWrap) && !flags.Has(infocode.FlagListItemNoWrap) {
		idx %= n
		if idx < 0 {
			idx += n
		}
		return c.items[idx]
	}
	if idx >= 0 && idx < n {
		return c.items[idx]
	}
	return nil
}

func (c *Container) NumItems() int {
	n := len(c.items)
	if n > 0 && c.items[0].IsParentFolder() {
		n--
	}
	return n
}

func (c *Container) NumAllItems() int { return len(c.items) }

func (c *Container) NumNonFolderItems() int {
	n := 0
	for _, it := range c.items {
		if !it.IsFolder {
			n++
		}
	}
	return n
}

// SelectedIndex is the 0-based index of the focused item, -1 when empty.
func (c *Container) SelectedIndex() int {
	if len(c.items) == 0 {
		return -1
	}
	return c.strategy.correctOffset(c, c.offset, c.cursor)
}

func (c *Container) Cursor() int { return c.cursor }

func (c *Container) Row() int {
	if c.cfg.Orientation == Vertical {
		return c.cursor / c.columns
	}
	return c.cursor % c.columns
}

func (c *Container) Column() int {
	if c.cfg.Orientation == Vertical {
		return c.cursor % c.columns
	}
	return c.cursor / c.columns
}

func (c *Container) rows() int { return c.strategy.rows(c) }

func (c *Container) NumPages() int {
	if c.itemsPerPage <= 0 {
		return 0
	}
	return (c.rows() + c.itemsPerPage - 1) / c.itemsPerPage
}

func (c *Container) CurrentPage() int { return c.strategy.currentPage(c) }

func (c *Container) HasNext() bool { return c.strategy.hasNext(c) }

func (c *Container) HasPrevious() bool { return c.strategy.hasPrevious(c) }

// IsScrolling reports sustained scrolling, or a scroll driven by the page
// control.
func (c *Container) IsScrolling() bool {
	threshold := max(c.scroller.Duration(), scrollingThreshold)
	return c.scrollTimer.elapsed(c.now) > threshold || c.pageChangeTimer.running
}

func (c *Container) IsMovingNext() bool { return c.containerMoving > 0 }

func (c *Container) IsMovingPrevious() bool { return c.containerMoving < 0 }

func (c *Container) Content() string { return c.cfg.Content }

func (c *Container) SetContent(content string) { c.cfg.Content = content }

func (c *Container) cacheOffsets() (before, after int) {
	switch {
	case c.scroller.IsScrollingDown():
		return 0, c.cfg.CacheItems
	case c.scroller.IsScrollingUp():
		return c.cfg.CacheItems, 0
	}
	return c.cfg.CacheItems / 2, c.cfg.CacheItems / 2
}

// freeMemory drops layouts outside [keepStart, keepEnd]. keepStart >
// keepEnd means the window wraps around the end of the list.
func (c *Container) freeMemory(keepStart, keepEnd int) {
	n := len(c.items)
	if keepStart < keepEnd {
		for i := 0; i < keepStart && i < n; i++ {
			c.items[i].FreeMemory()
		}
		for i := max(keepEnd+1, 0); i < n; i++ {
			c.items[i].FreeMemory()
		}
		return
	}
	for i := max(keepEnd+1, 0); i < keepStart && i < n; i++ {
		c.items[i].FreeMemory()
	}
}

func (c *Container) updateLayout(freeItems bool) {
	if freeItems || c.freeAll {
		for _, it := range c.items {
			it.FreeMemory()
		}
		c.freeAll = false
	}
	c.strategy.calculateLayout(c)
	c.setPageControlRange()
	c.invalidated = false
}

func (c *Container) pickLayout(layouts []Layout) int {
	for i := range layouts {
		if layouts[i].Condition == "" || (c.env != nil && c.env.EvaluateBool(layouts[i].Condition, c.ParentID(), nil)) {
			return i
		}
	}
	return 0
}

func (c *Container) checkLayoutConditions() {
	l, f := c.pickLayout(c.cfg.Layouts), c.pickLayout(c.cfg.FocusedLayouts)
	if l != c.layoutIdx || f != c.focusedIdx {
		c.layoutIdx, c.focusedIdx = l, f
		c.invalidated = true
		c.freeAll = true
	}
}

func (c *Container) setPageControlRange() {
	if c.cfg.PageControl == 0 {
		return
	}
	msg := message.New(message.LabelReset, c.ID(), c.cfg.PageControl)
	msg.Param1 = c.itemsPerPage
	msg.Param2 = c.rows()
	c.SendWindowMessage(msg)
	c.pageSent = false
}

// updatePageControl tells the page control the current offset when it
// changed since the last frame.
func (c *Container) updatePageControl(offset int) {
	if c.cfg.PageControl == 0 {
		return
	}
	v := c.strategy.pageControlOffset(c, offset)
	if c.pageSent && v == c.lastPageTo {
		return
	}
	msg := message.New(message.ItemSelect, c.ID(), c.cfg.PageControl)
	msg.Param1 = v
	c.SendWindowMessage(msg)
	c.pageSent = true
	c.lastPageTo = v
}

func (c *Container) updateScrollOffset(now time.Duration) {
	if c.scroller.Update(now) {
		return
	}
	if c.lastScrollStart.running && c.lastScrollStart.elapsed(now) >= scrollingGap {
		c.scrollTimer.stop()
		c.lastScrollStart.stop()
		c.containerMoving = 0
		c.setCursor(c.cursor)
	}
}

func (c *Container) resetAutoScrolling() { c.autoScrollDelay = 0 }

func (c *Container) updateAutoScrolling(now time.Duration) {
	as := c.cfg.AutoScroll
	if as == nil || as.Condition == "" || c.env == nil || !c.env.EvaluateBool(as.Condition, c.ParentID(), nil) {
		c.resetAutoScrolling()
		return
	}
	if c.rendered {
		c.autoScrollDelay += now - c.lastRender
	}
	if c.autoScrollDelay > as.MoveTime && !c.scroller.IsScrolling() {
		c.autoScrollDelay = 0
		if as.Reverse {
			c.strategy.moveUp(c, true)
		} else {
			c.strategy.moveDown(c, true)
		}
	}
}

// Process advances the container to now and lays out the visible items.
func (c *Container) Process(now time.Duration) {
	c.now = now
	c.updateAutoScrolling(now)
	if !c.waitForScrollEnd && !c.gestureActive {
		c.strategy.validateOffset(c)
	}
	c.checkLayoutConditions()
	if c.invalidated {
		c.updateLayout(false)
	}
	c.updateScrollOffset(now)
	if c.pageChangeTimer.elapsed(now) > pageChangeHold {
		c.pageChangeTimer.stop()
	}

	size := c.itemSize()
	offset := int(math.Floor(c.scroller.Value() / size))
	before, after := c.cacheOffsets()
	if len(c.items) > c.itemsPerPage+before+after {
		c.freeMemory(c.strategy.correctOffset(c, offset-before, 0), c.strategy.correctOffset(c, offset+c.itemsPerPage+1+after, 0))
	}
	c.frame = c.layoutFrame(offset, before, after)

	if c.waitForScrollEnd && !c.gestureActive {
		v := c.scroller.Value()
		if math.Abs(v-c.lastScrollValue) < size*0.001 {
			c.waitForScrollEnd = false
		}
		c.lastScrollValue = v
	}

	// the floor above lags by one row while scrolling down
	pageOffset := offset
	if c.scroller.IsScrollingDown() {
		pageOffset++
	}
	c.updatePageControl(pageOffset)

	c.lastRender = now
	c.rendered = true
	c.wasReset = false
}

func (c *Container) layoutFrame(offset, before, after int) Frame {
	frame := Frame{Offset: offset, ScrollValue: c.scroller.Value()}
	n := len(c.items)
	if n == 0 {
		return frame
	}
	size, fsize := c.itemSize(), c.focusedSize()
	cols := c.columns
	focusedRow := c.offset + c.cursor/cols

	pos := float64(offset-before)*size - c.scroller.Value()
	if focusedRow < offset {
		pos += fsize - size
	}
	end := c.length() + float64(after)*size

	current, col := offset-before, 0
	rowFocused := false
	for pos < end {
		itemNo := c.strategy.correctOffset(c, current, col)
		if itemNo >= n {
			break
		}
		focused := current*cols+col == c.offset*cols+c.cursor
		if itemNo >= 0 {
			item := c.items[itemNo]
			item.SetCurrentItem(itemNo + 1)
			r := c.processItem(item, itemNo, focused)
			sz := size
			if focused && cols == 1 {
				sz = fsize
			}
			frame.Items = append(frame.Items, FrameItem{
				Index:    itemNo,
				Pos:      pos,
				Column:   col,
				Focused:  focused,
				OnScreen: pos+sz > 0 && pos < c.length(),
				Visible:  r.Visible,
				Labels:   r.Labels,
				Item:     item,
			})
		}
		rowFocused = rowFocused || focused
		col++
		if col == cols {
			if rowFocused && cols == 1 {
				pos += fsize
			} else {
				pos += size
			}
			col, rowFocused = 0, false
			current++
		}
	}
	return frame
}

// processItem lays out one item, allocating its layout state on first use.
func (c *Container) processItem(item *listitem.Item, index int, focused bool) *listitem.Rendered {
	layout := c.layout()
	if focused {
		layout = c.focusedLayout()
		if c.HasFocus() && !c.waitForScrollEnd && index != c.lastItem {
			c.lastItem = index
			c.lastItemPath = item.Path
		}
	}
	r := item.Layout(focused)
	if r == nil {
		r = &listitem.Rendered{}
		item.SetLayout(focused, r)
	}
	if cap(r.Labels) >= len(layout.Labels) {
		r.Labels = r.Labels[:len(layout.Labels)]
	} else {
		r.Labels = make([]string, len(layout.Labels))
	}
	for i, text := range layout.Labels {
		if c.env != nil {
			r.Labels[i] = c.env.ResolveLabel(text, c.ParentID(), item)
		} else {
			r.Labels[i] = item.Label
		}
	}
	r.Visible = layout.Visible == "" || (c.env != nil && c.env.EvaluateBool(layout.Visible, c.ParentID(), item))
	return r
}

// OnMessage handles list binding, selection and page control messages.
func (c *Container) OnMessage(msg *message.Message) bool {
	if msg.ControlID == c.ID() {
		switch msg.ID {
		case message.LabelBind:
			if msg.Items == nil {
				slog.Warn("container: bind without items", "container", c.ID())
				return false
			}
			c.SetItems(msg.Items, msg.Param1)
			return true
		case message.LabelReset:
			c.strategy.onReset(c)
			c.reset()
			c.setPageControlRange()
			return true
		case message.ItemSelect:
			c.SelectItem(msg.Param1)
			return true
		case message.SetFocus:
			if msg.Param1 > 0 {
				c.SelectItem(msg.Param1 - 1)
			}
			if !c.CanFocus() {
				return false
			}
			c.SetFocus(true)
			return true
		case message.LoseFocus:
			c.SetFocus(false)
			return true
		case message.ItemSelected:
			msg.Param1 = c.SelectedIndex()
			msg.Item = c.SelectedItem()
			return true
		case message.RefreshList:
			for _, it := range c.items {
				it.FreeMemory()
			}
			c.invalidated = true
			return true
		case message.MoveOffset:
			for count := msg.Param1; count < 0; count++ {
				c.strategy.moveUp(c, true)
			}
			for count := msg.Param1; count > 0; count-- {
				c.strategy.moveDown(c, true)
			}
			return true
		}
	}
	if msg.ID == message.PageChange && c.cfg.PageControl != 0 && msg.SenderID == c.cfg.PageControl && c.IsVisible() {
		offset := c.strategy.pageChangeOffset(c, msg.Param1)
		if offset != c.offset {
			c.pageChangeTimer.startAt(c.now)
		}
		c.ScrollToOffset(offset)
		return true
	}
	return c.Base.OnMessage(msg)
}

var _ control.Control = (*Container)(nil)
