package container

// Strategy is the navigation and sizing behaviour that distinguishes list,
// panel and wraplist containers. Offsets are in rows; the cursor is the
// focused slot within the visible page.
type Strategy interface {
	Name() string

	calculateLayout(c *Container)
	rows(c *Container) int
	correctOffset(c *Container, offset, cursor int) int
	setCursor(c *Container, cursor int)

	moveUp(c *Container, wrap bool) bool
	moveDown(c *Container, wrap bool) bool
	moveLeft(c *Container, wrap bool) bool
	moveRight(c *Container, wrap bool) bool
	scroll(c *Container, amount int)
	pageUp(c *Container)
	pageDown(c *Container)
	selectItem(c *Container, item int)
	selectFromPoint(c *Container, x, y float64) bool

	validateOffset(c *Container)
	offsetRange(c *Container) (lo, hi int, ok bool)

	currentPage(c *Container) int
	hasNext(c *Container) bool
	hasPrevious(c *Container) bool

	onReset(c *Container)
	pageChangeOffset(c *Container, offset int) int
	pageControlOffset(c *Container, offset int) int
}

// StrategyByName maps the names used in scenario files.
func StrategyByName(name string, columns, fixedPosition int) (Strategy, bool) {
	switch name {
	case "", "list":
		return List{}, true
	case "panel":
		return Panel{Columns: columns}, true
	case "wraplist":
		return WrapList{FixedPosition: fixedPosition}, true
	}
	return List{}, false
}

// clampOffset keeps the offset valid and the scroller inside the list
// unless a scroll is in flight, where easing may overshoot.
func clampOffset(c *Container, rows int) {
	size := c.itemSize()
	last := rows - c.itemsPerPage
	if c.offset > last || (!c.scroller.IsScrolling() && c.scroller.Value() > float64(last)*size) {
		c.offset = max(0, last)
		c.scroller.SetValue(float64(c.offset) * size)
	}
	if c.offset < 0 || (!c.scroller.IsScrolling() && c.scroller.Value() < 0) {
		c.offset = 0
		c.scroller.SetValue(0)
	}
}

// linearPage is the page number for offset-based containers; the last
// page is reported once it is partly visible.
func linearPage(c *Container, offset int) int {
	if c.itemsPerPage <= 0 {
		return 0
	}
	rows := c.rows()
	if offset+c.itemsPerPage >= rows {
		return (rows + c.itemsPerPage - 1) / c.itemsPerPage
	}
	return offset/c.itemsPerPage + 1
}

// List is a single column (or row) of items.
type List struct{}

func (List) Name() string { return "list" }

func (List) calculateLayout(c *Container) {
	c.columns = 1
	c.itemsPerPage = max(int((c.length()-c.focusedSize())/c.itemSize())+1, 1)
	c.snapScroll()
}

func (List) rows(c *Container) int { return len(c.items) }

func (List) correctOffset(_ *Container, offset, cursor int) int { return offset + cursor }

func (List) setCursor(c *Container, cursor int) {
	cursor = max(min(cursor, c.itemsPerPage-1), 0)
	if !c.wasReset {
		c.setContainerMoving(cursor - c.cursor)
	}
	c.cursor = cursor
}

func (l List) moveUp(c *Container, wrap bool) bool {
	switch {
	case c.cursor > 0:
		l.setCursor(c, c.cursor-1)
	case c.offset > 0:
		c.ScrollToOffset(c.offset - 1)
	case wrap:
		if len(c.items) > 0 {
			offset := max(len(c.items)-c.itemsPerPage, 0)
			l.setCursor(c, len(c.items)-offset-1)
			c.ScrollToOffset(offset)
			c.setContainerMoving(-1)
		}
	default:
		return false
	}
	return true
}

func (l List) moveDown(c *Container, wrap bool) bool {
	switch {
	case len(c.items) > 0 && c.offset+c.cursor+1 < len(c.items):
		if c.cursor+1 < c.itemsPerPage {
			l.setCursor(c, c.cursor+1)
		} else {
			c.ScrollToOffset(c.offset + 1)
		}
	case wrap:
		l.setCursor(c, 0)
		c.ScrollToOffset(0)
		c.setContainerMoving(1)
	default:
		return false
	}
	return true
}

func (List) moveLeft(*Container, bool) bool  { return false }
func (List) moveRight(*Container, bool) bool { return false }

func (List) scroll(c *Container, amount int) {
	offset := min(c.offset+amount, len(c.items)-c.itemsPerPage)
	c.ScrollToOffset(max(offset, 0))
}

func (l List) pageUp(c *Container) {
	if c.offset == 0 {
		l.setCursor(c, 0)
		return
	}
	l.scroll(c, -c.itemsPerPage)
}

func (l List) pageDown(c *Container) {
	if c.offset == len(c.items)-c.itemsPerPage || len(c.items) < c.itemsPerPage {
		l.setCursor(c, len(c.items)-c.offset-1)
		return
	}
	l.scroll(c, c.itemsPerPage)
}

func (l List) selectItem(c *Container, item int) {
	l.validateOffset(c)
	if item < 0 || item >= len(c.items) {
		return
	}
	switch {
	case item >= c.offset && item < c.offset+c.itemsPerPage:
		l.setCursor(c, item-c.offset)
	case item < c.offset:
		l.setCursor(c, 0)
		c.ScrollToOffset(item)
	default:
		l.setCursor(c, c.itemsPerPage-1)
		c.ScrollToOffset(item - c.cursor)
	}
}

// cursorFromPoint finds the visible row under a point, checking one row
// past the page for a partly visible item.
func (List) cursorFromPoint(c *Container, x, y float64) int {
	pos, cross := y, x
	if c.cfg.Orientation == Horizontal {
		pos, cross = x, y
	}
	if pos < 0 || cross < 0 {
		return -1
	}
	for row := 0; row < c.itemsPerPage+1; row++ {
		layout := c.layout()
		if row == c.cursor {
			layout = c.focusedLayout()
		}
		sz := layout.size(c.cfg.Orientation)
		if pos < sz && row+c.offset < len(c.items) {
			if cs := c.crossSize(layout); cs > 0 && cross >= cs {
				return -1
			}
			return row
		}
		pos -= sz
	}
	return -1
}

func (l List) selectFromPoint(c *Container, x, y float64) bool {
	row := l.cursorFromPoint(c, x, y)
	if row < 0 {
		return false
	}
	l.setCursor(c, row)
	return true
}

func (List) validateOffset(c *Container) { clampOffset(c, len(c.items)) }

func (List) offsetRange(c *Container) (int, int, bool) {
	return 0, len(c.items) - c.itemsPerPage, true
}

func (List) currentPage(c *Container) int { return linearPage(c, c.offset) }

func (List) hasNext(c *Container) bool {
	return c.offset != len(c.items)-c.itemsPerPage && len(c.items) >= c.itemsPerPage
}

func (List) hasPrevious(c *Container) bool { return c.offset > 0 }

func (List) onReset(c *Container) {
	c.cursor = 0
	c.offset = 0
	c.scroller.SetValue(0)
}

func (List) pageChangeOffset(_ *Container, offset int) int  { return offset }
func (List) pageControlOffset(_ *Container, offset int) int { return offset }
