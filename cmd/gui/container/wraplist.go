package container

// WrapList is an endless list: the focused slot stays at FixedPosition and
// the items scroll past it, wrapping at both ends.
type WrapList struct {
	FixedPosition int
}

const (
	mouseScrollSpeed = 0.05
	mouseMaxAmount   = 1.0
)

func (WrapList) Name() string { return "wraplist" }

func (w WrapList) calculateLayout(c *Container) {
	c.columns = 1
	c.itemsPerPage = max(int((c.length()-c.focusedSize())/c.itemSize())+1, 1)
	c.cursor = max(min(w.FixedPosition, c.itemsPerPage-1), 0)
	c.snapScroll()
}

func (WrapList) rows(c *Container) int { return len(c.items) }

func (WrapList) correctOffset(c *Container, offset, cursor int) int {
	n := len(c.items)
	if n == 0 {
		return 0
	}
	i := (offset + cursor) % n
	if i < 0 {
		i += n
	}
	return i
}

func (WrapList) setCursor(c *Container, cursor int) {
	c.cursor = max(min(cursor, c.itemsPerPage-1), 0)
}

func (WrapList) moveUp(c *Container, _ bool) bool {
	c.ScrollToOffset(c.offset - 1)
	return true
}

func (WrapList) moveDown(c *Container, _ bool) bool {
	c.ScrollToOffset(c.offset + 1)
	return true
}

func (WrapList) moveLeft(*Container, bool) bool  { return false }
func (WrapList) moveRight(*Container, bool) bool { return false }

func (WrapList) scroll(c *Container, amount int) { c.ScrollToOffset(c.offset + amount) }

func (w WrapList) pageUp(c *Container)   { w.scroll(c, -c.itemsPerPage) }
func (w WrapList) pageDown(c *Container) { w.scroll(c, c.itemsPerPage) }

// selectItem scrolls the shorter way round to bring item under the cursor.
func (WrapList) selectItem(c *Container, item int) {
	n := len(c.items)
	if item < 0 || item >= n {
		return
	}
	target := item - c.cursor
	diff := (target - c.offset) % n
	if diff < 0 {
		diff += n
	}
	if diff > n/2 {
		diff -= n
	}
	c.ScrollToOffset(c.offset + diff)
}

// selectFromPoint scrolls gradually while the pointer rests before or
// after the focused slot.
func (WrapList) selectFromPoint(c *Container, x, y float64) bool {
	size := c.itemSize()
	start := float64(c.cursor) * size
	end := start + c.focusedSize()
	pos := y
	if c.cfg.Orientation == Horizontal {
		pos = x
	}
	switch {
	case pos < start-0.5*size:
		amount := min((start-pos)/size, mouseMaxAmount)
		c.analogScrollCount += amount * amount * mouseScrollSpeed
		if c.analogScrollCount > 1 {
			c.ScrollToOffset(c.offset - 1)
			c.analogScrollCount = 0
		}
		return true
	case pos > end+0.5*size:
		amount := min((pos-end)/size, mouseMaxAmount)
		c.analogScrollCount += amount * amount * mouseScrollSpeed
		if c.analogScrollCount > 1 {
			c.ScrollToOffset(c.offset + 1)
			c.analogScrollCount = 0
		}
		return true
	}
	return pos >= start && pos < end
}

// validateOffset is a no-op: every offset is valid, slots wrap at render.
func (WrapList) validateOffset(*Container) {}

func (WrapList) offsetRange(*Container) (int, int, bool) { return 0, 0, false }

func (w WrapList) currentPage(c *Container) int {
	if c.itemsPerPage <= 0 {
		return 0
	}
	rows := len(c.items)
	offset := w.correctOffset(c, c.offset, c.cursor)
	if offset+c.itemsPerPage-c.cursor >= rows {
		return (rows + c.itemsPerPage - 1) / c.itemsPerPage
	}
	return offset/c.itemsPerPage + 1
}

func (WrapList) hasNext(*Container) bool     { return false }
func (WrapList) hasPrevious(*Container) bool { return false }

func (WrapList) onReset(*Container) {}

func (WrapList) pageChangeOffset(c *Container, offset int) int { return offset - c.cursor }

func (w WrapList) pageControlOffset(c *Container, offset int) int {
	return w.correctOffset(c, offset, c.cursor)
}
