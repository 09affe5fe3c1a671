package container

// Panel is a grid: rows of Columns items, scrolled a row at a time. With
// Columns 0 the column count follows from the layout size.
type Panel struct {
	Columns int
}

func (Panel) Name() string { return "panel" }

func (p Panel) calculateLayout(c *Container) {
	l := c.layout()
	cols, rows := 1, 1
	if cs := c.crossSize(l); cs > 0 {
		cols = int(c.cross() / cs)
	}
	if s := l.size(c.cfg.Orientation); s > 0 {
		rows = int(c.length() / s)
	}
	if p.Columns > 0 {
		cols = p.Columns
	}
	c.columns = max(cols, 1)
	c.itemsPerPage = max(rows, 1)
	c.snapScroll()
}

func (Panel) rows(c *Container) int {
	return (len(c.items) + c.columns - 1) / c.columns
}

func (Panel) correctOffset(c *Container, offset, cursor int) int {
	return offset*c.columns + cursor
}

func (Panel) setCursor(c *Container, cursor int) {
	cursor = max(min(cursor, c.itemsPerPage*c.columns-1), 0)
	if !c.wasReset {
		c.setContainerMoving(cursor - c.cursor)
	}
	c.cursor = cursor
}

func (p Panel) moveDown(c *Container, wrap bool) bool {
	cols, n, cursor := c.columns, len(c.items), c.cursor
	nextRowExists := (c.offset+1+cursor/cols)*cols < n
	switch {
	case cursor+cols < c.itemsPerPage*cols && nextRowExists:
		if (c.offset+1)*cols+cursor >= n {
			p.setCursor(c, n-1-c.offset*cols)
		} else {
			p.setCursor(c, cursor+cols)
		}
	case nextRowExists:
		if (c.offset+1)*cols+cursor >= n {
			p.setCursor(c, n-1-(c.offset+1)*cols)
		}
		c.ScrollToOffset(c.offset + 1)
	case wrap:
		p.setCursor(c, cursor%cols)
		c.ScrollToOffset(0)
		c.setContainerMoving(1)
	default:
		return false
	}
	return true
}

func (p Panel) moveUp(c *Container, wrap bool) bool {
	cols, cursor := c.columns, c.cursor
	switch {
	case cursor-cols >= 0:
		p.setCursor(c, cursor-cols)
	case c.offset > 0:
		c.ScrollToOffset(c.offset - 1)
	case wrap:
		p.setCursor(c, cursor%cols+(c.itemsPerPage-1)*cols)
		offset := max(p.rows(c)-c.itemsPerPage, 0)
		if offset*cols+c.cursor >= len(c.items) {
			p.setCursor(c, len(c.items)-offset*cols-1)
		}
		c.ScrollToOffset(offset)
		c.setContainerMoving(-1)
	default:
		return false
	}
	return true
}

func (p Panel) moveLeft(c *Container, wrap bool) bool {
	col := c.cursor % c.columns
	switch {
	case col > 0:
		p.setCursor(c, c.cursor-1)
	case wrap:
		p.setCursor(c, c.cursor+c.columns-1)
		if c.offset*c.columns+c.cursor >= len(c.items) {
			p.setCursor(c, len(c.items)-c.offset*c.columns-1)
		}
	default:
		return false
	}
	return true
}

func (p Panel) moveRight(c *Container, wrap bool) bool {
	col := c.cursor % c.columns
	switch {
	case col+1 < c.columns && c.offset*c.columns+c.cursor+1 < len(c.items):
		p.setCursor(c, c.cursor+1)
	case wrap:
		p.setCursor(c, c.cursor-col)
	default:
		return false
	}
	return true
}

func (p Panel) scroll(c *Container, amount int) {
	offset := min(c.offset+amount, p.rows(c)-c.itemsPerPage)
	c.ScrollToOffset(max(offset, 0))
}

func (p Panel) pageUp(c *Container) {
	if c.offset == 0 {
		p.setCursor(c, c.cursor%c.columns)
		return
	}
	p.scroll(c, -c.itemsPerPage)
}

func (p Panel) pageDown(c *Container) {
	n := len(c.items)
	if (c.offset+c.itemsPerPage)*c.columns >= n || n < c.itemsPerPage {
		p.setCursor(c, n-c.offset*c.columns-1)
		return
	}
	p.scroll(c, c.itemsPerPage)
}

func (p Panel) selectItem(c *Container, item int) {
	p.validateOffset(c)
	if item < 0 || item >= len(c.items) {
		return
	}
	cols := c.columns
	switch {
	case item >= c.offset*cols && item < (c.offset+c.itemsPerPage)*cols:
		p.setCursor(c, item-c.offset*cols)
	case item < c.offset*cols:
		p.setCursor(c, item%cols)
		c.ScrollToOffset((item - c.cursor) / cols)
	default:
		p.setCursor(c, item%cols+cols*(c.itemsPerPage-1))
		c.ScrollToOffset((item - c.cursor) / cols)
	}
}

func (Panel) selectFromPoint(c *Container, x, y float64) bool {
	l := c.layout()
	sizeX, sizeY := c.crossSize(l), l.size(c.cfg.Orientation)
	posX, posY := x, y
	if c.cfg.Orientation == Horizontal {
		posX, posY = y, x
	}
	if posX < 0 || posY < 0 || sizeX <= 0 || sizeY <= 0 {
		return false
	}
	for row := 0; row < c.itemsPerPage+1; row++ {
		px := posX
		for col := 0; col < c.columns; col++ {
			slot := col + row*c.columns
			if px < sizeX && posY < sizeY && slot+c.offset*c.columns < len(c.items) {
				c.strategy.setCursor(c, slot)
				return true
			}
			px -= sizeX
		}
		posY -= sizeY
	}
	return false
}

func (p Panel) validateOffset(c *Container) { clampOffset(c, p.rows(c)) }

func (p Panel) offsetRange(c *Container) (int, int, bool) {
	return 0, p.rows(c) - c.itemsPerPage, true
}

func (Panel) currentPage(c *Container) int { return linearPage(c, c.offset) }

func (p Panel) hasNext(c *Container) bool {
	rows := p.rows(c)
	return c.offset != rows-c.itemsPerPage && rows > c.itemsPerPage
}

func (Panel) hasPrevious(c *Container) bool { return c.offset > 0 }

func (Panel) onReset(c *Container) {
	c.cursor = 0
	c.offset = 0
	c.scroller.SetValue(0)
}

func (Panel) pageChangeOffset(_ *Container, offset int) int  { return offset }
func (Panel) pageControlOffset(_ *Container, offset int) int { return offset }
