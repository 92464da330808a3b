package overlay

import (
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
)

// Controller is the per-page interaction state machine. It translates a
// stream of page-relative pointer events into grid mutations: hovering
// highlights the border under the pointer, dragging resizes columns and
// rows, moves the whole table, relocates the index label, or sweeps out
// a word-count selection box.
//
// A controller never holds the page directly; it reads and writes all
// geometry through its registry handle.
type Controller struct {
	registry *Registry
	handle   Handle
	config   Config

	phase    Phase
	item     Item
	index    int
	firstPos model.Point
	lastPos  model.Point
	cursor   Cursor

	selection model.Rect
	selCount  int
	onSelect  func(count int, bounds model.Rect)
}

// Handle returns the registry handle of the page this controller drives
func (c *Controller) Handle() Handle {
	return c.handle
}

// Phase returns the current interaction phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// ActiveItem returns the hovered or dragged item and its border index
func (c *Controller) ActiveItem() (Item, int) {
	return c.item, c.index
}

// Cursor returns the pointer affordance the embedding UI should show
func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// Selection returns the live selection rectangle and its word count.
// The bool is false unless a selection drag is in progress.
func (c *Controller) Selection() (model.Rect, int, bool) {
	if c.phase != PhaseDragging || c.item != ItemSelectionBox {
		return model.Rect{}, 0, false
	}
	return c.selection, c.selCount, true
}

// OnSelection registers a callback fired on every selection drag update
// with the current word count and bounds.
func (c *Controller) OnSelection(fn func(count int, bounds model.Rect)) {
	c.onSelect = fn
}

// HitTest resolves what a page-relative point is over. The index label
// wins over everything else; points outside the table's buffered
// bounding box hit nothing; then the top and bottom row borders, the
// column borders left to right, and finally the table body.
func (c *Controller) HitTest(p model.Point) (Item, int) {
	page := c.registry.Page(c.handle)
	if page == nil {
		return ItemNone, 0
	}
	if label := c.registry.Label(c.handle); label != nil && label.IsWithin(page, p) {
		return ItemIndexLabel, page.IndexColumn()
	}

	table := page.TableRect()
	if !table.Expand(c.config.HoverBuffer).Contains(p) {
		return ItemNone, 0
	}

	// Only the outermost row borders are draggable; interior row lines
	// come from detection and are not editable directly.
	rows := page.RowBoundaries()
	if model.Near(p.Y, rows[0], c.config.HoverBuffer) {
		return ItemRowBorder, 0
	}
	if last := len(rows) - 1; model.Near(p.Y, rows[last], c.config.HoverBuffer) {
		return ItemRowBorder, last
	}

	for i, x := range page.ColumnBoundaries() {
		if model.Near(p.X, x, c.config.HoverBuffer) {
			return ItemColumnBorder, i
		}
	}
	return ItemWholeTable, 0
}

// PointerDown begins a drag. Over the table it grabs whatever the point
// hits; anywhere else it starts a selection box.
func (c *Controller) PointerDown(p model.Point) {
	item, index := c.HitTest(p)
	c.firstPos = p
	c.lastPos = p
	if item == ItemNone {
		c.item = ItemSelectionBox
		c.index = 0
		c.selection = model.NewRectFromPoints(p, p)
		c.selCount = 0
	} else {
		c.item = item
		c.index = index
		if item == ItemIndexLabel {
			if label := c.registry.Label(c.handle); label != nil {
				label.StartDrag()
			}
		}
	}
	c.phase = PhaseDragging
	c.cursor = cursorFor(c.item)
	c.Redraw()
}

// PointerMove updates hover state, or applies the pointer delta to the
// dragged item.
func (c *Controller) PointerMove(p model.Point) {
	if c.phase != PhaseDragging {
		c.hover(p)
		return
	}
	c.drag(p)
	c.lastPos = p
	c.Redraw()
}

// PointerUp ends any drag and returns the controller to idle
func (c *Controller) PointerUp(p model.Point) {
	if c.phase == PhaseDragging && c.item == ItemIndexLabel {
		if label := c.registry.Label(c.handle); label != nil {
			label.StopDragging()
		}
	}
	c.phase = PhaseIdle
	c.item = ItemNone
	c.index = 0
	c.cursor = CursorDefault
	c.selection = model.Rect{}
	c.selCount = 0
	c.Redraw()
}

// ClearHover drops any hover state, returning the controller to idle.
// The dispatcher calls this on pages the pointer has left; a drag in
// progress is never interrupted.
func (c *Controller) ClearHover() {
	if c.phase != PhaseHover {
		return
	}
	c.phase = PhaseIdle
	c.item = ItemNone
	c.index = 0
	c.cursor = CursorDefault
	c.Redraw()
}

func (c *Controller) hover(p model.Point) {
	item, index := c.HitTest(p)
	phase := PhaseHover
	if item == ItemNone {
		phase = PhaseIdle
	}
	changed := item != c.item || index != c.index || phase != c.phase
	c.phase = phase
	c.item = item
	c.index = index
	c.cursor = cursorFor(item)
	if changed {
		c.Redraw()
	}
}

func (c *Controller) drag(p model.Point) {
	page := c.registry.Page(c.handle)
	if page == nil {
		return
	}
	dx := p.X - c.lastPos.X
	dy := p.Y - c.lastPos.Y

	switch c.item {
	case ItemColumnBorder:
		if c.index == 0 {
			c.dragTableLeftEdge(page, dx)
		} else if w, err := page.ColumnWidth(c.index - 1); err == nil {
			page.SetColumnWidth(c.index-1, w+dx)
		}
	case ItemRowBorder:
		if c.index == 0 {
			c.dragTableTopEdge(page, dy)
		} else {
			page.SetTableHeight(page.TableHeight() + dy)
		}
	case ItemWholeTable:
		pos := page.Position()
		page.SetPosition(pos.X+dx, pos.Y+dy)
	case ItemIndexLabel:
		if label := c.registry.Label(c.handle); label != nil {
			label.SetDrag(page, dx)
		}
	case ItemSelectionBox:
		c.selection = model.NewRectFromPoints(c.firstPos, p)
		c.selCount = page.CountWordsBounded(c.firstPos, p)
		if c.onSelect != nil {
			c.onSelect(c.selCount, c.selection)
		}
	}
}

// dragTableLeftEdge moves the table's left border. Position and column 0
// width change in lockstep so the border tracks the pointer while every
// other column stays fixed in page space.
func (c *Controller) dragTableLeftEdge(page *grid.Page, dx float64) {
	if dx == 0 {
		return
	}
	pos := page.Position()
	w, err := page.ColumnWidth(0)
	if err != nil {
		return
	}
	if dx < 0 {
		// Moving left frees space on the right of the table, so move
		// first and grow column 0 by the distance actually moved.
		x, _ := page.SetPosition(pos.X+dx, pos.Y)
		page.SetColumnWidth(0, w-(x-pos.X))
		return
	}
	// Moving right shrinks column 0; the border stops where the column
	// bottoms out at its minimum width.
	applied := page.SetColumnWidth(0, w-dx)
	page.SetPosition(pos.X+(w-applied), pos.Y)
}

// dragTableTopEdge moves the table's top border, keeping the bottom
// edge fixed: position and height change in lockstep.
func (c *Controller) dragTableTopEdge(page *grid.Page, dy float64) {
	if dy == 0 {
		return
	}
	pos := page.Position()
	h := page.TableHeight()
	if dy < 0 {
		_, y := page.SetPosition(pos.X, pos.Y+dy)
		page.SetTableHeight(h - (y - pos.Y))
		return
	}
	applied := page.SetTableHeight(h - dy)
	page.SetPosition(pos.X, pos.Y+(h-applied))
}
