package overlay

import (
	"image/color"

	"github.com/tsawler/gridmark/model"
)

// Redraw repaints the page's overlay surface from scratch: the index
// label band first, then row borders, then column borders, then any
// live selection rectangle. The border being hovered or dragged is
// drawn in the active style. The cursor affordance is not drawn here;
// the embedding UI reads it from [Controller.Cursor].
func (c *Controller) Redraw() {
	page := c.registry.Page(c.handle)
	s := c.registry.Surface(c.handle)
	if page == nil || s == nil {
		return
	}
	s.Clear()

	if label := c.registry.Label(c.handle); label != nil {
		label.Draw(page, s)
	}

	table := page.TableRect()
	for i, y := range page.RowBoundaries() {
		col, w := c.lineStyle(ItemRowBorder, i)
		s.StrokeLine(model.Point{X: table.Left(), Y: y}, model.Point{X: table.Right(), Y: y}, col, w)
	}
	for i, x := range page.ColumnBoundaries() {
		col, w := c.lineStyle(ItemColumnBorder, i)
		s.StrokeLine(model.Point{X: x, Y: table.Top()}, model.Point{X: x, Y: table.Bottom()}, col, w)
	}

	if c.phase == PhaseDragging && c.item == ItemSelectionBox {
		s.DashRect(c.selection, c.config.SelectionColor)
	}
}

// lineStyle picks color and stroke width for a border line, switching
// to the active style for the line under interaction.
func (c *Controller) lineStyle(item Item, index int) (color.RGBA, float64) {
	if c.phase != PhaseIdle && c.item == item && c.index == index {
		return c.config.ActiveColor, c.config.ActiveLineWidth
	}
	return c.config.GridColor, c.config.LineWidth
}
