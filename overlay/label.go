package overlay

import (
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/render"
)

// labelCandidates are tried longest first; the first one that fits the
// index column's width is drawn.
var labelCandidates = []string{"INDEX", "IDX", "I"}

// IndexLabel is the draggable marker above the index column. Dragging
// it sideways moves the index column assignment: once the accumulated
// offset passes half the current column's width the assignment hops to
// the neighboring column and the offset is re-based so the label keeps
// its visual position under the pointer.
//
// The label holds no reference to a page; every method takes the page
// it operates on.
type IndexLabel struct {
	config     Config
	dragOffset float64
	dragging   bool
}

// NewIndexLabel returns a label using the given overlay config
func NewIndexLabel(config Config) *IndexLabel {
	return &IndexLabel{config: config}
}

// Dragging reports whether the label is currently being dragged
func (l *IndexLabel) Dragging() bool {
	return l.dragging
}

// Offset returns the accumulated drag offset in page units
func (l *IndexLabel) Offset() float64 {
	return l.dragOffset
}

// StartDrag begins a drag without moving the label
func (l *IndexLabel) StartDrag() {
	l.dragging = true
}

// StopDragging ends the drag and snaps the label back over whichever
// column is now the index column.
func (l *IndexLabel) StopDragging() {
	l.dragging = false
	l.dragOffset = 0
}

// SetDrag accumulates a horizontal pointer delta and resolves any index
// column changes it causes. Each time the offset passes half the current
// index column's width the assignment moves one column over and the
// offset is re-based by the half-widths of both columns, so a fast drag
// can hop several columns in a single call. On the first or last column
// the offset is clamped at the half-width so the label cannot leave the
// table.
func (l *IndexLabel) SetDrag(page *grid.Page, deltaX float64) {
	l.dragOffset += deltaX
	for {
		idx := page.IndexColumn()
		w, err := page.ColumnWidth(idx)
		if err != nil {
			return
		}
		half := w / 2
		if l.dragOffset > half {
			if idx >= page.ColumnCount()-1 {
				l.dragOffset = half
				return
			}
			page.SetIndexColumn(idx + 1)
			next, _ := page.ColumnWidth(idx + 1)
			l.dragOffset -= half + next/2
			continue
		}
		if l.dragOffset < -half {
			if idx <= 0 {
				l.dragOffset = -half
				return
			}
			page.SetIndexColumn(idx - 1)
			prev, _ := page.ColumnWidth(idx - 1)
			l.dragOffset += half + prev/2
			continue
		}
		return
	}
}

// Rect returns the label's bounding box: the index column's horizontal
// span shifted by the drag offset, in a fixed-height band immediately
// above the table's top border.
func (l *IndexLabel) Rect(page *grid.Page) model.Rect {
	pos := page.Position()
	w, err := page.ColumnWidth(page.IndexColumn())
	if err != nil {
		w = 0
	}
	left := pos.X + page.LeftOfIndex() + l.dragOffset
	return model.NewRect(left, pos.Y-l.config.LabelHeight, w, l.config.LabelHeight)
}

// IsWithin reports whether the page-relative point falls inside the
// label's drawn bounding box.
func (l *IndexLabel) IsWithin(page *grid.Page, p model.Point) bool {
	return l.Rect(page).Contains(p)
}

// Draw paints the label band and, while dragging, a translucent
// highlight over the full height of the index column.
func (l *IndexLabel) Draw(page *grid.Page, s render.Surface) {
	rect := l.Rect(page)
	s.FillRect(rect, l.config.LabelBackground)

	avail := rect.Width - 2*l.config.LabelPadding
	for _, text := range labelCandidates {
		if s.TextWidth(text) <= avail {
			s.DrawText(text, rect.Center(), l.config.LabelText)
			break
		}
	}

	if l.dragging {
		highlight := model.NewRect(rect.X, page.Position().Y, rect.Width, page.TableHeight())
		s.FillRect(highlight, l.config.HighlightColor)
	}
}
