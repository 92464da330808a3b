package overlay

import (
	"testing"

	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/render"
)

// newLabelPage returns a 200x100 page with two 50-unit columns, a
// 60-unit tall table positioned at (20, 20).
func newLabelPage(t *testing.T, words ...model.Word) *grid.Page {
	t.Helper()
	page := grid.NewPage(grid.PageInput{Width: 200, Height: 100, Words: words})
	if got := page.SetColumnCount(2); got != 2 {
		t.Fatalf("SetColumnCount(2) = %d, want 2", got)
	}
	page.SetTableHeight(60)
	page.SetPosition(20, 20)
	return page
}

func TestLabelRect(t *testing.T) {
	page := newLabelPage(t)
	label := NewIndexLabel(DefaultConfig())

	got := label.Rect(page)
	want := model.NewRect(20, 6, 50, 14)
	if got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}

	// The rect follows the index column.
	page.SetIndexColumn(1)
	got = label.Rect(page)
	want = model.NewRect(70, 6, 50, 14)
	if got != want {
		t.Errorf("Rect() after SetIndexColumn(1) = %+v, want %+v", got, want)
	}
}

func TestLabelIsWithin(t *testing.T) {
	page := newLabelPage(t)
	label := NewIndexLabel(DefaultConfig())

	tests := []struct {
		name string
		p    model.Point
		want bool
	}{
		{"center of band", model.Point{X: 45, Y: 13}, true},
		{"top edge", model.Point{X: 20, Y: 6}, true},
		{"bottom edge", model.Point{X: 70, Y: 20}, true},
		{"left of band", model.Point{X: 19, Y: 13}, false},
		{"right of band", model.Point{X: 71, Y: 13}, false},
		{"above band", model.Point{X: 45, Y: 5}, false},
		{"inside table", model.Point{X: 45, Y: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := label.IsWithin(page, tt.p); got != tt.want {
				t.Errorf("IsWithin(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestLabelIsWithinFollowsDragOffset(t *testing.T) {
	page := newLabelPage(t)
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, 10)

	if !label.IsWithin(page, model.Point{X: 75, Y: 13}) {
		t.Error("point inside shifted band not hit")
	}
	if label.IsWithin(page, model.Point{X: 25, Y: 13}) {
		t.Error("point behind shifted band still hit")
	}
}

func TestLabelDragCrossesRight(t *testing.T) {
	page := newLabelPage(t)
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, 30)

	if got := page.IndexColumn(); got != 1 {
		t.Fatalf("index column = %d, want 1", got)
	}
	// The offset re-bases by both half-widths: 30 - (25 + 25) = -20.
	if got := label.Offset(); got != -20 {
		t.Errorf("offset = %v, want -20", got)
	}
}

func TestLabelDragCrossesLeft(t *testing.T) {
	page := newLabelPage(t)
	page.SetIndexColumn(1)
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, -30)

	if got := page.IndexColumn(); got != 0 {
		t.Fatalf("index column = %d, want 0", got)
	}
	if got := label.Offset(); got != 20 {
		t.Errorf("offset = %v, want 20", got)
	}
}

func TestLabelDragClampsAtFirstColumn(t *testing.T) {
	page := newLabelPage(t)
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, -40)

	if got := page.IndexColumn(); got != 0 {
		t.Errorf("index column = %d, want 0", got)
	}
	if got := label.Offset(); got != -25 {
		t.Errorf("offset = %v, want -25 (clamped at half width)", got)
	}
}

func TestLabelDragClampsAtLastColumn(t *testing.T) {
	page := newLabelPage(t)
	page.SetIndexColumn(1)
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, 40)

	if got := page.IndexColumn(); got != 1 {
		t.Errorf("index column = %d, want 1", got)
	}
	if got := label.Offset(); got != 25 {
		t.Errorf("offset = %v, want 25 (clamped at half width)", got)
	}
}

// A single large delta can hop the index assignment across several
// columns, re-basing the offset at each crossing.
func TestLabelDragHopsMultipleColumns(t *testing.T) {
	page := grid.NewPage(grid.PageInput{Width: 200, Height: 100})
	if got := page.SetColumnCount(4); got != 4 {
		t.Fatalf("SetColumnCount(4) = %d, want 4", got)
	}
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, 80)

	if got := page.IndexColumn(); got != 2 {
		t.Errorf("index column = %d, want 2", got)
	}
	if got := label.Offset(); got != -20 {
		t.Errorf("offset = %v, want -20", got)
	}
}

func TestLabelStopDraggingSnapsBack(t *testing.T) {
	page := newLabelPage(t)
	label := NewIndexLabel(DefaultConfig())

	label.StartDrag()
	label.SetDrag(page, 30)
	label.StopDragging()

	if label.Dragging() {
		t.Error("still dragging after StopDragging")
	}
	if got := label.Offset(); got != 0 {
		t.Errorf("offset = %v, want 0", got)
	}
	// The assignment made during the drag sticks.
	if got := page.IndexColumn(); got != 1 {
		t.Errorf("index column = %d, want 1", got)
	}
}

func TestLabelDraw(t *testing.T) {
	page := newLabelPage(t)
	cfg := DefaultConfig()
	label := NewIndexLabel(cfg)
	s := render.NewImageSurface(200, 100)

	label.Draw(page, s)

	// Band fill at page (40, 10), device (80, 20) at the default scale.
	r, g, b, a := s.Image().At(80, 20).RGBA()
	if uint8(r>>8) != cfg.LabelBackground.R || uint8(g>>8) != cfg.LabelBackground.G ||
		uint8(b>>8) != cfg.LabelBackground.B || uint8(a>>8) != 255 {
		t.Errorf("band pixel = (%d,%d,%d,%d), want label background", r>>8, g>>8, b>>8, a>>8)
	}

	// No highlight over the column while not dragging.
	if _, _, _, a := s.Image().At(80, 100).RGBA(); a != 0 {
		t.Errorf("column pixel painted while not dragging, alpha %d", a>>8)
	}

	s.Clear()
	label.StartDrag()
	label.Draw(page, s)

	// Dragging overlays a translucent highlight down the full column.
	if _, _, _, a := s.Image().At(80, 100).RGBA(); uint8(a>>8) != 255 {
		t.Errorf("highlight missing at column pixel, alpha %d", a>>8)
	}
}
