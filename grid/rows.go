package grid

// RowMode identifies the strategy that produced a page's row heights
type RowMode int

const (
	// RowModeSingle is one region spanning the full table height
	RowModeSingle RowMode = iota
	// RowModeFixed slices the table into rows of one requested height
	RowModeFixed
	// RowModeDetected holds row heights inferred from index-column text
	RowModeDetected
)

func (m RowMode) String() string {
	switch m {
	case RowModeSingle:
		return "Single"
	case RowModeFixed:
		return "Fixed"
	case RowModeDetected:
		return "Detected"
	default:
		return "Unknown"
	}
}

// RowLayout is a page's row structure: the materialized row heights plus
// the strategy that produced them. Heights always sum to the table height.
// A layout is immutable once built; any table-height change collapses the
// page back to a single region.
type RowLayout struct {
	mode    RowMode
	fixed   float64 // requested row height when mode == RowModeFixed
	heights []float64
	total   float64
}

// SingleRegion returns a layout with one row covering the whole height
func SingleRegion(height float64) RowLayout {
	return RowLayout{
		mode:    RowModeSingle,
		heights: []float64{height},
		total:   height,
	}
}

// FixedRows slices tableHeight into rows of rowHeight. The last row
// absorbs any remainder so the heights always sum to tableHeight. A
// rowHeight outside (0, tableHeight) yields a single row.
func FixedRows(rowHeight, tableHeight float64) RowLayout {
	if rowHeight <= 0 || rowHeight >= tableHeight {
		return RowLayout{
			mode:    RowModeFixed,
			fixed:   rowHeight,
			heights: []float64{tableHeight},
			total:   tableHeight,
		}
	}

	count := int(tableHeight / rowHeight)
	heights := make([]float64, 0, count)
	for i := 0; i < count-1; i++ {
		heights = append(heights, rowHeight)
	}
	heights = append(heights, tableHeight-rowHeight*float64(count-1))

	return RowLayout{
		mode:    RowModeFixed,
		fixed:   rowHeight,
		heights: heights,
		total:   tableHeight,
	}
}

// DetectedRows returns a layout holding explicitly measured row heights.
// The slice must be non-empty; it is copied.
func DetectedRows(heights []float64) RowLayout {
	copied := make([]float64, len(heights))
	copy(copied, heights)

	total := 0.0
	for _, h := range copied {
		total += h
	}

	return RowLayout{
		mode:    RowModeDetected,
		heights: copied,
		total:   total,
	}
}

// Mode returns the strategy that produced this layout
func (l RowLayout) Mode() RowMode {
	return l.mode
}

// Count returns the number of rows
func (l RowLayout) Count() int {
	return len(l.heights)
}

// Total returns the summed row heights (the table height)
func (l RowLayout) Total() float64 {
	return l.total
}

// Heights returns a copy of the row heights
func (l RowLayout) Heights() []float64 {
	out := make([]float64, len(l.heights))
	copy(out, l.heights)
	return out
}

// Height returns the height of row i
func (l RowLayout) Height(i int) (float64, error) {
	if i < 0 || i >= len(l.heights) {
		return 0, outOfRange("row", i, len(l.heights))
	}
	return l.heights[i], nil
}
