package grid

import (
	"math"

	"github.com/tsawler/gridmark/model"
)

// PageInput is what a page source hands the core once rendering and
// recognition finish: the page's pixel dimensions and its words.
type PageInput struct {
	Width  float64
	Height float64
	Words  []model.Word
}

// Page owns one page's dimensions, word list, and table geometry. All
// geometry mutators clamp their arguments against the page bounds and
// return the value actually applied, so the bounds invariant
//
//	0 <= x, x+tableWidth <= width, 0 <= y, y+tableHeight <= height
//
// holds after every call. Index-taking accessors return ErrOutOfRange for
// indices outside the current range; mutators never fail.
type Page struct {
	width  float64
	height float64
	words  []model.Word

	position     model.Point
	columnWidths []float64
	tableWidth   float64 // cached sum of columnWidths
	rows         RowLayout
	indexColumn  int
	leftOfIndex  float64 // cached sum of widths strictly left of indexColumn

	config Config
}

// NewPage creates a page with default configuration. The table starts at
// the origin with a single default-width column and one region covering
// the full page height.
func NewPage(input PageInput) *Page {
	return NewPageWithConfig(input, DefaultConfig())
}

// NewPageWithConfig creates a page with the given geometry limits
func NewPageWithConfig(input PageInput, config Config) *Page {
	words := make([]model.Word, len(input.Words))
	copy(words, input.Words)
	model.SortWords(words)

	lower := math.Min(config.MinColumnWidth, input.Width)
	firstWidth := model.Clamp(config.DefaultColumnWidth, lower, input.Width)

	return &Page{
		width:        input.Width,
		height:       input.Height,
		words:        words,
		columnWidths: []float64{firstWidth},
		tableWidth:   firstWidth,
		rows:         SingleRegion(input.Height),
		config:       config,
	}
}

// Width returns the page width in rendering units
func (p *Page) Width() float64 {
	return p.width
}

// Height returns the page height in rendering units
func (p *Page) Height() float64 {
	return p.height
}

// Words returns the page's word list, sorted ascending by (y, x). The
// slice is owned by the page and must not be modified.
func (p *Page) Words() []model.Word {
	return p.words
}

// Config returns the geometry limits this page enforces
func (p *Page) Config() Config {
	return p.config
}

// Position returns the table's top-left corner
func (p *Page) Position() model.Point {
	return p.position
}

// ColumnCount returns the number of columns
func (p *Page) ColumnCount() int {
	return len(p.columnWidths)
}

// ColumnWidths returns a copy of the column widths
func (p *Page) ColumnWidths() []float64 {
	out := make([]float64, len(p.columnWidths))
	copy(out, p.columnWidths)
	return out
}

// ColumnWidth returns the width of column col
func (p *Page) ColumnWidth(col int) (float64, error) {
	if col < 0 || col >= len(p.columnWidths) {
		return 0, outOfRange("column", col, len(p.columnWidths))
	}
	return p.columnWidths[col], nil
}

// TableWidth returns the summed column widths
func (p *Page) TableWidth() float64 {
	return p.tableWidth
}

// Rows returns the current row layout
func (p *Page) Rows() RowLayout {
	return p.rows
}

// RowCount returns the number of rows
func (p *Page) RowCount() int {
	return p.rows.Count()
}

// RowHeights returns a copy of the row heights
func (p *Page) RowHeights() []float64 {
	return p.rows.Heights()
}

// RowHeight returns the height of row i
func (p *Page) RowHeight(i int) (float64, error) {
	if i < 0 || i >= p.rows.Count() {
		return 0, outOfRange("row", i, p.rows.Count())
	}
	return p.rows.heights[i], nil
}

// TableHeight returns the summed row heights
func (p *Page) TableHeight() float64 {
	return p.rows.Total()
}

// TableRect returns the table's bounding rectangle on the page
func (p *Page) TableRect() model.Rect {
	return model.NewRect(p.position.X, p.position.Y, p.tableWidth, p.rows.Total())
}

// IndexColumn returns the index-column pointer
func (p *Page) IndexColumn() int {
	return p.indexColumn
}

// LeftOfIndex returns the summed widths of columns left of the index column
func (p *Page) LeftOfIndex() float64 {
	return p.leftOfIndex
}

// ColumnBoundaries returns the absolute X coordinate of every vertical
// border, left to right. Length is ColumnCount()+1.
func (p *Page) ColumnBoundaries() []float64 {
	bounds := make([]float64, 0, len(p.columnWidths)+1)
	x := p.position.X
	bounds = append(bounds, x)
	for _, w := range p.columnWidths {
		x += w
		bounds = append(bounds, x)
	}
	return bounds
}

// RowBoundaries returns the absolute Y coordinate of every horizontal
// border, top to bottom. Length is RowCount()+1.
func (p *Page) RowBoundaries() []float64 {
	bounds := make([]float64, 0, p.rows.Count()+1)
	y := p.position.Y
	bounds = append(bounds, y)
	for _, h := range p.rows.heights {
		y += h
		bounds = append(bounds, y)
	}
	return bounds
}

// SetPosition moves the table's top-left corner, clamping so the table
// stays inside the page. Returns the applied coordinates.
func (p *Page) SetPosition(x, y float64) (float64, float64) {
	p.position.X = model.Clamp(x, 0, p.width-p.tableWidth)
	p.position.Y = model.Clamp(y, 0, p.height-p.rows.Total())
	return p.position.X, p.position.Y
}

// SetColumnWidth resizes column col. The width is clamped to the range
// [MinColumnWidth, current width + unused space right of the table]: a
// column may grow only into space the table does not already occupy.
// Returns the applied width.
func (p *Page) SetColumnWidth(col int, width float64) float64 {
	col = clampInt(col, 0, len(p.columnWidths)-1)

	current := p.columnWidths[col]
	unused := p.width - (p.position.X + p.tableWidth)
	upper := current + unused
	lower := math.Min(p.config.MinColumnWidth, upper)

	applied := model.Clamp(width, lower, upper)
	delta := applied - current

	p.columnWidths[col] = applied
	p.tableWidth += delta
	if col < p.indexColumn {
		p.leftOfIndex += delta
	}

	return applied
}

// SetColumnCount changes the number of columns, clamping the target to
// [1, MaxColumns]. Shrinking pops trailing columns, re-targeting the
// index column first if it would be removed. Growing by delta columns is
// resolved in a strict fallback order:
//
//  1. delta default-width columns, when that fits the unused space right
//     of the table;
//  2. delta columns sharing all unused space evenly, when each share is
//     at least MinColumnWidth;
//  3. shifting the table left (down to x=0) to free the shortfall, then
//     delta minimum-width columns;
//  4. otherwise retry with the largest count that does fit.
//
// Returns the final count, which may be smaller than requested.
func (p *Page) SetColumnCount(n int) int {
	n = clampInt(n, 1, p.config.MaxColumns)
	count := len(p.columnWidths)
	if n == count {
		return n
	}

	if n < count {
		// Keep the index pointer on a surviving column.
		if p.indexColumn > n-1 {
			p.SetIndexColumn(n - 1)
		}
		for len(p.columnWidths) > n {
			last := len(p.columnWidths) - 1
			p.tableWidth -= p.columnWidths[last]
			p.columnWidths = p.columnWidths[:last]
		}
		return n
	}

	delta := n - count
	unused := p.width - (p.position.X + p.tableWidth)

	// Tier 1: default-width columns fit as-is.
	if float64(delta)*p.config.DefaultColumnWidth <= unused {
		p.appendColumns(delta, p.config.DefaultColumnWidth)
		return n
	}

	// Tier 2: split all unused space evenly.
	if shared := unused / float64(delta); shared >= p.config.MinColumnWidth {
		p.appendColumns(delta, shared)
		return n
	}

	// Tier 3: shift the table left to free the shortfall.
	shortfall := float64(delta)*p.config.MinColumnWidth - unused
	if p.position.X >= shortfall {
		p.position.X -= shortfall
		p.appendColumns(delta, p.config.MinColumnWidth)
		return n
	}

	// Tier 4: no way to add delta columns; retry with the most that fit
	// even after shifting to x=0.
	maxDelta := int((unused + p.position.X) / p.config.MinColumnWidth)
	return p.SetColumnCount(count + maxDelta)
}

// appendColumns appends n columns of the given width
func (p *Page) appendColumns(n int, width float64) {
	for i := 0; i < n; i++ {
		p.columnWidths = append(p.columnWidths, width)
		p.tableWidth += width
	}
}

// SetTableHeight resizes the table vertically, clamping the height to
// [MinTableHeight, space below the table's top edge]. Any existing row
// structure collapses back to a single region pending re-detection.
// Returns the applied height.
func (p *Page) SetTableHeight(h float64) float64 {
	upper := p.height - p.position.Y
	lower := math.Min(p.config.MinTableHeight, upper)

	applied := model.Clamp(h, lower, upper)
	p.rows = SingleRegion(applied)
	return applied
}

// SetIndexColumn re-targets the index column, clamping to the current
// column range, and recomputes the cached left-of-index width from
// scratch. Returns the applied column.
func (p *Page) SetIndexColumn(col int) int {
	col = clampInt(col, 0, len(p.columnWidths)-1)
	p.indexColumn = col

	sum := 0.0
	for i := 0; i < col; i++ {
		sum += p.columnWidths[i]
	}
	p.leftOfIndex = sum

	return col
}

// UseFixedRows slices the current table height into rows of the given
// height, clamped to [MinTableHeight, table height]; the last row absorbs
// any remainder. Returns the resulting row count.
func (p *Page) UseFixedRows(rowHeight float64) int {
	total := p.rows.Total()
	rowHeight = model.Clamp(rowHeight, math.Min(p.config.MinTableHeight, total), total)
	p.rows = FixedRows(rowHeight, total)
	return p.rows.Count()
}

// UseSingleRegion collapses the row structure to one full-height region
func (p *Page) UseSingleRegion() {
	p.rows = SingleRegion(p.rows.Total())
}

// CopyFrom propagates another page's manually tuned layout onto this one:
// position, column structure, table height, and index column. Columns are
// applied one at a time through the regular mutators so this page's own
// bounds clamping still applies; on a smaller page the result is the
// closest layout that fits.
func (p *Page) CopyFrom(template *Page) {
	if template == nil || template == p {
		return
	}

	// Park the table at the origin so the incoming structure resolves
	// against the full page, then place it where the template sits.
	p.SetPosition(0, 0)
	p.SetColumnCount(template.ColumnCount())
	for i := 0; i < len(p.columnWidths) && i < template.ColumnCount(); i++ {
		p.SetColumnWidth(i, template.columnWidths[i])
	}
	p.SetTableHeight(template.TableHeight())
	pos := template.Position()
	p.SetPosition(pos.X, pos.Y)
	p.SetIndexColumn(template.IndexColumn())
}

// CountWordsBounded returns the number of words inside the rectangle
// spanned by two corner points, given in any order.
func (p *Page) CountWordsBounded(p1, p2 model.Point) int {
	return model.CountWordsWithin(p.words, model.NewRectFromPoints(p1, p2))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
