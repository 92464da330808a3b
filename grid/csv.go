package grid

import (
	"fmt"
	"strings"
)

// Cells buckets the page's words into a rowCount x columnCount grid of
// raw cell strings.
//
// columnCount must be at least this page's column count; aggregators
// pass the maximum count across all pages so every page lines up under
// one header. A smaller value returns ErrInsufficientColumns.
//
// Each word is bucketed by its center position: the column is the first
// vertical boundary, scanning left to right, whose right edge lies beyond
// the word's X, and the row is found the same way against the horizontal
// boundaries. Words above or left of the table origin, or beyond its
// right or bottom edge, are dropped. Words sharing a cell are concatenated
// in word order with no separator.
func (p *Page) Cells(columnCount int) ([][]string, error) {
	if columnCount < len(p.columnWidths) {
		return nil, fmt.Errorf("csv: %d columns requested, page has %d: %w",
			columnCount, len(p.columnWidths), ErrInsufficientColumns)
	}

	cells := make([][]string, p.rows.Count())
	for i := range cells {
		cells[i] = make([]string, columnCount)
	}

	for _, w := range p.words {
		row, col := p.findCell(w.Position.X, w.Position.Y)
		if row < 0 || col < 0 {
			continue
		}
		cells[row][col] += w.Text
	}

	return cells, nil
}

// CSV converts the words inside the table into comma-separated values:
// the [Page.Cells] grid with each cell escaped, columns joined with
// commas and rows with newlines.
//
// A page whose grid ends up with a single all-blank row contributes the
// empty string.
func (p *Page) CSV(columnCount int) (string, error) {
	cells, err := p.Cells(columnCount)
	if err != nil {
		return "", err
	}

	if len(cells) == 1 && BlankRow(cells[0]) {
		return "", nil
	}

	lines := make([]string, 0, len(cells))
	for _, row := range cells {
		escaped := make([]string, len(row))
		for i, text := range row {
			escaped[i] = EscapeCell(text)
		}
		lines = append(lines, strings.Join(escaped, ","))
	}

	return strings.Join(lines, "\n"), nil
}

// findCell returns the row and column indices of the cell containing the
// given point, or -1 for both if the point is outside the table.
func (p *Page) findCell(x, y float64) (row, col int) {
	row = -1
	col = -1

	// Above or left of the table origin: out of table.
	if x < p.position.X || y < p.position.Y {
		return row, col
	}

	// Find column: first boundary whose right edge lies beyond x.
	edge := p.position.X
	for i, w := range p.columnWidths {
		edge += w
		if edge > x {
			col = i
			break
		}
	}

	// Find row.
	edge = p.position.Y
	for i, h := range p.rows.heights {
		edge += h
		if edge > y {
			row = i
			break
		}
	}

	return row, col
}

// EscapeCell quotes a cell when it contains a comma, quote, or newline,
// doubling embedded quotes (RFC 4180 style).
func EscapeCell(text string) string {
	if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
		text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
	}
	return text
}

// BlankRow reports whether every cell in the row is empty
func BlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
