package extract

import (
	"fmt"
	"html"
	"strings"

	"github.com/tsawler/gridmark/grid"
)

// HTML renders the aggregated table as a standalone HTML document for
// previewing extraction results in a browser. The layout mirrors the
// CSV aggregation: one header row of ColumnN headings at the page-wide
// maximum width, every page's rows beneath it, pages contributing
// nothing skipped. With no pages at all the result is empty.
func HTML(pages []*grid.Page) (string, error) {
	if len(pages) == 0 {
		return "", nil
	}

	maxCols := MaxColumns(pages)
	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n<title>Extracted Table</title>\n")
	sb.WriteString("</head>\n<body>\n<table>\n<thead>\n<tr>")
	for i := 0; i < maxCols; i++ {
		fmt.Fprintf(&sb, "<th>Column%d</th>", i)
	}
	sb.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, p := range pages {
		cells, err := p.Cells(maxCols)
		if err != nil {
			return "", fmt.Errorf("aggregating page: %w", err)
		}
		if len(cells) == 1 && grid.BlankRow(cells[0]) {
			continue
		}
		for _, row := range cells {
			sb.WriteString("<tr>")
			for _, cell := range row {
				sb.WriteString("<td>")
				sb.WriteString(html.EscapeString(cell))
				sb.WriteString("</td>")
			}
			sb.WriteString("</tr>\n")
		}
	}

	sb.WriteString("</tbody>\n</table>\n</body>\n</html>\n")
	return sb.String(), nil
}
