package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/gridmark/grid"
)

// MaxColumns returns the largest column count across the given pages,
// or 0 when there are none. Aggregated output is always this wide so
// every page's rows line up under one header.
func MaxColumns(pages []*grid.Page) int {
	max := 0
	for _, p := range pages {
		if n := p.ColumnCount(); n > max {
			max = n
		}
	}
	return max
}

// Header returns the shared header row: Column0,Column1,...
func Header(columns int) string {
	var sb strings.Builder
	for i := 0; i < columns; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "Column%d", i)
	}
	return sb.String()
}

// CSV aggregates every page's CSV fragment into one document behind a
// shared header row. Pages contributing nothing (no words landed in the
// table) are skipped. With no pages at all the result is empty.
func CSV(pages []*grid.Page) (string, error) {
	if len(pages) == 0 {
		return "", nil
	}

	maxCols := MaxColumns(pages)
	var sb strings.Builder
	sb.WriteString(Header(maxCols))

	for _, p := range pages {
		body, err := p.CSV(maxCols)
		if err != nil {
			return "", fmt.Errorf("aggregating page: %w", err)
		}
		if body == "" {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(body)
	}

	return sb.String(), nil
}

// WriteCSV writes the aggregated CSV document to w, applying any
// encoding and row-terminator options.
func WriteCSV(w io.Writer, pages []*grid.Page, opts ...Option) error {
	doc, err := CSV(pages)
	if err != nil {
		return err
	}

	o := buildOptions(opts)
	if o.crlf {
		doc = crlfTerminators(doc)
	}

	ew, err := NewWriter(w, o.encoding)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(ew, doc); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return ew.Close()
}

// crlfTerminators rewrites row terminators as CRLF. Newlines embedded
// in quoted cells are field content and stay untouched; the scan tracks
// quoting state byte by byte, and doubled quotes inside a quoted field
// toggle it twice, leaving it unchanged.
func crlfTerminators(doc string) string {
	var sb strings.Builder
	sb.Grow(len(doc))

	inQuotes := false
	for i := 0; i < len(doc); i++ {
		c := doc[i]
		switch c {
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if !inQuotes {
				sb.WriteString("\r\n")
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
