package gridmark

import (
	"github.com/tsawler/gridmark/extract"
	"github.com/tsawler/gridmark/model"
)

// ExtractOptions holds the grid configuration applied to every page
// before cells are collected.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Table geometry; a nil table leaves the construction default
	table   *model.Rect
	columns int // 0 means leave unchanged

	// Index column; -1 means leave unchanged
	indexColumn int

	// Row strategy
	rowHeight  float64 // fixed row height, 0 means none
	detectRows bool

	// Layout propagation source (1-indexed); 0 means none
	templatePage int

	// Output
	encoding extract.Encoding
	crlf     bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:        nil, // nil means all pages
		indexColumn:  -1,
		templatePage: 0,
		encoding:     extract.UTF8,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		columns:      o.columns,
		indexColumn:  o.indexColumn,
		rowHeight:    o.rowHeight,
		detectRows:   o.detectRows,
		templatePage: o.templatePage,
		encoding:     o.encoding,
		crlf:         o.crlf,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	if o.table != nil {
		r := *o.table
		newOpts.table = &r
	}

	return newOpts
}
