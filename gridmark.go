// Package gridmark provides a fluent API for extracting tabular data from
// documents by laying an adjustable grid over each page and bucketing the
// page's positioned words into its cells.
//
// Basic usage:
//
//	csv, warnings, err := gridmark.Open("report.pdf").Columns(4).CSV()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + gridmark.FormatWarnings(warnings))
//	}
//
// With a placed table and detected rows:
//
//	csv, _, err := gridmark.Open("report.pdf").
//	    Table(40, 120, 500, 600).
//	    Columns(5).
//	    DetectRows().
//	    CSV()
//
// For interactive hosts that already hold decoded pages, FromInputs skips
// the decoding step, and the lower-level grid and overlay packages expose
// the geometry and pointer machinery directly.
package gridmark

import (
	"github.com/tsawler/gridmark/grid"
)

// Open prepares an Extractor for the document at filename. The file is
// not touched until a terminal operation runs; an unreadable file
// surfaces as that operation's error.
//
// Example:
//
//	csv, warnings, err := gridmark.Open("report.pdf").Columns(4).CSV()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromInputs creates an Extractor over already-decoded pages. This is
// the entry point for hosts that render and recognize pages themselves,
// including merged OCR words.
//
// Example:
//
//	inputs, err := source.Load("report.pdf")
//	if err != nil {
//	    // handle error
//	}
//	csv, warnings, err := gridmark.FromInputs(inputs).Columns(4).CSV()
func FromInputs(inputs []grid.PageInput) *Extractor {
	return &Extractor{
		inputs:  inputs,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := gridmark.Must(gridmark.Open("report.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustCSV is a helper that wraps a call to CSV() or another terminal
// operation and panics if the error is non-nil. It discards warnings and
// returns just the value. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	csv := gridmark.MustCSV(gridmark.Open("report.pdf").Columns(4).CSV())
func MustCSV[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
