// Package grid holds the table-geometry model: one page's dimensions,
// word list, and the editable grid laid over it.
//
// This package is the geometric core of the module. It owns every
// constraint-resolution rule that keeps a table inside its page while the
// user drags borders, adds columns, or re-targets the index column, and
// it converts the words under the grid into delimited output.
//
// # Pages
//
// A [Page] is built once from a [PageInput] (dimensions plus recognized
// words) and mutated through its setters:
//
//	page := grid.NewPage(grid.PageInput{Width: 595, Height: 842, Words: words})
//	page.SetPosition(40, 60)
//	page.SetColumnCount(4)
//	page.SetColumnWidth(0, 120)
//
// Setters never fail. Out-of-range values are clamped to the nearest
// legal value and the applied value is returned, so a caller can reflect
// the outcome back to a display. After every mutator the table satisfies
//
//	0 <= x, x+tableWidth <= pageWidth, 0 <= y, y+tableHeight <= pageHeight
//
// # Column Resolution
//
// [Page.SetColumnCount] resolves growth through fallback tiers: append
// default-width columns when they fit the unused space right of the
// table, else split that space evenly, else shift the whole table left to
// make room, else retry with the largest count that fits. The final count
// is returned and may be smaller than requested.
//
// # Rows
//
// Row structure is a [RowLayout], one of three strategies: a single
// region spanning the table, fixed-height slices, or heights detected
// from index-column text by [Page.DetectRows]. Changing the table height
// always collapses back to a single region.
//
// # Output
//
// [Page.CSV] buckets each word into a cell by scanning the column and row
// boundaries for the first edge beyond the word's position, then emits
// RFC 4180-style escaped rows. Detection quality and bucketing both rely
// on the page's word list being sorted by (y, x), which [NewPage]
// guarantees at construction.
//
// # Configuration
//
// Geometry limits are controlled by [Config]:
//
//	config := grid.DefaultConfig()
//	config.MaxColumns = 12
//	page := grid.NewPageWithConfig(input, config)
package grid
