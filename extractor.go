package gridmark

import (
	"fmt"
	"io"
	"sort"

	"github.com/tsawler/gridmark/extract"
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/source"
)

// lowConfidence is the detection-regularity score below which a
// detected-rows page earns a warning
const lowConfidence = 0.5

// Extractor provides a fluent interface for grid-based table extraction.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining. Terminal
// operations run on a private copy, so an Extractor can be reused.
type Extractor struct {
	// Source
	filename string

	// Decoded pages; loaded lazily from filename unless supplied
	// directly via FromInputs
	inputs []grid.PageInput
	loaded bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning

	// Resolved 0-indexed page selection, set by buildPages
	indices []int
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
// Decoded inputs are shared; they are never mutated after loading.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		inputs:   e.inputs,
		loaded:   e.loaded,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ensureInputs decodes the source document if not already decoded.
func (e *Extractor) ensureInputs() error {
	if e.loaded {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	inputs, err := source.Load(e.filename)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	e.inputs = inputs
	e.loaded = true
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").Pages(1, 3, 5).CSV()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").PageRange(5, 10).CSV()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Columns sets the number of grid columns on every page. Pages too
// narrow to fit the requested count apply fewer and report a warning.
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").Columns(4).CSV()
func (e *Extractor) Columns(n int) *Extractor {
	newExt := e.clone()
	newExt.options.columns = n
	return newExt
}

// Table places the grid's bounding box on every page: top-left corner at
// (x, y), total width w spread evenly across the columns, height h. Each
// page clamps the box against its own bounds, so on a smaller page the
// applied box is the closest fit.
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").
//	    Table(40, 120, 500, 600).
//	    Columns(5).
//	    CSV()
func (e *Extractor) Table(x, y, w, h float64) *Extractor {
	newExt := e.clone()
	r := model.NewRect(x, y, w, h)
	newExt.options.table = &r
	return newExt
}

// IndexColumn re-targets the index column used by row detection
// (0-indexed, clamped to the column range).
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").Columns(4).IndexColumn(1).DetectRows().CSV()
func (e *Extractor) IndexColumn(col int) *Extractor {
	newExt := e.clone()
	newExt.options.indexColumn = col
	return newExt
}

// RowHeight slices every page's table into fixed-height rows.
// DetectRows takes precedence when both are configured.
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").Table(40, 120, 500, 600).RowHeight(24).CSV()
func (e *Extractor) RowHeight(h float64) *Extractor {
	newExt := e.clone()
	newExt.options.rowHeight = h
	return newExt
}

// DetectRows infers each page's row boundaries from the words inside its
// index column. Pages where detection finds nothing keep a single
// full-height row and report a warning.
//
// Example:
//
//	csv, warnings, err := gridmark.Open("report.pdf").
//	    Table(40, 120, 500, 600).
//	    Columns(5).
//	    DetectRows().
//	    CSV()
func (e *Extractor) DetectRows() *Extractor {
	newExt := e.clone()
	newExt.options.detectRows = true
	return newExt
}

// TemplatePage propagates one page's applied grid onto all the others
// (1-indexed). The template page resolves its own geometry first; each
// other page then clamps the copied layout against its own bounds.
// Row detection still runs per page afterwards when configured.
//
// Example:
//
//	csv, _, err := gridmark.Open("report.pdf").Table(40, 120, 500, 600).TemplatePage(1).CSV()
func (e *Extractor) TemplatePage(n int) *Extractor {
	newExt := e.clone()
	newExt.options.templatePage = n
	return newExt
}

// Encoding selects the byte encoding WriteCSV produces.
//
// Example:
//
//	warnings, err := gridmark.Open("report.pdf").
//	    Columns(4).
//	    Encoding(extract.Windows1252).
//	    WriteCSV(f)
func (e *Extractor) Encoding(enc extract.Encoding) *Extractor {
	newExt := e.clone()
	newExt.options.encoding = enc
	return newExt
}

// CRLF makes WriteCSV terminate rows with CRLF for strict RFC 4180
// consumers.
func (e *Extractor) CRLF() *Extractor {
	newExt := e.clone()
	newExt.options.crlf = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// PageCount returns the total number of pages in the document.
// Unlike the extraction terminals this does not build any grids.
//
// Example:
//
//	count, err := gridmark.Open("report.pdf").PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if e.loaded {
		return len(e.inputs), nil
	}
	if e.filename == "" {
		return 0, fmt.Errorf("no filename specified")
	}
	return source.PageCount(e.filename)
}

// GridPages builds and returns the configured grid pages, one per
// selected document page. This is the escape hatch for hosts that need
// the geometry itself rather than an export.
//
// Returns the pages, any warnings encountered during configuration, and
// an error if the document could not be loaded or the selection was
// invalid.
//
// Example:
//
//	pages, warnings, err := gridmark.Open("report.pdf").Columns(4).GridPages()
func (e *Extractor) GridPages() ([]*grid.Page, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	run := e.clone()
	pages, err := run.buildPages()
	if err != nil {
		return nil, nil, err
	}
	return pages, run.warnings, nil
}

// CSV collects every selected page's cells and returns one CSV document
// behind a shared header row sized to the widest page.
//
// Returns the document, any warnings encountered during processing, and
// an error if extraction failed. Warnings indicate non-fatal issues
// (e.g., a page contributing no rows) where extraction succeeded but the
// result may be incomplete.
//
// Example:
//
//	csv, warnings, err := gridmark.Open("report.pdf").Columns(4).CSV()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + gridmark.FormatWarnings(warnings))
//	}
func (e *Extractor) CSV() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	run := e.clone()
	pages, err := run.buildPages()
	if err != nil {
		return "", nil, err
	}

	run.checkEmptyPages(pages)

	doc, err := extract.CSV(pages)
	if err != nil {
		return "", run.warnings, err
	}
	return doc, run.warnings, nil
}

// WriteCSV writes the aggregated CSV document to w in the configured
// encoding, applying CRLF row terminators when configured.
//
// Example:
//
//	f, err := os.Create("report.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer f.Close()
//	warnings, err := gridmark.Open("report.pdf").Columns(4).WriteCSV(f)
func (e *Extractor) WriteCSV(w io.Writer) ([]Warning, error) {
	if e.err != nil {
		return nil, e.err
	}

	run := e.clone()
	pages, err := run.buildPages()
	if err != nil {
		return nil, err
	}

	run.checkEmptyPages(pages)

	opts := []extract.Option{extract.WithEncoding(run.options.encoding)}
	if run.options.crlf {
		opts = append(opts, extract.WithCRLF())
	}

	if err := extract.WriteCSV(w, pages, opts...); err != nil {
		return run.warnings, err
	}
	return run.warnings, nil
}

// HTML returns the aggregated table as a standalone HTML document, for
// previewing an extraction before committing to CSV.
//
// Example:
//
//	html, warnings, err := gridmark.Open("report.pdf").Columns(4).HTML()
func (e *Extractor) HTML() (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	run := e.clone()
	pages, err := run.buildPages()
	if err != nil {
		return "", nil, err
	}

	run.checkEmptyPages(pages)

	doc, err := extract.HTML(pages)
	if err != nil {
		return "", run.warnings, err
	}
	return doc, run.warnings, nil
}

// ============================================================================
// Internal pipeline
// ============================================================================

// buildPages decodes the document, resolves the page selection, and
// applies the configured grid to each selected page: bounding box and
// column count first, then the index column and row strategy, with
// template propagation before detection so detected boundaries reflect
// each page's own words.
func (e *Extractor) buildPages() ([]*grid.Page, error) {
	if err := e.ensureInputs(); err != nil {
		return nil, err
	}

	indices, err := e.resolvePages()
	if err != nil {
		return nil, err
	}
	e.indices = indices

	pages := make([]*grid.Page, 0, len(indices))
	for _, idx := range indices {
		p := grid.NewPage(e.inputs[idx])
		e.applyGeometry(p, idx+1)
		pages = append(pages, p)
	}

	if e.options.templatePage > 0 {
		if err := e.applyTemplate(pages, indices); err != nil {
			return nil, err
		}
	}

	if e.options.detectRows {
		for i, p := range pages {
			e.detectPageRows(p, indices[i]+1)
		}
	}

	return pages, nil
}

// resolvePages maps the configured 1-indexed page selection to sorted,
// deduplicated 0-indexed input positions. An empty selection means all
// pages.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := len(e.inputs)

	if len(e.options.pages) == 0 {
		indices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			indices = append(indices, zeroIndexed)
		}
	}

	sort.Ints(indices)
	return indices, nil
}

// applyGeometry applies the configured bounding box, column count, index
// column, and fixed row height to one page. When a bounding box is set
// the table first parks at the origin so the column structure resolves
// against the full page, then moves into place. pageNum is 1-indexed and
// only used in warnings.
func (e *Extractor) applyGeometry(p *grid.Page, pageNum int) {
	if e.options.table != nil {
		p.SetPosition(0, 0)
	}

	if e.options.columns > 0 {
		applied := p.SetColumnCount(e.options.columns)
		if applied != e.options.columns {
			e.warn(WarnColumnsClamped,
				"page %d: requested %d columns, applied %d", pageNum, e.options.columns, applied)
		}
	}

	if e.options.table != nil {
		r := *e.options.table
		share := r.Width / float64(p.ColumnCount())
		for i := 0; i < p.ColumnCount(); i++ {
			p.SetColumnWidth(i, share)
		}
		p.SetTableHeight(r.Height)
		p.SetPosition(r.X, r.Y)
	}

	if e.options.indexColumn >= 0 {
		p.SetIndexColumn(e.options.indexColumn)
	}

	if e.options.rowHeight > 0 {
		p.UseFixedRows(e.options.rowHeight)
	}
}

// applyTemplate copies the template page's applied grid onto every other
// selected page. The template must be part of the selection.
func (e *Extractor) applyTemplate(pages []*grid.Page, indices []int) error {
	var template *grid.Page
	for i, idx := range indices {
		if idx+1 == e.options.templatePage {
			template = pages[i]
			break
		}
	}
	if template == nil {
		return fmt.Errorf("template page %d is not among the selected pages", e.options.templatePage)
	}

	for _, p := range pages {
		if p != template {
			p.CopyFrom(template)
		}
	}
	return nil
}

// detectPageRows runs row detection on one page and converts its report
// into warnings. pageNum is 1-indexed.
func (e *Extractor) detectPageRows(p *grid.Page, pageNum int) {
	report := p.DetectRows()

	if report.LabelsFound == 0 {
		e.warn(WarnNoIndexWords,
			"page %d: no words in the index column, keeping a single row", pageNum)
		return
	}
	if report.Rows > 1 && report.Confidence < lowConfidence {
		e.warn(WarnIrregularRows,
			"page %d: detected %d rows with confidence %.2f", pageNum, report.Rows, report.Confidence)
	}
}

// checkEmptyPages records a warning for every built page whose cells are
// entirely blank, since the aggregator silently skips those.
func (e *Extractor) checkEmptyPages(pages []*grid.Page) {
	maxCols := extract.MaxColumns(pages)
	for i, p := range pages {
		cells, err := p.Cells(maxCols)
		if err != nil {
			continue
		}
		if len(cells) == 1 && grid.BlankRow(cells[0]) {
			e.warn(WarnEmptyPage, "page %d contributed no rows", e.indices[i]+1)
		}
	}
}

// warn appends a formatted warning
func (e *Extractor) warn(t WarningType, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{
		Type:    t,
		Message: fmt.Sprintf(format, args...),
	})
}
