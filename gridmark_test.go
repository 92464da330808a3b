package gridmark

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/tsawler/gridmark/extract"
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
)

// fixtureInputs returns two decoded pages laid out for a two-column
// table placed at (10, 10) with total width 100 and height 80: page 1
// fills both cells, page 2 fills only the first and has one stray word
// right of the table.
func fixtureInputs() []grid.PageInput {
	return []grid.PageInput{
		{
			Width: 200, Height: 100,
			Words: []model.Word{
				model.NewWord(30, 30, "alpha"),
				model.NewWord(80, 30, "beta"),
			},
		},
		{
			Width: 300, Height: 150,
			Words: []model.Word{
				model.NewWord(40, 50, "gamma"),
				model.NewWord(140, 50, "delta"),
			},
		},
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open("nonexistent.pdf").Columns(2).CSV()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestOpenNoFilename(t *testing.T) {
	_, _, err := Open("").CSV()
	if err == nil {
		t.Error("expected error for empty filename")
	}
}

func TestCSVFromInputs(t *testing.T) {
	csv, warnings, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		Columns(2).
		CSV()
	if err != nil {
		t.Fatalf("failed to extract csv: %v", err)
	}

	want := "Column0,Column1\nalpha,beta\ngamma,"
	if csv != want {
		t.Errorf("csv = %q, want %q", csv, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestCSVEscapesCells(t *testing.T) {
	inputs := []grid.PageInput{
		{
			Width: 200, Height: 100,
			Words: []model.Word{model.NewWord(10, 10, "a,b")},
		},
	}

	csv, _, err := FromInputs(inputs).CSV()
	if err != nil {
		t.Fatalf("failed to extract csv: %v", err)
	}

	want := "Column0\n\"a,b\""
	if csv != want {
		t.Errorf("csv = %q, want %q", csv, want)
	}
}

func TestPageSelection(t *testing.T) {
	csv, _, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		Columns(2).
		Pages(2).
		CSV()
	if err != nil {
		t.Fatalf("failed to extract page 2: %v", err)
	}

	want := "Column0,Column1\ngamma,"
	if csv != want {
		t.Errorf("csv = %q, want %q", csv, want)
	}
}

func TestPageRange(t *testing.T) {
	all, _, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		Columns(2).
		CSV()
	if err != nil {
		t.Fatalf("failed to extract all pages: %v", err)
	}

	ranged, _, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		Columns(2).
		PageRange(1, 2).
		CSV()
	if err != nil {
		t.Fatalf("failed to extract page range: %v", err)
	}

	if ranged != all {
		t.Errorf("range 1-2 = %q, want same as all pages %q", ranged, all)
	}
}

func TestInvalidPage(t *testing.T) {
	// Page 5 of a 2-page document
	_, _, err := FromInputs(fixtureInputs()).Pages(5).CSV()
	if err == nil {
		t.Error("expected error for invalid page number")
	}

	// Page 0 (1-indexed)
	_, _, err = FromInputs(fixtureInputs()).Pages(0).CSV()
	if err == nil {
		t.Error("expected error for page 0 (1-indexed)")
	}
}

func TestPageCount(t *testing.T) {
	count, err := FromInputs(fixtureInputs()).PageCount()
	if err != nil {
		t.Fatalf("failed to get page count: %v", err)
	}
	if count != 2 {
		t.Errorf("page count = %d, want 2", count)
	}
}

func TestDetectRowsThroughFacade(t *testing.T) {
	inputs := []grid.PageInput{
		{
			Width: 200, Height: 200,
			Words: []model.Word{
				model.NewWord(30, 30, "1"),
				model.NewWord(80, 30, "x1"),
				model.NewWord(30, 70, "2"),
				model.NewWord(80, 70, "x2"),
				model.NewWord(30, 110, "3"),
				model.NewWord(80, 150, "x3"),
			},
		},
	}

	csv, warnings, err := FromInputs(inputs).
		Table(20, 20, 100, 160).
		Columns(2).
		DetectRows().
		CSV()
	if err != nil {
		t.Fatalf("failed to extract csv: %v", err)
	}

	want := "Column0,Column1\n1,x1\n2,x2\n3,x3"
	if csv != want {
		t.Errorf("csv = %q, want %q", csv, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestDetectRowsWarnsWhenIrregular(t *testing.T) {
	// Index words at wildly uneven spacing: detected heights 20, 100, 40.
	inputs := []grid.PageInput{
		{
			Width: 200, Height: 200,
			Words: []model.Word{
				model.NewWord(30, 30, "1"),
				model.NewWord(30, 50, "2"),
				model.NewWord(30, 150, "3"),
			},
		},
	}

	_, warnings, err := FromInputs(inputs).
		Table(20, 20, 100, 160).
		Columns(2).
		DetectRows().
		CSV()
	if err != nil {
		t.Fatalf("failed to extract csv: %v", err)
	}

	if !hasWarning(warnings, WarnIrregularRows) {
		t.Errorf("expected %s warning, got %v", WarnIrregularRows, warnings)
	}
}

func TestDetectRowsWarnsWhenIndexEmpty(t *testing.T) {
	inputs := []grid.PageInput{{Width: 200, Height: 100}}

	csv, warnings, err := FromInputs(inputs).DetectRows().CSV()
	if err != nil {
		t.Fatalf("failed to extract csv: %v", err)
	}

	if csv != "Column0" {
		t.Errorf("csv = %q, want header only", csv)
	}
	if !hasWarning(warnings, WarnNoIndexWords) {
		t.Errorf("expected %s warning, got %v", WarnNoIndexWords, warnings)
	}
	if !hasWarning(warnings, WarnEmptyPage) {
		t.Errorf("expected %s warning, got %v", WarnEmptyPage, warnings)
	}
}

func TestColumnsClampedWarning(t *testing.T) {
	// A 60-unit page fits at most 2 columns.
	inputs := []grid.PageInput{{Width: 60, Height: 100}}

	_, warnings, err := FromInputs(inputs).Columns(8).CSV()
	if err != nil {
		t.Fatalf("failed to extract csv: %v", err)
	}

	if !hasWarning(warnings, WarnColumnsClamped) {
		t.Fatalf("expected %s warning, got %v", WarnColumnsClamped, warnings)
	}
	for _, w := range warnings {
		if w.Type == WarnColumnsClamped && !strings.Contains(w.Message, "requested 8") {
			t.Errorf("warning message = %q, want requested count named", w.Message)
		}
	}
}

func TestRowHeight(t *testing.T) {
	pages, _, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		RowHeight(40).
		GridPages()
	if err != nil {
		t.Fatalf("failed to build pages: %v", err)
	}

	for i, p := range pages {
		if got := p.RowCount(); got != 2 {
			t.Errorf("page %d row count = %d, want 2", i+1, got)
		}
	}
}

func TestTemplatePage(t *testing.T) {
	// Two same-sized pages: the template's applied grid lands unchanged.
	inputs := []grid.PageInput{
		{Width: 200, Height: 100},
		{Width: 200, Height: 100},
	}

	pages, _, err := FromInputs(inputs).
		Table(10, 10, 100, 80).
		Columns(2).
		TemplatePage(1).
		GridPages()
	if err != nil {
		t.Fatalf("failed to build pages: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("page count = %d, want 2", len(pages))
	}
	if pages[1].TableRect() != pages[0].TableRect() {
		t.Errorf("page 2 table = %v, want template's %v", pages[1].TableRect(), pages[0].TableRect())
	}
	if pages[1].ColumnCount() != pages[0].ColumnCount() {
		t.Errorf("page 2 columns = %d, want template's %d", pages[1].ColumnCount(), pages[0].ColumnCount())
	}
}

func TestTemplatePageOutsideSelection(t *testing.T) {
	_, _, err := FromInputs(fixtureInputs()).Pages(2).TemplatePage(1).GridPages()
	if err == nil {
		t.Error("expected error for template page outside the selection")
	}
}

func TestGridPages(t *testing.T) {
	pages, _, err := FromInputs(fixtureInputs()).Columns(2).GridPages()
	if err != nil {
		t.Fatalf("failed to build pages: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("page count = %d, want 2", len(pages))
	}
	for i, p := range pages {
		if p.ColumnCount() != 2 {
			t.Errorf("page %d column count = %d, want 2", i+1, p.ColumnCount())
		}
	}
}

func TestWriteCSVWithCRLF(t *testing.T) {
	var buf bytes.Buffer

	warnings, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		Columns(2).
		CRLF().
		WriteCSV(&buf)
	if err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := "Column0,Column1\r\nalpha,beta\r\ngamma,"
	if got := buf.String(); got != want {
		t.Errorf("written csv = %q, want %q", got, want)
	}
}

func TestWriteCSVEncoding(t *testing.T) {
	inputs := []grid.PageInput{
		{
			Width: 200, Height: 100,
			Words: []model.Word{model.NewWord(10, 10, "café")},
		},
	}

	var buf bytes.Buffer
	_, err := FromInputs(inputs).Encoding(extract.Windows1252).WriteCSV(&buf)
	if err != nil {
		t.Fatalf("failed to write csv: %v", err)
	}

	want := []byte("Column0\ncaf\xe9")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("written bytes = % x, want % x", buf.Bytes(), want)
	}
}

func TestHTMLPreview(t *testing.T) {
	html, _, err := FromInputs(fixtureInputs()).
		Table(10, 10, 100, 80).
		Columns(2).
		HTML()
	if err != nil {
		t.Fatalf("failed to build html: %v", err)
	}

	for _, want := range []string{"<table>", "<th>Column0</th>", "<td>alpha</td>", "<td>gamma</td>"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestChainImmutability(t *testing.T) {
	base := FromInputs(fixtureInputs())

	withPage1 := base.Pages(1)
	withPage2 := base.Pages(2)

	if len(base.options.pages) != 0 {
		t.Error("base extractor should have no pages set")
	}
	if len(withPage1.options.pages) != 1 || withPage1.options.pages[0] != 1 {
		t.Error("withPage1 should have page 1")
	}
	if len(withPage2.options.pages) != 1 || withPage2.options.pages[0] != 2 {
		t.Error("withPage2 should have page 2")
	}

	withCols := base.Columns(3)
	if base.options.columns != 0 {
		t.Error("base extractor should have no column count set")
	}
	if withCols.options.columns != 3 {
		t.Errorf("withCols column count = %d, want 3", withCols.options.columns)
	}
}

func TestExtractorReuse(t *testing.T) {
	// Terminal operations run on a private copy, so repeating one must
	// not stack duplicate warnings.
	ext := FromInputs([]grid.PageInput{{Width: 200, Height: 100}}).DetectRows()

	_, first, err := ext.CSV()
	if err != nil {
		t.Fatalf("first extraction failed: %v", err)
	}
	_, second, err := ext.CSV()
	if err != nil {
		t.Fatalf("second extraction failed: %v", err)
	}

	if len(first) != len(second) {
		t.Errorf("warning count changed across runs: %d then %d", len(first), len(second))
	}
}

func TestMust(t *testing.T) {
	result := Must("hello", nil)
	if result != "hello" {
		t.Errorf("expected 'hello', got %q", result)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must("", os.ErrNotExist)
}

func TestMustCSV(t *testing.T) {
	result := MustCSV("a,b", nil, nil)
	if result != "a,b" {
		t.Errorf("expected 'a,b', got %q", result)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustCSV to panic on error")
		}
	}()
	MustCSV("", nil, os.ErrNotExist)
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Type: WarnEmptyPage, Message: "page 2 contributed no rows"},
		{Type: WarnColumnsClamped, Message: "page 1: requested 8 columns, applied 2"},
	}

	got := FormatWarnings(warnings)
	want := "empty-page: page 2 contributed no rows\ncolumns-clamped: page 1: requested 8 columns, applied 2"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}

	if FormatWarnings(nil) != "" {
		t.Error("expected empty string for no warnings")
	}
}

func hasWarning(warnings []Warning, t WarningType) bool {
	for _, w := range warnings {
		if w.Type == t {
			return true
		}
	}
	return false
}
