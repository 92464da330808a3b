package grid

import (
	"errors"
	"testing"

	"github.com/tsawler/gridmark/model"
)

// csvPage builds a 200x100 page with a 2x50-wide, 40-tall table at (5,5)
func csvPage(t *testing.T, words ...model.Word) *Page {
	t.Helper()

	p := NewPage(PageInput{Width: 200, Height: 100, Words: words})
	p.SetColumnCount(2)
	p.SetTableHeight(40)
	p.SetPosition(5, 5)
	return p
}

func TestCSVEndToEnd(t *testing.T) {
	p := csvPage(t,
		model.NewWord(20, 20, "A"),
		model.NewWord(70, 20, "B"),
	)

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != "A,B" {
		t.Errorf("CSV(2) = %q, want %q", got, "A,B")
	}
}

func TestCSVWordAboveLeftOfOriginDropped(t *testing.T) {
	p := csvPage(t, model.NewWord(1, 1, "stray"))

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != "" {
		t.Errorf("CSV(2) = %q, want empty output", got)
	}
}

func TestCSVWordBeyondTableDropped(t *testing.T) {
	p := csvPage(t,
		model.NewWord(150, 20, "past right edge"),
		model.NewWord(70, 80, "past bottom edge"),
	)

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != "" {
		t.Errorf("CSV(2) = %q, want empty output", got)
	}
}

func TestCSVWordAtOriginKept(t *testing.T) {
	p := NewPage(PageInput{
		Width:  200,
		Height: 100,
		Words:  []model.Word{model.NewWord(5, 5, "A")},
	})
	p.SetTableHeight(40)
	p.SetPosition(5, 5)

	got, err := p.CSV(1)
	if err != nil {
		t.Fatalf("CSV(1) failed: %v", err)
	}
	if got != "A" {
		t.Errorf("CSV(1) = %q, want %q", got, "A")
	}
}

func TestCSVWordOnBoundaryGoesToNextColumn(t *testing.T) {
	// Column 0 spans [5, 55); a word centered exactly on the border at 55
	// belongs to column 1.
	p := csvPage(t, model.NewWord(55, 20, "B"))

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != ",B" {
		t.Errorf("CSV(2) = %q, want %q", got, ",B")
	}
}

func TestCSVSharedCellConcatenates(t *testing.T) {
	p := csvPage(t,
		model.NewWord(20, 20, "net"),
		model.NewWord(30, 20, "work"),
	)

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != "network," {
		t.Errorf("CSV(2) = %q, want %q", got, "network,")
	}
}

func TestCSVEscaping(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "hello", "hello"},
		{"comma and quotes", `He said "hi", ok`, `"He said ""hi"", ok"`},
		{"embedded newline", "a\nb", "\"a\nb\""},
		{"only quotes", `"x"`, `"""x"""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(PageInput{
				Width:  200,
				Height: 100,
				Words:  []model.Word{model.NewWord(20, 20, tt.text)},
			})
			p.SetTableHeight(40)

			got, err := p.CSV(1)
			if err != nil {
				t.Fatalf("CSV(1) failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CSV(1) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCSVInsufficientColumns(t *testing.T) {
	p := csvPage(t)

	_, err := p.CSV(1)
	if err == nil {
		t.Fatal("CSV(1) on a 2-column page should fail")
	}
	if !errors.Is(err, ErrInsufficientColumns) {
		t.Errorf("error = %v, want ErrInsufficientColumns", err)
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration kind", err)
	}
}

func TestCSVExtraColumnsPadRight(t *testing.T) {
	p := csvPage(t,
		model.NewWord(20, 20, "A"),
		model.NewWord(70, 20, "B"),
	)

	got, err := p.CSV(4)
	if err != nil {
		t.Fatalf("CSV(4) failed: %v", err)
	}
	if got != "A,B,," {
		t.Errorf("CSV(4) = %q, want %q", got, "A,B,,")
	}
}

func TestCSVMultipleRows(t *testing.T) {
	p := NewPage(PageInput{
		Width:  200,
		Height: 100,
		Words: []model.Word{
			model.NewWord(20, 20, "A"),
			model.NewWord(20, 70, "B"),
		},
	})
	p.UseFixedRows(50)

	got, err := p.CSV(1)
	if err != nil {
		t.Fatalf("CSV(1) failed: %v", err)
	}
	if got != "A\nB" {
		t.Errorf("CSV(1) = %q, want %q", got, "A\nB")
	}
}

func TestCSVSingleBlankRowIsEmpty(t *testing.T) {
	p := csvPage(t)

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != "" {
		t.Errorf("CSV(2) = %q, want empty output", got)
	}
}

func TestCSVMultiRowBlankStaysBlankRows(t *testing.T) {
	// Only the single-row all-blank grid collapses to nothing; blank
	// multi-row grids keep their shape.
	p := csvPage(t)
	p.UseFixedRows(20)

	got, err := p.CSV(2)
	if err != nil {
		t.Fatalf("CSV(2) failed: %v", err)
	}
	if got != ",\n," {
		t.Errorf("CSV(2) = %q, want %q", got, ",\n,")
	}
}

func TestCellsRawGrid(t *testing.T) {
	p := csvPage(t,
		model.NewWord(20, 20, `He said "hi"`),
		model.NewWord(70, 20, "B"),
	)

	cells, err := p.Cells(3)
	if err != nil {
		t.Fatalf("Cells(3) failed: %v", err)
	}
	if len(cells) != 1 || len(cells[0]) != 3 {
		t.Fatalf("grid shape = %dx%d, want 1x3", len(cells), len(cells[0]))
	}
	// Cells are raw, not escaped.
	if cells[0][0] != `He said "hi"` || cells[0][1] != "B" || cells[0][2] != "" {
		t.Errorf("cells = %q", cells[0])
	}

	if _, err := p.Cells(1); !errors.Is(err, ErrInsufficientColumns) {
		t.Errorf("Cells(1) error = %v, want ErrInsufficientColumns", err)
	}
}

func TestEscapeCell(t *testing.T) {
	if got := EscapeCell(`He said "hi", ok`); got != `"He said ""hi"", ok"` {
		t.Errorf("EscapeCell = %q", got)
	}
	if got := EscapeCell("plain"); got != "plain" {
		t.Errorf("EscapeCell = %q, want unchanged", got)
	}
}

func TestBlankRow(t *testing.T) {
	if !BlankRow([]string{"", "", ""}) {
		t.Error("all-empty row reported non-blank")
	}
	if BlankRow([]string{"", "x"}) {
		t.Error("row with content reported blank")
	}
	if !BlankRow(nil) {
		t.Error("empty row reported non-blank")
	}
}
