package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
)

// tablePage builds a 200x100 page whose table has cols 50-unit columns,
// height 40, positioned at (5,5).
func tablePage(t *testing.T, cols int, words ...model.Word) *grid.Page {
	t.Helper()
	p := grid.NewPage(grid.PageInput{Width: 200, Height: 100, Words: words})
	if got := p.SetColumnCount(cols); got != cols {
		t.Fatalf("SetColumnCount(%d) = %d", cols, got)
	}
	p.SetTableHeight(40)
	p.SetPosition(5, 5)
	return p
}

func TestHeader(t *testing.T) {
	tests := []struct {
		columns int
		want    string
	}{
		{0, ""},
		{1, "Column0"},
		{3, "Column0,Column1,Column2"},
	}
	for _, tt := range tests {
		if got := Header(tt.columns); got != tt.want {
			t.Errorf("Header(%d) = %q, want %q", tt.columns, got, tt.want)
		}
	}
}

func TestMaxColumns(t *testing.T) {
	pages := []*grid.Page{
		tablePage(t, 2),
		tablePage(t, 3),
		tablePage(t, 1),
	}
	if got := MaxColumns(pages); got != 3 {
		t.Errorf("MaxColumns = %d, want 3", got)
	}
	if got := MaxColumns(nil); got != 0 {
		t.Errorf("MaxColumns(nil) = %d, want 0", got)
	}
}

func TestCSVAggregation(t *testing.T) {
	pages := []*grid.Page{
		tablePage(t, 2, model.NewWord(20, 20, "A"), model.NewWord(70, 20, "B")),
		tablePage(t, 3, model.NewWord(20, 20, "C"), model.NewWord(120, 20, "D")),
		tablePage(t, 2), // catches nothing, skipped
	}

	got, err := CSV(pages)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	want := "Column0,Column1,Column2\nA,B,\nC,,D"
	if got != want {
		t.Errorf("CSV = %q, want %q", got, want)
	}
}

func TestCSVNoPages(t *testing.T) {
	got, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	if got != "" {
		t.Errorf("CSV(nil) = %q, want empty", got)
	}
}

func TestCSVAllPagesEmpty(t *testing.T) {
	pages := []*grid.Page{tablePage(t, 2), tablePage(t, 2)}

	got, err := CSV(pages)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	if got != "Column0,Column1" {
		t.Errorf("CSV = %q, want header only", got)
	}
}

func TestWriteCSV(t *testing.T) {
	pages := []*grid.Page{
		tablePage(t, 2, model.NewWord(20, 20, "A"), model.NewWord(70, 20, "B")),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, pages); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if got := buf.String(); got != "Column0,Column1\nA,B" {
		t.Errorf("WriteCSV output = %q", got)
	}
}

func TestWriteCSVWithCRLF(t *testing.T) {
	pages := []*grid.Page{
		tablePage(t, 2, model.NewWord(20, 20, "A"), model.NewWord(70, 20, "B")),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, pages, WithCRLF()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if got := buf.String(); got != "Column0,Column1\r\nA,B" {
		t.Errorf("WriteCSV output = %q", got)
	}
}

func TestCRLFTerminators(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"plain rows", "a,b\nc,d", "a,b\r\nc,d"},
		{"newline inside quoted cell", "\"x\ny\",z\nq,r", "\"x\ny\",z\r\nq,r"},
		{"doubled quotes stay in field", "\"he said \"\"hi\"\"\nthere\",b\nc,d", "\"he said \"\"hi\"\"\nthere\",b\r\nc,d"},
		{"no terminators", "a,b", "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := crlfTerminators(tt.doc); got != tt.want {
				t.Errorf("crlfTerminators(%q) = %q, want %q", tt.doc, got, tt.want)
			}
		})
	}
}

func TestWriteCSVEncodesOutput(t *testing.T) {
	pages := []*grid.Page{
		tablePage(t, 1, model.NewWord(20, 20, "café")),
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, pages, WithEncoding(Windows1252)); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out := buf.Bytes()
	if !strings.HasSuffix(string(out), "caf\xe9") {
		t.Errorf("output bytes = % x, want single-byte e-acute suffix", out)
	}
}
