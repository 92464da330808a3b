package source

import (
	"testing"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
)

func TestFragmentWord(t *testing.T) {
	tests := []struct {
		name       string
		text       pdf.Text
		pageHeight float64
		wantX      float64
		wantY      float64
	}{
		{
			name:       "centered with font size",
			text:       pdf.Text{S: "Total", X: 10, Y: 700, W: 30, FontSize: 10},
			pageHeight: 792,
			wantX:      25,
			wantY:      87, // 792 - (700 + 5)
		},
		{
			name:       "missing font size uses default height",
			text:       pdf.Text{S: "x", X: 10, Y: 700, W: 30},
			pageHeight: 792,
			wantX:      25,
			wantY:      86, // 792 - (700 + 6)
		},
		{
			name:       "fragment at page bottom",
			text:       pdf.Text{S: "footer", X: 0, Y: 0, W: 20, FontSize: 8},
			pageHeight: 792,
			wantX:      10,
			wantY:      788,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fragmentWord(tt.text, tt.pageHeight)
			if got.Position.X != tt.wantX || got.Position.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)",
					got.Position.X, got.Position.Y, tt.wantX, tt.wantY)
			}
			if got.Text != tt.text.S {
				t.Errorf("text = %q, want %q", got.Text, tt.text.S)
			}
		})
	}
}

func TestMergeWords(t *testing.T) {
	input := grid.PageInput{
		Width:  200,
		Height: 100,
		Words:  []model.Word{model.NewWord(20, 20, "decoded")},
	}
	extra := []model.Word{model.NewWord(10, 10, "ocr")}

	merged := MergeWords(input, extra)

	if merged.Width != 200 || merged.Height != 100 {
		t.Errorf("dimensions = %vx%v, want 200x100", merged.Width, merged.Height)
	}
	if len(merged.Words) != 2 {
		t.Fatalf("word count = %d, want 2", len(merged.Words))
	}
	// The input is untouched.
	if len(input.Words) != 1 {
		t.Errorf("input mutated: %d words", len(input.Words))
	}

	// Construction sorts the combined list as usual.
	page := grid.NewPage(merged)
	words := page.Words()
	if words[0].Text != "ocr" || words[1].Text != "decoded" {
		t.Errorf("sorted words = %q, %q", words[0].Text, words[1].Text)
	}
}

func TestMergeWordsNoExtras(t *testing.T) {
	input := grid.PageInput{
		Width:  200,
		Height: 100,
		Words:  []model.Word{model.NewWord(20, 20, "decoded")},
	}
	merged := MergeWords(input, nil)
	if len(merged.Words) != 1 || merged.Words[0].Text != "decoded" {
		t.Errorf("merged = %+v, want input unchanged", merged)
	}
}
