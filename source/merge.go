package source

import (
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
)

// MergeWords returns a copy of input carrying extra words alongside the
// decoded ones, for augmenting a page with OCR output before the page
// is constructed. Word order is fixed at page construction, so merging
// must happen at the input stage; the page sorts the combined list
// once.
func MergeWords(input grid.PageInput, extra []model.Word) grid.PageInput {
	if len(extra) == 0 {
		return input
	}
	merged := make([]model.Word, 0, len(input.Words)+len(extra))
	merged = append(merged, input.Words...)
	merged = append(merged, extra...)
	return grid.PageInput{
		Width:  input.Width,
		Height: input.Height,
		Words:  merged,
	}
}
