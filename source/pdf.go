package source

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
)

// defaultFragmentHeight approximates a fragment's height when the
// decoder reports no font size
const defaultFragmentHeight = 12.0

// Load decodes every page of the PDF at path into page inputs: page
// dimensions plus the positioned text fragments converted to words with
// top-left-origin center coordinates. The word granularity is whatever
// the decoder emits per text-show run; downstream cell bucketing
// reassembles runs sharing a cell in reading order.
func Load(path string) ([]grid.PageInput, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dims, err := pageDims(path)
	if err != nil {
		return nil, err
	}
	if len(dims) != reader.NumPage() {
		return nil, fmt.Errorf("%s: decoders disagree on page count (%d vs %d)",
			path, len(dims), reader.NumPage())
	}

	inputs := make([]grid.PageInput, 0, reader.NumPage())
	for n := 1; n <= reader.NumPage(); n++ {
		input := grid.PageInput{Width: dims[n-1].Width, Height: dims[n-1].Height}

		page := reader.Page(n)
		if page.V.IsNull() {
			inputs = append(inputs, input)
			continue
		}

		words, err := pageWords(page, input.Height)
		if err != nil {
			return nil, fmt.Errorf("page %d of %s: %w", n, path, err)
		}
		input.Words = words
		inputs = append(inputs, input)
	}

	return inputs, nil
}

// PageCount returns the number of pages in the PDF at path
func PageCount(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return reader.NumPage(), nil
}

// pageDims returns per-page dimensions in points, honoring rotation.
// The text decoder does not expose page size, so it comes from a second
// pass with pdfcpu.
func pageDims(path string) ([]pdfcpuDim, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	conf := pdfcpu.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpu.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("counting pages of %s: %w", path, err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("sizing pages of %s: %w", path, err)
	}

	out := make([]pdfcpuDim, len(dims))
	for i, d := range dims {
		out[i] = pdfcpuDim{Width: d.Width, Height: d.Height}
	}
	return out, nil
}

// pdfcpuDim is a plain copy of the page dimensions so callers above
// this file never touch pdfcpu types.
type pdfcpuDim struct {
	Width  float64
	Height float64
}

// pageWords converts a page's text fragments to words. Malformed
// content streams can panic inside the decoder; the recover turns that
// into an error scoped to the page.
func pageWords(page pdf.Page, pageHeight float64) (words []model.Word, err error) {
	defer func() {
		if r := recover(); r != nil {
			words = nil
			err = fmt.Errorf("decoding content: %v", r)
		}
	}()

	content := page.Content()
	words = make([]model.Word, 0, len(content.Text))
	for _, t := range content.Text {
		words = append(words, fragmentWord(t, pageHeight))
	}
	return words, nil
}

// fragmentWord converts one decoded text fragment to a word whose
// position is the center of its box, measured from the page's top-left
// corner. The decoder reports bottom-left-origin baseline coordinates,
// so the Y axis flips here and nowhere else.
func fragmentWord(t pdf.Text, pageHeight float64) model.Word {
	h := t.FontSize
	if h == 0 {
		h = defaultFragmentHeight
	}
	cx := t.X + t.W/2
	cy := pageHeight - (t.Y + h/2)
	return model.NewWord(cx, cy, t.S)
}
