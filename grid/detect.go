package grid

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/gridmark/model"
)

// DetectionReport summarizes one row-detection pass
type DetectionReport struct {
	// Rows is the resulting row count
	Rows int

	// LabelsFound is the number of words inside the index column's band
	LabelsFound int

	// TextOffset is the measured gap between a row's top border and its
	// index-column text
	TextOffset float64

	// Confidence scores the regularity of the detected row heights (0-1);
	// 0 when fewer than two rows were found
	Confidence float64
}

// DetectRows infers row heights from the words inside the index column.
//
// The heuristic assumes every row's index-column text sits at a constant
// offset below that row's top border. The first qualifying word measures
// that offset; each later word's position then directly yields the height
// of the row above it, and one final row consumes the remaining table
// height. Labels that drift vertically from row to row produce skewed
// boundaries; the confidence score drops accordingly.
//
// With fewer than two qualifying words the page keeps a single
// full-height row.
func (p *Page) DetectRows() DetectionReport {
	table := p.TableRect()
	indexLeft := p.position.X + p.leftOfIndex
	indexRight := indexLeft + p.columnWidths[p.indexColumn]

	var labels []model.Word
	for _, w := range p.words {
		if model.Within(w.Position.X, indexLeft, indexRight) &&
			model.Within(w.Position.Y, table.Top(), table.Bottom()) {
			labels = append(labels, w)
		}
	}

	total := p.rows.Total()
	if len(labels) == 0 {
		p.rows = SingleRegion(total)
		return DetectionReport{Rows: 1}
	}

	// Words arrive sorted by (y, x), so labels are already in ascending
	// row order.
	textOffset := labels[0].Position.Y - table.Top()

	var heights []float64
	cum := 0.0
	for _, w := range labels[1:] {
		h := w.Position.Y - table.Top() - cum - textOffset
		heights = append(heights, h)
		cum += h
	}
	heights = append(heights, total-cum)

	if len(heights) < 2 {
		p.rows = SingleRegion(total)
		return DetectionReport{
			Rows:        1,
			LabelsFound: len(labels),
			TextOffset:  textOffset,
		}
	}

	p.rows = DetectedRows(heights)
	return DetectionReport{
		Rows:        len(heights),
		LabelsFound: len(labels),
		TextOffset:  textOffset,
		Confidence:  rowRegularity(heights),
	}
}

// rowRegularity scores how regular the row heights are by computing the
// coefficient of variation. Lower variation results in a higher score.
func rowRegularity(heights []float64) float64 {
	if len(heights) < 2 {
		return 0
	}

	m := stat.Mean(heights, nil)
	if m <= 0 {
		return 0
	}

	cv := stat.StdDev(heights, nil) / m
	return math.Max(0, 1-cv)
}
