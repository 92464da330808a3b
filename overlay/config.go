package overlay

import "image/color"

// Config controls hit-testing tolerances and the visual style of the
// table overlay.
type Config struct {
	// HoverBuffer is the distance in page units within which a border
	// counts as hovered
	HoverBuffer float64

	// LabelHeight is the height of the index label band drawn above the
	// table's top border
	LabelHeight float64

	// LabelPadding is the horizontal padding inside the label band when
	// fitting the label text
	LabelPadding float64

	// LineWidth is the stroke width of grid borders in page units
	LineWidth float64

	// ActiveLineWidth is the stroke width of the border currently being
	// hovered or dragged
	ActiveLineWidth float64

	// GridColor is the color of column and row border lines
	GridColor color.RGBA

	// ActiveColor is the color of the active border line
	ActiveColor color.RGBA

	// LabelBackground fills the index label band
	LabelBackground color.RGBA

	// LabelText is the color of the index label text
	LabelText color.RGBA

	// HighlightColor is the translucent fill drawn over the index column
	// while its label is being dragged
	HighlightColor color.RGBA

	// SelectionColor is the color of the dashed selection rectangle
	SelectionColor color.RGBA
}

// DefaultConfig returns sensible defaults for interactive table editing
func DefaultConfig() Config {
	return Config{
		HoverBuffer:     4,
		LabelHeight:     14,
		LabelPadding:    4,
		LineWidth:       1,
		ActiveLineWidth: 2,
		GridColor:       color.RGBA{R: 40, G: 40, B: 40, A: 255},
		ActiveColor:     color.RGBA{R: 0, G: 102, B: 204, A: 255},
		LabelBackground: color.RGBA{R: 250, G: 220, B: 80, A: 255},
		LabelText:       color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HighlightColor:  color.RGBA{R: 0, G: 102, B: 204, A: 70},
		SelectionColor:  color.RGBA{R: 255, G: 200, B: 0, A: 255},
	}
}
