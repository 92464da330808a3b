package render

import (
	"image/color"

	"github.com/tsawler/gridmark/model"
)

// Surface is the drawing target an interactive layer redraws into.
//
// All coordinates are page units; implementations apply their own
// resolution multiplier internally so overlay lines stay crisp under
// display zoom. Alpha in the given colors is honored: translucent fills
// blend over whatever is already on the surface.
type Surface interface {
	// Size returns the backing store dimensions in device pixels
	Size() (width, height int)

	// Scale returns the resolution multiplier from page units to pixels
	Scale() float64

	// Clear resets the surface to fully transparent
	Clear()

	// StrokeLine draws a line of the given width between two points
	StrokeLine(p1, p2 model.Point, col color.RGBA, width float64)

	// StrokeRect outlines a rectangle
	StrokeRect(r model.Rect, col color.RGBA, width float64)

	// DashRect outlines a rectangle with a dashed single-pixel stroke
	DashRect(r model.Rect, col color.RGBA)

	// FillRect fills a rectangle, alpha-blending translucent colors
	FillRect(r model.Rect, col color.RGBA)

	// DrawText draws a single line of text centered on the given point
	DrawText(text string, center model.Point, col color.RGBA)

	// TextWidth returns the rendered width of text in page units
	TextWidth(text string) float64
}
