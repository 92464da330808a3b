package overlay

import "github.com/tsawler/gridmark/model"

// Viewport describes where a rendered page sits in device coordinates:
// the page is scaled by Zoom and its top-left corner placed at Offset.
type Viewport struct {
	Offset model.Point
	Zoom   float64
}

// zoom returns the effective zoom factor, treating non-positive values
// as 1 so a zero-value Viewport is usable
func (v Viewport) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// matrix returns the page-to-device transform
func (v Viewport) matrix() model.Matrix {
	z := v.zoom()
	return model.Scale(z, z).Multiply(model.Translate(v.Offset.X, v.Offset.Y))
}

// ToDevice converts a page-relative point to device coordinates
func (v Viewport) ToDevice(p model.Point) model.Point {
	return v.matrix().Transform(p)
}

// ToPage converts a device point to page-relative coordinates
func (v Viewport) ToPage(d model.Point) model.Point {
	inv, ok := v.matrix().Invert()
	if !ok {
		return d
	}
	return inv.Transform(d)
}

// Rect returns the device-space rectangle covered by a page of the
// given size.
func (v Viewport) Rect(pageWidth, pageHeight float64) model.Rect {
	z := v.zoom()
	return model.NewRect(v.Offset.X, v.Offset.Y, pageWidth*z, pageHeight*z)
}

// Contains reports whether the device point falls inside the rendered
// page area.
func (v Viewport) Contains(d model.Point, pageWidth, pageHeight float64) bool {
	return v.Rect(pageWidth, pageHeight).Contains(d)
}
