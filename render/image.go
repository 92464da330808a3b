package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/gridmark/model"
)

// DefaultScale is the resolution multiplier used when none is given.
// Drawing at twice the page resolution keeps single-unit grid lines crisp
// on high-density displays.
const DefaultScale = 2.0

// ImageSurface is a Surface backed by an in-memory RGBA image
type ImageSurface struct {
	img   *image.RGBA
	scale float64
	face  *basicfont.Face
}

// NewImageSurface creates a transparent surface covering a width x height
// page at DefaultScale.
func NewImageSurface(width, height float64) *ImageSurface {
	return NewImageSurfaceWithScale(width, height, DefaultScale)
}

// NewImageSurfaceWithScale creates a transparent surface with an explicit
// resolution multiplier. Scales below 1 are raised to 1.
func NewImageSurfaceWithScale(width, height, scale float64) *ImageSurface {
	if scale < 1 {
		scale = 1
	}
	w := int(width*scale + 0.5)
	h := int(height*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	return &ImageSurface{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: scale,
		face:  basicfont.Face7x13,
	}
}

// Image exposes the backing store for compositing over the page render.
// The pixels are valid until the next drawing call.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the backing store dimensions in device pixels
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Scale returns the resolution multiplier from page units to pixels
func (s *ImageSurface) Scale() float64 {
	return s.scale
}

// Clear resets the surface to fully transparent
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// StrokeLine draws a line between two page-unit points using Bresenham's
// algorithm, thickened to width page units.
func (s *ImageSurface) StrokeLine(p1, p2 model.Point, col color.RGBA, width float64) {
	x1, y1 := s.device(p1)
	x2, y2 := s.device(p2)
	s.line(x1, y1, x2, y2, col, s.thickness(width))
}

// StrokeRect outlines a rectangle
func (s *ImageSurface) StrokeRect(r model.Rect, col color.RGBA, width float64) {
	tl := model.Point{X: r.Left(), Y: r.Top()}
	tr := model.Point{X: r.Right(), Y: r.Top()}
	bl := model.Point{X: r.Left(), Y: r.Bottom()}
	br := model.Point{X: r.Right(), Y: r.Bottom()}

	s.StrokeLine(tl, tr, col, width)
	s.StrokeLine(bl, br, col, width)
	s.StrokeLine(tl, bl, col, width)
	s.StrokeLine(tr, br, col, width)
}

// DashRect outlines a rectangle with a single-pixel dashed stroke.
// Alternating two pixels on, two off reads as a marching selection box.
func (s *ImageSurface) DashRect(r model.Rect, col color.RGBA) {
	x1, y1 := s.device(model.Point{X: r.Left(), Y: r.Top()})
	x2, y2 := s.device(model.Point{X: r.Right(), Y: r.Bottom()})
	bounds := s.img.Bounds()

	for x := x1; x <= x2; x++ {
		if (x+y1)%4 < 2 && inBounds(bounds, x, y1) {
			s.img.Set(x, y1, col)
		}
		if (x+y2)%4 < 2 && inBounds(bounds, x, y2) {
			s.img.Set(x, y2, col)
		}
	}
	for y := y1; y <= y2; y++ {
		if (x1+y)%4 < 2 && inBounds(bounds, x1, y) {
			s.img.Set(x1, y, col)
		}
		if (x2+y)%4 < 2 && inBounds(bounds, x2, y) {
			s.img.Set(x2, y, col)
		}
	}
}

// FillRect fills a rectangle. Colors with partial alpha blend over the
// existing pixels; opaque colors overwrite them.
func (s *ImageSurface) FillRect(r model.Rect, col color.RGBA) {
	x1, y1 := s.device(model.Point{X: r.Left(), Y: r.Top()})
	x2, y2 := s.device(model.Point{X: r.Right(), Y: r.Bottom()})
	bounds := s.img.Bounds()

	if col.A == 255 {
		for y := y1; y <= y2; y++ {
			for x := x1; x <= x2; x++ {
				if inBounds(bounds, x, y) {
					s.img.Set(x, y, col)
				}
			}
		}
		return
	}

	opacity := float64(col.A) / 255
	inv := 1 - opacity
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if !inBounds(bounds, x, y) {
				continue
			}
			existing := s.img.RGBAAt(x, y)
			blended := color.RGBA{
				R: uint8(float64(col.R)*opacity + float64(existing.R)*inv),
				G: uint8(float64(col.G)*opacity + float64(existing.G)*inv),
				B: uint8(float64(col.B)*opacity + float64(existing.B)*inv),
				A: 255,
			}
			s.img.Set(x, y, blended)
		}
	}
}

// DrawText draws one line of text centered on the given page-unit point
func (s *ImageSurface) DrawText(text string, center model.Point, col color.RGBA) {
	cx, cy := s.device(center)
	width := font.MeasureString(s.face, text).Round()

	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(col),
		Face: s.face,
		Dot: fixed.P(
			cx-width/2,
			cy-s.face.Height/2+s.face.Ascent,
		),
	}
	d.DrawString(text)
}

// TextWidth returns the rendered width of text in page units
func (s *ImageSurface) TextWidth(text string) float64 {
	return float64(font.MeasureString(s.face, text).Round()) / s.scale
}

// device converts a page-unit point to device pixel coordinates
func (s *ImageSurface) device(p model.Point) (int, int) {
	return int(p.X*s.scale + 0.5), int(p.Y*s.scale + 0.5)
}

// thickness converts a page-unit stroke width to a pixel count, never
// thinner than one pixel.
func (s *ImageSurface) thickness(width float64) int {
	t := int(width*s.scale + 0.5)
	if t < 1 {
		t = 1
	}
	return t
}

// line draws a thick line in device pixels using Bresenham's algorithm
func (s *ImageSurface) line(x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := s.img.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for u := -thickness / 2; u <= thickness/2; u++ {
				px, py := x1+u, y1+t
				if inBounds(bounds, px, py) {
					s.img.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func inBounds(b image.Rectangle, x, y int) bool {
	return x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y
}
