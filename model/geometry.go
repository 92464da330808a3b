package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents a rectangle in page coordinates.
//
// Pages use a screen-style coordinate system: the origin is the top-left
// corner and Y grows downward. X and Y locate the top-left corner of the
// rectangle.
type Rect struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewRect creates a rectangle from coordinates
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// NewRectFromPoints creates a rectangle spanning two corner points.
// The points may be given in any order.
func NewRectFromPoints(p1, p2 Point) Rect {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the right edge X coordinate
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the top edge Y coordinate
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the bottom edge Y coordinate
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects checks if two rectangles intersect
func (r Rect) Intersects(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() < other.Top() ||
		r.Top() > other.Bottom())
}

// Intersection returns the intersection of two rectangles
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}

	x := math.Max(r.Left(), other.Left())
	y := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two rectangles
func (r Rect) Union(other Rect) Rect {
	x := math.Min(r.Left(), other.Left())
	y := math.Min(r.Top(), other.Top())
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())

	return Rect{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Expand expands the rectangle by a margin on all sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsValid returns true if the rectangle has positive dimensions
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Matrix represents a 2D affine transformation matrix
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Invert returns the inverse transformation. The second return value is
// false when the matrix is singular and no inverse exists.
func (m Matrix) Invert() (Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return Matrix{}, false
	}

	inv := Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}
	return inv, true
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}

// Clamp restricts v to the range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Within checks if v lies in the closed range [lo, hi]
func Within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Near checks if a and b differ by no more than tol
func Near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
