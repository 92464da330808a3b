// Package model provides the geometric primitives shared by the grid,
// overlay, and extraction packages.
//
// This package defines the small value types that every other layer builds
// on: points, rectangles, affine transforms, and recognized words. It has
// no dependencies beyond the standard library and holds no mutable state.
//
// # Coordinate System
//
// All geometry uses a screen-style coordinate system: the origin is the
// top-left corner of a page and Y grows downward. Rectangles are anchored
// at their top-left corner, so for a [Rect] r, r.Top() == r.Y and
// r.Bottom() == r.Y + r.Height. Page sources and drawing surfaces are
// expected to deliver and consume coordinates in this same space.
//
// # Geometry
//
//   - [Point] - 2D point with distance calculation
//   - [Rect] - rectangle with containment, intersection, union, and
//     expansion calculations
//   - [Matrix] - 2D affine transformation matrix, used to map between
//     device and page coordinates under zoom and scroll
//
// The free functions [Clamp], [Within], and [Near] cover the scalar range
// arithmetic the geometry resolvers use throughout.
//
// # Words
//
// A [Word] is one recognized text fragment: its text plus the center point
// of its box, relative to the page's top-left corner. Word lists are sorted
// once at page construction via [SortWords] (ascending by Y, then X) and
// never re-sorted; the row-detection and cell-bucketing algorithms both
// rely on that ordering.
package model
