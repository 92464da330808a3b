// Package render provides the drawing surface the interactive layer
// redraws into.
//
// The [Surface] interface works entirely in page units; implementations
// apply a resolution multiplier internally so grid lines stay crisp when
// the page is displayed zoomed. [ImageSurface] is the standard
// implementation, backed by an in-memory RGBA image that a UI composites
// over the rendered page.
//
// The overlay owns its surface: it clears and redraws the whole grid on
// every geometry change, and the UI copies the result to screen.
package render
