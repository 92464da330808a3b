// Package ui hosts the table grid editor inside a Fyne application:
// a [TableWidget] that renders every registered page as a vertical
// strip and feeds its pointer events to the overlay dispatcher, and an
// [EditorWindow] that wraps the widget with scrolling, zoom controls,
// and CSV export.
//
// # Page Strip
//
// [TableWidget.AddPage] registers a page with the shared
// [overlay.Registry], allocates it an overlay surface, and restacks
// all viewports into a single vertical strip with a fixed margin and
// gap. Zoom changes restack the strip and resize the backing raster;
// the viewports keep the device-to-page mapping, so the dispatcher
// needs no knowledge of the layout.
//
// # Event Bridging
//
// The widget implements [desktop.Mouseable], [desktop.Hoverable], and
// [desktop.Cursorable] but deliberately not [fyne.Draggable]: Fyne
// keeps delivering MouseMoved to non-draggable widgets while a button
// is held, which hands the dispatcher the uninterrupted
// down/move/up stream its drag tracking expects. Every event is
// translated to device coordinates and forwarded; the cursor shape is
// whatever the dispatcher reports for the current hover or drag.
//
// # Compositing
//
// The widget draws through a [canvas.Raster]. Each frame fills the
// backdrop, then for every page blits the scaled background image (or
// plain paper where none is set) and alpha-blends the page's overlay
// surface on top. Rendering is purely CPU-side so the widget has no
// GPU or driver requirements beyond Fyne's own.
package ui
