package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/overlay"
	"github.com/tsawler/gridmark/render"
)

const (
	pageMargin = 16.0
	pageGap    = 16.0
	minZoom    = 0.25
	maxZoom    = 4.0
	zoomStep   = 1.25
)

var (
	backdropColor = color.RGBA{58, 58, 60, 255}
	paperColor    = color.RGBA{255, 255, 255, 255}
)

// TableWidget displays a document's pages in a vertical strip with the
// editable table grid drawn over each one. Fyne mouse events become
// dispatcher pointer events in the widget's device space, so hovering,
// border drags, table moves, label drags, and selection sweeps all work
// across every visible page.
type TableWidget struct {
	widget.BaseWidget

	registry   *overlay.Registry
	dispatcher *overlay.Dispatcher
	config     overlay.Config

	// Optional rendered page image per handle; nil pages draw as blank
	// paper
	backgrounds map[overlay.Handle]image.Image

	raster  *fynecanvas.Raster
	imgSize fyne.Size
	zoom    float64
}

// NewTableWidget creates an empty widget; pages attach via AddPage.
func NewTableWidget() *TableWidget {
	w := &TableWidget{
		registry:    overlay.NewRegistry(),
		config:      overlay.DefaultConfig(),
		backgrounds: make(map[overlay.Handle]image.Image),
		zoom:        1.0,
		imgSize:     fyne.NewSize(400, 300),
	}
	w.dispatcher = overlay.NewDispatcher(w.registry)

	w.raster = fynecanvas.NewRaster(w.draw)
	w.raster.ScaleMode = fynecanvas.ImageScalePixels
	w.raster.SetMinSize(w.imgSize)

	w.ExtendBaseWidget(w)
	return w
}

// AddPage appends a page to the strip. background is the rendered page
// image, or nil for blank paper. Returns the page's registry handle and
// the controller driving its grid.
func (w *TableWidget) AddPage(page *grid.Page, background image.Image) (overlay.Handle, *overlay.Controller) {
	surface := render.NewImageSurface(page.Width(), page.Height())
	h, ctrl := w.registry.Add(page, surface, overlay.Viewport{Zoom: w.zoom}, w.config)
	w.backgrounds[h] = background
	ctrl.Redraw()
	w.layoutPages()
	return h, ctrl
}

// Registry returns the page registry shared with the dispatcher
func (w *TableWidget) Registry() *overlay.Registry {
	return w.registry
}

// Dispatcher returns the pointer-event dispatcher
func (w *TableWidget) Dispatcher() *overlay.Dispatcher {
	return w.dispatcher
}

// Pages returns every attached page in strip order
func (w *TableWidget) Pages() []*grid.Page {
	pages := make([]*grid.Page, 0, w.registry.Len())
	for _, h := range w.registry.Handles() {
		if p := w.registry.Page(h); p != nil {
			pages = append(pages, p)
		}
	}
	return pages
}

// Zoom returns the current display zoom
func (w *TableWidget) Zoom() float64 {
	return w.zoom
}

// SetZoom rescales the strip, clamping to the supported range
func (w *TableWidget) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	w.zoom = zoom
	w.layoutPages()
}

// ZoomIn increases the zoom level
func (w *TableWidget) ZoomIn() {
	w.SetZoom(w.zoom * zoomStep)
}

// ZoomOut decreases the zoom level
func (w *TableWidget) ZoomOut() {
	w.SetZoom(w.zoom / zoomStep)
}

// layoutPages restacks the viewports into a vertical strip at the
// current zoom and resizes the raster to cover it.
func (w *TableWidget) layoutPages() {
	y := pageGap
	maxWidth := 0.0
	for _, h := range w.registry.Handles() {
		page := w.registry.Page(h)
		if page == nil {
			continue
		}
		w.registry.SetViewport(h, overlay.Viewport{
			Offset: model.Point{X: pageMargin, Y: y},
			Zoom:   w.zoom,
		})
		y += page.Height()*w.zoom + pageGap
		if width := page.Width() * w.zoom; width > maxWidth {
			maxWidth = width
		}
	}

	w.imgSize = fyne.NewSize(float32(maxWidth+2*pageMargin), float32(y))
	w.raster.SetMinSize(w.imgSize)
	w.raster.Resize(w.imgSize)
	w.raster.Refresh()
}

// CreateRenderer implements fyne.Widget
func (w *TableWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// Refresh repaints the page strip
func (w *TableWidget) Refresh() {
	w.raster.Refresh()
	w.BaseWidget.Refresh()
}

// ============================================================================
// Pointer plumbing
// ============================================================================

// devicePoint converts a widget-relative event position to dispatcher
// device coordinates. The raster fills the widget, so they coincide.
func devicePoint(pos fyne.Position) model.Point {
	return model.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

// MouseDown implements desktop.Mouseable
func (w *TableWidget) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	w.dispatcher.PointerDown(devicePoint(ev.Position))
	w.raster.Refresh()
}

// MouseUp implements desktop.Mouseable
func (w *TableWidget) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	w.dispatcher.PointerUp(devicePoint(ev.Position))
	w.raster.Refresh()
}

// MouseIn implements desktop.Hoverable
func (w *TableWidget) MouseIn(ev *desktop.MouseEvent) {
	w.dispatcher.PointerMove(devicePoint(ev.Position))
	w.raster.Refresh()
}

// MouseMoved implements desktop.Hoverable. The widget is not draggable
// in the Fyne sense, so moves keep arriving here while a button is held
// and the dispatcher runs its own drag tracking.
func (w *TableWidget) MouseMoved(ev *desktop.MouseEvent) {
	w.dispatcher.PointerMove(devicePoint(ev.Position))
	w.raster.Refresh()
}

// MouseOut implements desktop.Hoverable
func (w *TableWidget) MouseOut() {
	for _, h := range w.registry.Handles() {
		if ctrl := w.registry.Controller(h); ctrl != nil {
			ctrl.ClearHover()
		}
	}
	w.raster.Refresh()
}

// Cursor implements desktop.Cursorable, surfacing the resize, move, and
// crosshair affordances of whatever the pointer is over.
func (w *TableWidget) Cursor() desktop.Cursor {
	return fyneCursor(w.dispatcher.Cursor())
}

// fyneCursor maps dispatcher cursor shapes onto Fyne's standard set
func fyneCursor(c overlay.Cursor) desktop.Cursor {
	switch c {
	case overlay.CursorColResize:
		return desktop.HResizeCursor
	case overlay.CursorRowResize:
		return desktop.VResizeCursor
	case overlay.CursorMove:
		return desktop.PointerCursor
	case overlay.CursorCrosshair:
		return desktop.CrosshairCursor
	default:
		return desktop.DefaultCursor
	}
}

// ============================================================================
// Compositing
// ============================================================================

// draw renders the whole strip: backdrop, then each page's paper or
// background image with its overlay surface alpha-blended on top.
func (w *TableWidget) draw(width, height int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, width, height))
	fillImage(output, backdropColor)

	for _, h := range w.registry.Handles() {
		page := w.registry.Page(h)
		if page == nil {
			continue
		}
		w.compositePage(output, h, page)
	}
	return output
}

// compositePage draws one page into its viewport area
func (w *TableWidget) compositePage(output *image.RGBA, h overlay.Handle, page *grid.Page) {
	vp := w.registry.Viewport(h)
	area := vp.Rect(page.Width(), page.Height())

	x0, y0 := int(area.Left()), int(area.Top())
	x1, y1 := int(area.Right()), int(area.Bottom())
	bounds := output.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}

	background := w.backgrounds[h]
	var bgScaleX, bgScaleY float64
	var bgBounds image.Rectangle
	if background != nil {
		bgBounds = background.Bounds()
		bgScaleX = float64(bgBounds.Dx()) / page.Width()
		bgScaleY = float64(bgBounds.Dy()) / page.Height()
	}

	surface, _ := w.registry.Surface(h).(*render.ImageSurface)
	var overlayImg *image.RGBA
	var overlayScale float64
	if surface != nil {
		overlayImg = surface.Image()
		overlayScale = surface.Scale()
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := vp.ToPage(model.Point{X: float64(x), Y: float64(y)})

			out := paperColor
			if background != nil {
				sx := bgBounds.Min.X + int(p.X*bgScaleX)
				sy := bgBounds.Min.Y + int(p.Y*bgScaleY)
				if inRect(bgBounds, sx, sy) {
					r, g, b, _ := background.At(sx, sy).RGBA()
					out = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
				}
			}

			if overlayImg != nil {
				sx := int(p.X * overlayScale)
				sy := int(p.Y * overlayScale)
				if inRect(overlayImg.Bounds(), sx, sy) {
					out = blendOver(out, overlayImg.RGBAAt(sx, sy))
				}
			}

			output.SetRGBA(x, y, out)
		}
	}
}

// blendOver composites src over dst using src's alpha
func blendOver(dst, src color.RGBA) color.RGBA {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return color.RGBA{src.R, src.G, src.B, 255}
	}
	a := float64(src.A) / 255
	inv := 1 - a
	return color.RGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*inv),
		G: uint8(float64(src.G)*a + float64(dst.G)*inv),
		B: uint8(float64(src.B)*a + float64(dst.B)*inv),
		A: 255,
	}
}

// fillImage floods the image with one color
func fillImage(img *image.RGBA, col color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// inRect reports whether the pixel coordinate lies inside the rectangle
func inRect(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
