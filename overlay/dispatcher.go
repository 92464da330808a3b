package overlay

import (
	"github.com/tsawler/gridmark/grid"
	"github.com/tsawler/gridmark/model"
	"github.com/tsawler/gridmark/render"
)

// Handle identifies a page registered with a [Registry]. Handles are
// opaque: controllers and the dispatcher reach page geometry only
// through registry lookups, never through stored page pointers.
type Handle int

// pageEntry bundles the per-page overlay state
type pageEntry struct {
	page     *grid.Page
	label    *IndexLabel
	surface  render.Surface
	viewport Viewport
	ctrl     *Controller
}

// Registry owns the pages under interactive editing. Every page gets a
// handle, an index label, an overlay surface and a controller; lookups
// on an unknown handle return zero values rather than panicking.
type Registry struct {
	entries []*pageEntry
}

// NewRegistry returns an empty page registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a page with its overlay surface and viewport, returning
// the page's handle and the controller driving its interactions.
func (r *Registry) Add(page *grid.Page, surface render.Surface, viewport Viewport, config Config) (Handle, *Controller) {
	h := Handle(len(r.entries))
	e := &pageEntry{
		page:     page,
		label:    NewIndexLabel(config),
		surface:  surface,
		viewport: viewport,
	}
	e.ctrl = &Controller{registry: r, handle: h, config: config, cursor: CursorDefault}
	r.entries = append(r.entries, e)
	return h, e.ctrl
}

func (r *Registry) entry(h Handle) *pageEntry {
	if int(h) < 0 || int(h) >= len(r.entries) {
		return nil
	}
	return r.entries[h]
}

// Len returns the number of registered pages
func (r *Registry) Len() int {
	return len(r.entries)
}

// Handles returns every registered handle in registration order
func (r *Registry) Handles() []Handle {
	hs := make([]Handle, len(r.entries))
	for i := range r.entries {
		hs[i] = Handle(i)
	}
	return hs
}

// Page returns the page behind a handle, or nil
func (r *Registry) Page(h Handle) *grid.Page {
	if e := r.entry(h); e != nil {
		return e.page
	}
	return nil
}

// Label returns the page's index label, or nil
func (r *Registry) Label(h Handle) *IndexLabel {
	if e := r.entry(h); e != nil {
		return e.label
	}
	return nil
}

// Surface returns the page's overlay surface, or nil
func (r *Registry) Surface(h Handle) render.Surface {
	if e := r.entry(h); e != nil {
		return e.surface
	}
	return nil
}

// Controller returns the page's controller, or nil
func (r *Registry) Controller(h Handle) *Controller {
	if e := r.entry(h); e != nil {
		return e.ctrl
	}
	return nil
}

// Viewport returns the page's current viewport
func (r *Registry) Viewport(h Handle) Viewport {
	if e := r.entry(h); e != nil {
		return e.viewport
	}
	return Viewport{}
}

// SetViewport moves or rescales a page's rendered area
func (r *Registry) SetViewport(h Handle, v Viewport) {
	if e := r.entry(h); e != nil {
		e.viewport = v
	}
}

// Dispatcher routes device-coordinate pointer events to pages. An event
// goes to the first page whose rendered area contains it, translated
// into that page's coordinate space. While a drag is in progress every
// event goes to the dragging page regardless of position, so a fast
// drag does not drop out when the pointer leaves the page area.
type Dispatcher struct {
	registry *Registry
	active   Handle
}

// NewDispatcher returns a dispatcher over the given registry
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry, active: -1}
}

// Active returns the handle of the page currently being dragged, or -1
func (d *Dispatcher) Active() Handle {
	return d.active
}

// Cursor returns the pointer shape the pages collectively want: the
// dragging page's cursor, else the hovered page's, else the default.
func (d *Dispatcher) Cursor() Cursor {
	if ctrl := d.registry.Controller(d.active); ctrl != nil {
		return ctrl.Cursor()
	}
	for _, h := range d.registry.Handles() {
		if ctrl := d.registry.Controller(h); ctrl != nil && ctrl.Phase() != PhaseIdle {
			return ctrl.Cursor()
		}
	}
	return CursorDefault
}

// hitPage returns the first registered page whose viewport contains the
// device point, or -1.
func (d *Dispatcher) hitPage(device model.Point) Handle {
	for _, h := range d.registry.Handles() {
		page := d.registry.Page(h)
		if page == nil {
			continue
		}
		if d.registry.Viewport(h).Contains(device, page.Width(), page.Height()) {
			return h
		}
	}
	return -1
}

// PointerDown starts an interaction on the page under the device point
func (d *Dispatcher) PointerDown(device model.Point) {
	h := d.hitPage(device)
	if h < 0 {
		return
	}
	ctrl := d.registry.Controller(h)
	if ctrl == nil {
		return
	}
	d.active = h
	ctrl.PointerDown(d.registry.Viewport(h).ToPage(device))
}

// PointerMove forwards motion to the dragging page if there is one,
// otherwise to the page under the pointer, clearing hover state on all
// others.
func (d *Dispatcher) PointerMove(device model.Point) {
	if d.active >= 0 {
		if ctrl := d.registry.Controller(d.active); ctrl != nil {
			ctrl.PointerMove(d.registry.Viewport(d.active).ToPage(device))
		}
		return
	}

	h := d.hitPage(device)
	for _, other := range d.registry.Handles() {
		if other == h {
			continue
		}
		if ctrl := d.registry.Controller(other); ctrl != nil {
			ctrl.ClearHover()
		}
	}
	if h < 0 {
		return
	}
	if ctrl := d.registry.Controller(h); ctrl != nil {
		ctrl.PointerMove(d.registry.Viewport(h).ToPage(device))
	}
}

// PointerUp ends the active drag, or releases on the page under the
// pointer when nothing was being dragged.
func (d *Dispatcher) PointerUp(device model.Point) {
	h := d.active
	d.active = -1
	if h < 0 {
		h = d.hitPage(device)
	}
	if h < 0 {
		return
	}
	if ctrl := d.registry.Controller(h); ctrl != nil {
		ctrl.PointerUp(d.registry.Viewport(h).ToPage(device))
	}
}
