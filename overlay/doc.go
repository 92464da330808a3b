// Package overlay implements the interactive editing layer for table
// grids: pointer-driven resizing of columns and rows, whole-table
// moves, a draggable index column label, and a word-counting selection
// box, all drawn onto a [render.Surface] composited over the page.
//
// # Interaction Model
//
// Each page gets a [Controller], a small state machine over three
// phases. While idle or hovering, every pointer move re-resolves what
// is under the pointer and updates the cursor affordance. Pointer-down
// grabs the hovered item and enters the dragging phase; each subsequent
// move applies the pointer delta to the grabbed item through the page's
// mutators, so all clamping rules of the geometry layer apply to
// interactive edits unchanged. Pointer-down away from the table sweeps
// out a selection box that live-counts the words inside it.
//
// # Hit Testing
//
// [Controller.HitTest] resolves a page-relative point in a fixed
// order: the index label band first, then a reject of anything outside
// the table's bounding box expanded by the hover buffer, then the top
// and bottom row borders, then column borders left to right, and
// finally the table body. Border proximity uses the same buffer on
// both sides of the line.
//
// Dragging column border 0 or row border 0 moves the table's edge in
// lockstep with the first column's width or the table height, keeping
// the opposite edge fixed. All other column borders resize the column
// to their left by the raw pointer delta.
//
// # The Index Label
//
// The [IndexLabel] is a band drawn immediately above the table over
// the index column. Dragging it accumulates a horizontal offset; when
// the offset passes half the current column's width the index column
// assignment hops to the neighbor and the offset is re-based so the
// label stays under the pointer. Releasing snaps the label back over
// whichever column ended up as the index column.
//
// # Event Routing
//
// A [Dispatcher] owns pointer events in device coordinates. It resolves
// the target page by viewport containment, translates the point into
// that page's coordinate space, and forwards it to the page's
// controller. Pages are registered in a [Registry] and addressed by
// opaque [Handle] values; controllers read and write all geometry
// through the registry rather than holding page pointers.
package overlay
