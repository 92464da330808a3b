package overlay

// Item identifies what part of the table a pointer interaction targets
type Item int

const (
	ItemNone Item = iota
	ItemColumnBorder
	ItemRowBorder
	ItemWholeTable
	ItemSelectionBox
	ItemIndexLabel
)

func (i Item) String() string {
	switch i {
	case ItemNone:
		return "None"
	case ItemColumnBorder:
		return "ColumnBorder"
	case ItemRowBorder:
		return "RowBorder"
	case ItemWholeTable:
		return "WholeTable"
	case ItemSelectionBox:
		return "SelectionBox"
	case ItemIndexLabel:
		return "IndexLabel"
	default:
		return "Unknown"
	}
}

// Phase is the interaction state of a controller.
//
// The machine is IDLE -> HOVER -> DRAGGING and back to IDLE on release.
// Hover is recomputed on every pointer move while not dragging.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHover
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseHover:
		return "Hover"
	case PhaseDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Cursor is the pointer affordance a UI should show for the current
// hover or drag target.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorColResize
	CursorRowResize
	CursorMove
	CursorCrosshair
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	case CursorMove:
		return "Move"
	case CursorCrosshair:
		return "Crosshair"
	default:
		return "Unknown"
	}
}

// cursorFor maps an interaction target to its pointer affordance
func cursorFor(item Item) Cursor {
	switch item {
	case ItemColumnBorder, ItemIndexLabel:
		return CursorColResize
	case ItemRowBorder:
		return CursorRowResize
	case ItemWholeTable:
		return CursorMove
	case ItemSelectionBox:
		return CursorCrosshair
	default:
		return CursorDefault
	}
}
