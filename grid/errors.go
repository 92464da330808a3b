package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the kind for caller contract violations. Geometry
	// setters never return it; they clamp bad values instead. It surfaces
	// only where a caller passed an argument no clamping can repair.
	ErrConfiguration = errors.New("grid: configuration error")

	// ErrInsufficientColumns reports a CSV target column count smaller than
	// the page's actual column count. Aggregators must size the target to
	// the maximum column count across all pages. Wraps ErrConfiguration.
	ErrInsufficientColumns = fmt.Errorf("%w: insufficient columns", ErrConfiguration)

	// ErrOutOfRange reports a column or row index outside the current range
	ErrOutOfRange = errors.New("grid: index out of range")
)

// outOfRange builds an ErrOutOfRange naming the offending index and range
func outOfRange(what string, i, n int) error {
	return fmt.Errorf("%s %d of %d: %w", what, i, n, ErrOutOfRange)
}
