package gridmark

import (
	"fmt"
	"strings"
)

// WarningType classifies a non-fatal extraction issue
type WarningType string

const (
	// WarnColumnsClamped means the requested column count could not fit
	// the page and a smaller count was applied
	WarnColumnsClamped WarningType = "columns-clamped"

	// WarnNoIndexWords means row detection found no words inside the
	// index column and the page kept a single full-height row
	WarnNoIndexWords WarningType = "no-index-words"

	// WarnIrregularRows means detected row heights vary enough that the
	// inferred boundaries are suspect
	WarnIrregularRows WarningType = "irregular-rows"

	// WarnEmptyPage means a page contributed no rows to the aggregated
	// output
	WarnEmptyPage WarningType = "empty-page"
)

// Warning describes a non-fatal issue encountered during extraction.
// The operation succeeded but the result may be imperfect.
type Warning struct {
	// Type classifies the issue
	Type WarningType

	// Message describes the issue, naming the affected page
	Message string
}

// String returns the warning as "type: message"
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Type, w.Message)
}

// FormatWarnings joins warnings into a single string, one per line,
// suitable for logging.
//
// Example:
//
//	csv, warnings, err := gridmark.Open("scan.pdf").Columns(4).CSV()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + gridmark.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.String())
	}
	return sb.String()
}
