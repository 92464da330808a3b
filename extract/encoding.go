package extract

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding selects the byte encoding of written CSV output. Legacy
// single-byte encodings exist for spreadsheet tools that do not sniff
// UTF-8; the BOM variant exists for the ones that only sniff.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	Windows1252
	Latin1
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF8BOM:
		return "utf-8-bom"
	case Windows1252:
		return "windows-1252"
	case Latin1:
		return "latin-1"
	default:
		return "unknown"
	}
}

// ParseEncoding resolves a user-supplied encoding name
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "utf-8-bom", "utf8-bom":
		return UTF8BOM, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	case "latin-1", "iso-8859-1":
		return Latin1, nil
	}
	return UTF8, fmt.Errorf("unknown encoding %q", name)
}

// NewWriter wraps w so that UTF-8 text written to it reaches w in the
// target encoding. Close must be called to flush any buffered partial
// sequence; closing never closes the underlying writer.
func NewWriter(w io.Writer, e Encoding) (io.WriteCloser, error) {
	switch e {
	case UTF8:
		return nopCloser{w}, nil
	case UTF8BOM:
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return nil, fmt.Errorf("writing byte order mark: %w", err)
		}
		return nopCloser{w}, nil
	case Windows1252:
		return transform.NewWriter(w, charmap.Windows1252.NewEncoder()), nil
	case Latin1:
		return transform.NewWriter(w, charmap.ISO8859_1.NewEncoder()), nil
	}
	return nil, fmt.Errorf("unknown encoding %d", e)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
