package grid

// Config holds the geometry limits a page enforces
type Config struct {
	// Minimum width of any column
	MinColumnWidth float64

	// Width given to columns appended with room to spare
	DefaultColumnWidth float64

	// Maximum number of columns a table may have
	MaxColumns int

	// Minimum total table height
	MinTableHeight float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinColumnWidth:     10,
		DefaultColumnWidth: 50,
		MaxColumns:         20,
		MinTableHeight:     10,
	}
}
