// Package config resolves the gridmark CLI configuration from command
// line flags and GRIDMARK_* environment variables, flags winning.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/gridmark/extract"
	"github.com/tsawler/gridmark/model"
)

const (
	// Output formats
	FormatCSV  = "csv"
	FormatHTML = "html"

	// Default values
	DefaultFormat   = FormatCSV
	DefaultEncoding = "utf-8"
	DefaultLogLevel = "info"
)

// ErrVersionRequested is returned by LoadFromFlags when --version was
// passed; the binary prints its version and exits.
var ErrVersionRequested = errors.New("version requested")

// Config holds all configuration for the gridmark binaries
type Config struct {
	// Extraction configuration
	Pages        []int   // 1-indexed page selection, empty = all
	Columns      int     // column count to apply, 0 = leave default
	Table        string  // table placement "x,y,w,h", empty = default
	IndexColumn  int     // index column for detection, -1 = leave default
	RowHeight    float64 // fixed row height, 0 = none
	DetectRows   bool
	TemplatePage int // page whose layout is propagated, 0 = none

	// Output configuration
	Output   string // output file, empty = stdout
	Format   string // "csv" or "html"
	Encoding string
	CRLF     bool

	// Application configuration
	Edit       bool // open the interactive editor instead of extracting
	ServerName string
	Version    string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		IndexColumn: -1,
		Format:      DefaultFormat,
		Encoding:    DefaultEncoding,
		ServerName:  "gridmark",
		Version:     "1.0.0",
		LogLevel:    DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	if versionRequested() {
		return nil, ErrVersionRequested
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("GRIDMARK")
	viper.AutomaticEnv()

	viper.SetDefault("pages", cfg.Pages)
	viper.SetDefault("columns", cfg.Columns)
	viper.SetDefault("table", cfg.Table)
	viper.SetDefault("index", cfg.IndexColumn)
	viper.SetDefault("rowheight", cfg.RowHeight)
	viper.SetDefault("detect", cfg.DetectRows)
	viper.SetDefault("template", cfg.TemplatePage)
	viper.SetDefault("output", cfg.Output)
	viper.SetDefault("format", cfg.Format)
	viper.SetDefault("encoding", cfg.Encoding)
	viper.SetDefault("crlf", cfg.CRLF)
	viper.SetDefault("edit", cfg.Edit)
	viper.SetDefault("loglevel", cfg.LogLevel)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.IntSlice("pages", cfg.Pages, "Pages to extract, 1-indexed (default all)")
	pflag.Int("columns", cfg.Columns, "Column count to apply to each page")
	pflag.String("table", cfg.Table, "Table placement as x,y,w,h in page units")
	pflag.Int("index", cfg.IndexColumn, "Index column for row detection, 0-based")
	pflag.Float64("rowheight", cfg.RowHeight, "Fixed row height in page units")
	pflag.Bool("detect", cfg.DetectRows, "Detect rows from index-column word positions")
	pflag.Int("template", cfg.TemplatePage, "Page whose layout is copied to the other selected pages")
	pflag.String("output", cfg.Output, "Output file (default stdout)")
	pflag.String("format", cfg.Format, "Output format: csv or html")
	pflag.String("encoding", cfg.Encoding, "CSV byte encoding: utf-8, utf-8-bom, windows-1252, latin-1")
	pflag.Bool("crlf", cfg.CRLF, "Terminate CSV rows with CRLF")
	pflag.Bool("edit", cfg.Edit, "Open the interactive grid editor")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	for _, key := range []string{
		"pages", "columns", "table", "index", "rowheight", "detect",
		"template", "output", "format", "encoding", "crlf", "edit",
		"loglevel",
	} {
		_ = viper.BindPFlag(key, pflag.Lookup(key))
	}
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\ngridmark - table grid extraction for rendered documents\n\n")
		fmt.Fprintf(os.Stderr, "  %s [options] document.pdf\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s report.pdf                                # whole document, default grid\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --pages=1,2 --columns=4 report.pdf        # first two pages, four columns\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --table=50,80,500,600 --detect report.pdf # placed table, detected rows\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --edit report.pdf                         # interactive editor\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  GRIDMARK_COLUMNS   Column count\n")
		fmt.Fprintf(os.Stderr, "  GRIDMARK_TABLE     Table placement\n")
		fmt.Fprintf(os.Stderr, "  GRIDMARK_FORMAT    Output format\n")
		fmt.Fprintf(os.Stderr, "  GRIDMARK_ENCODING  CSV byte encoding\n")
		fmt.Fprintf(os.Stderr, "  GRIDMARK_OUTPUT    Output file\n")
		fmt.Fprintf(os.Stderr, "  GRIDMARK_LOGLEVEL  Log level\n")
	}
}

// versionRequested checks if a version flag was passed before parsing
func versionRequested() bool {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return true
		}
	}
	return false
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Pages = viper.GetIntSlice("pages")
	cfg.Columns = viper.GetInt("columns")
	cfg.Table = viper.GetString("table")
	cfg.IndexColumn = viper.GetInt("index")
	cfg.RowHeight = viper.GetFloat64("rowheight")
	cfg.DetectRows = viper.GetBool("detect")
	cfg.TemplatePage = viper.GetInt("template")
	cfg.Output = viper.GetString("output")
	cfg.Format = viper.GetString("format")
	cfg.Encoding = viper.GetString("encoding")
	cfg.CRLF = viper.GetBool("crlf")
	cfg.Edit = viper.GetBool("edit")
	cfg.LogLevel = viper.GetString("loglevel")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	for _, p := range c.Pages {
		if p < 1 {
			return fmt.Errorf("page numbers are 1-indexed, got %d", p)
		}
	}

	if c.Columns < 0 {
		return errors.New("column count cannot be negative")
	}

	if c.IndexColumn < -1 {
		return errors.New("index column cannot be negative")
	}

	if c.RowHeight < 0 {
		return errors.New("row height cannot be negative")
	}

	if c.TemplatePage < 0 {
		return errors.New("template page cannot be negative")
	}

	if _, _, err := c.TableRect(); err != nil {
		return err
	}

	if c.Format != FormatCSV && c.Format != FormatHTML {
		return fmt.Errorf("format must be either 'csv' or 'html', got %q", c.Format)
	}

	if _, err := extract.ParseEncoding(c.Encoding); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// TableRect parses the table placement flag. The bool is false when no
// placement was configured.
func (c *Config) TableRect() (model.Rect, bool, error) {
	if c.Table == "" {
		return model.Rect{}, false, nil
	}
	r, err := ParseTableRect(c.Table)
	if err != nil {
		return model.Rect{}, false, err
	}
	return r, true, nil
}

// ParseTableRect parses an "x,y,w,h" table placement string
func ParseTableRect(s string) (model.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return model.Rect{}, fmt.Errorf("table placement must be x,y,w,h, got %q", s)
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model.Rect{}, fmt.Errorf("table placement must be x,y,w,h, got %q", s)
		}
		vals[i] = v
	}

	if vals[2] <= 0 || vals[3] <= 0 {
		return model.Rect{}, fmt.Errorf("table placement needs a positive size, got %q", s)
	}

	return model.NewRect(vals[0], vals[1], vals[2], vals[3]), nil
}

// OutputEncoding returns the parsed CSV encoding. Call Validate first;
// unknown names fall back to UTF-8.
func (c *Config) OutputEncoding() extract.Encoding {
	enc, _ := extract.ParseEncoding(c.Encoding)
	return enc
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Pages: %v, Columns: %d, Table: %q, Format: %s, Encoding: %s, Output: %q, LogLevel: %s}",
		c.Pages, c.Columns, c.Table, c.Format, c.Encoding, c.Output, c.LogLevel)
}
