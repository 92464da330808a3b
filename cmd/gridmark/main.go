package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"

	"github.com/tsawler/gridmark"
	"github.com/tsawler/gridmark/internal/config"
	"github.com/tsawler/gridmark/ui"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		if errors.Is(err, config.ErrVersionRequested) {
			printVersion()
			return
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if version != "dev" {
		cfg.Version = version
	}

	args := pflag.Args()
	if len(args) != 1 {
		pflag.Usage()
		os.Exit(2)
	}
	path := args[0]

	if cfg.IsDebug() {
		log.Printf("Configuration: %s", cfg)
	}

	if cfg.Edit {
		runEditor(path)
		return
	}

	if err := runExtract(cfg, path); err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}
}

// runExtract performs a headless extraction to the configured output
func runExtract(cfg *config.Config, path string) error {
	ext, err := buildExtractor(cfg, path)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	var warnings []gridmark.Warning
	switch cfg.Format {
	case config.FormatHTML:
		var doc string
		doc, warnings, err = ext.HTML()
		if err == nil {
			_, err = io.WriteString(out, doc)
		}
	default:
		warnings, err = ext.WriteCSV(out)
	}
	if err != nil {
		return err
	}

	// Warnings go to stderr so piped output stays clean.
	if len(warnings) > 0 {
		log.Printf("Extraction warnings:\n%s", gridmark.FormatWarnings(warnings))
	}
	return nil
}

// buildExtractor translates the CLI configuration into a fluent chain
func buildExtractor(cfg *config.Config, path string) (*gridmark.Extractor, error) {
	ext := gridmark.Open(path)

	if len(cfg.Pages) > 0 {
		ext = ext.Pages(cfg.Pages...)
	}
	if cfg.Columns > 0 {
		ext = ext.Columns(cfg.Columns)
	}
	r, ok, err := cfg.TableRect()
	if err != nil {
		return nil, err
	}
	if ok {
		ext = ext.Table(r.X, r.Y, r.Width, r.Height)
	}
	if cfg.IndexColumn >= 0 {
		ext = ext.IndexColumn(cfg.IndexColumn)
	}
	if cfg.RowHeight > 0 {
		ext = ext.RowHeight(cfg.RowHeight)
	}
	if cfg.DetectRows {
		ext = ext.DetectRows()
	}
	if cfg.TemplatePage > 0 {
		ext = ext.TemplatePage(cfg.TemplatePage)
	}
	ext = ext.Encoding(cfg.OutputEncoding())
	if cfg.CRLF {
		ext = ext.CRLF()
	}

	return ext, nil
}

// runEditor opens the interactive grid editor on the document
func runEditor(path string) {
	fyneApp := app.New()
	win := ui.NewEditorWindow(fyneApp, "gridmark - "+filepath.Base(path))
	if err := win.LoadDocument(path); err != nil {
		log.Fatalf("Failed to load document: %v", err)
	}
	win.ShowAndRun()
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("gridmark\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
