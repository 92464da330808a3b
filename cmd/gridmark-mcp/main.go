package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/tsawler/gridmark/internal/config"
	"github.com/tsawler/gridmark/internal/mcpserver"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
)

// setupLogging keeps stdout clean for the MCP protocol
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if !cfg.IsDebug() {
		log.SetOutput(os.NewFile(0, os.DevNull))
	}
}

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		if errors.Is(err, config.ErrVersionRequested) {
			printVersion()
			return
		}
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	server, err := mcpserver.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The parent process controls our lifecycle in stdio mode; exit
	// cleanly when stdin closes.
	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("gridmark MCP server\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
