// Package mcpserver exposes grid extraction as Model Context Protocol
// tools served over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tsawler/gridmark"
	"github.com/tsawler/gridmark/internal/config"
	"github.com/tsawler/gridmark/source"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	pageInfoTool := mcp.NewTool(
		"grid_page_info",
		mcp.WithDescription("Report page count, page dimensions, and word counts for a rendered document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file"),
		),
	)
	s.mcpServer.AddTool(pageInfoTool, s.handlePageInfo)

	extractTool := mcp.NewTool(
		"grid_extract_csv",
		mcp.WithDescription("Extract a table grid from a rendered document as CSV"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the document file"),
		),
		mcp.WithString("pages",
			mcp.Description("Comma-separated 1-indexed page numbers (default all pages)"),
		),
		mcp.WithNumber("columns",
			mcp.Description("Column count to apply to each page"),
		),
		mcp.WithString("table",
			mcp.Description("Table placement as x,y,w,h in page units (default whole page)"),
		),
		mcp.WithNumber("index",
			mcp.Description("Index column for row detection, 0-based"),
		),
		mcp.WithBoolean("detect",
			mcp.Description("Detect rows from index-column word positions"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleExtractCSV)
}

// Handler functions
func (s *Server) handlePageInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inputs, err := source.Load(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Document: %s\n", path)
	responseText += fmt.Sprintf("Pages: %d\n\n", len(inputs))
	for i, input := range inputs {
		responseText += fmt.Sprintf("Page %d: %.1f x %.1f units, %d words\n",
			i+1, input.Width, input.Height, len(input.Words))
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractCSV(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ext := gridmark.Open(path)
	args := request.GetArguments()

	if raw, ok := args["pages"].(string); ok && raw != "" {
		pages, err := parsePages(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ext = ext.Pages(pages...)
	}
	if v, ok := args["columns"].(float64); ok && v > 0 {
		ext = ext.Columns(int(v))
	}
	if raw, ok := args["table"].(string); ok && raw != "" {
		r, err := config.ParseTableRect(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		ext = ext.Table(r.X, r.Y, r.Width, r.Height)
	}
	if v, ok := args["index"].(float64); ok && v >= 0 {
		ext = ext.IndexColumn(int(v))
	}
	if v, ok := args["detect"].(bool); ok && v {
		ext = ext.DetectRows()
	}

	csv, warnings, err := ext.CSV()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Extracted CSV from %s\n", path)
	if len(warnings) > 0 {
		responseText += "\nWarnings:\n"
		responseText += gridmark.FormatWarnings(warnings) + "\n"
	}
	responseText += "\nCSV:\n"
	responseText += csv

	return mcp.NewToolResultText(responseText), nil
}

// parsePages parses a comma-separated list of 1-indexed page numbers
func parsePages(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	pages := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("pages must be comma-separated page numbers, got %q", raw)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// Run serves the MCP protocol on stdin and stdout until the client
// disconnects.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting %s MCP server in stdio mode", s.config.ServerName)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
