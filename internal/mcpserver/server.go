package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"movetest/internal/backend"
)

// Server wraps the runner's operation set as a stdio MCP server.
type Server struct {
	mcpServer *server.MCPServer
	primaryVM backend.PrimaryVM
}

// New builds a Server. primaryVM is the injected bytecode interpreter
// (§6); pass backend.UnconfiguredVM{} when none is linked into the binary
// yet, so the tool is reachable but reports a clear per-test error instead
// of refusing to start.
func New(primaryVM backend.PrimaryVM) *Server {
	mcpServer := server.NewMCPServer(
		"movetest",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s := &Server{mcpServer: mcpServer, primaryVM: primaryVM}
	s.registerTools()
	return s
}

// Start serves the MCP protocol over stdio until the connection closes.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer)
}
