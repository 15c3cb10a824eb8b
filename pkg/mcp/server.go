package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/radiowatch/radiowatch/pkg/device"
)

// Snapshotter provides the live device view. Satisfied by
// *device.Store.
type Snapshotter interface {
	Snapshot() []device.View
	Len() int
}

// Server exposes the device snapshot to MCP clients over stdio.
type Server struct {
	mcpServer *server.MCPServer
	store     Snapshotter
}

// NewServer creates a new MCP server over the given store.
func NewServer(store Snapshotter) *Server {
	s := &Server{
		store: store,
	}

	s.mcpServer = server.NewMCPServer(
		"radiowatch",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
