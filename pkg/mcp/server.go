package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/roomstatus/pkg/room"
)

// Registry is the part of the device registry the tools report on.
type Registry interface {
	Keys() []string
	Len() int
}

// Server exposes the configured rooms as MCP tools
type Server struct {
	mcpServer *server.MCPServer
	rooms     *room.Set
	registry  Registry
	basePath  string
}

// NewServer creates a new MCP server over rooms. basePath is only used to
// report each room's HTTP route.
func NewServer(rooms *room.Set, registry Registry, basePath string) *Server {
	s := &Server{
		rooms:    rooms,
		registry: registry,
		basePath: basePath,
	}

	s.mcpServer = server.NewMCPServer(
		"roomstatus",
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
