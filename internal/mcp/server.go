package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
	"github.com/zkmedar/ctcaematch/internal/matcher"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes CTCAE matching and lookup tools.
type Server struct {
	matcher *matcher.Matcher
	repo    *ctcae.Repository
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(m *matcher.Matcher, repo *ctcae.Repository) *Server {
	s := &Server{
		matcher: m,
		repo:    repo,
	}

	s.mcp = server.NewMCPServer(
		"ctcaematch",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(matchSymptomTool, s.handleMatchSymptom)
	s.mcp.AddTool(lookupTermTool, s.handleLookupTerm)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
