package mcp

import (
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/sift/internal/config"
	"github.com/hpungsan/sift/internal/store"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"string_create": {
		def:     createToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCreate },
	},
	"string_fetch": {
		def:     fetchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFetch },
	},
	"string_delete": {
		def:     deleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete },
	},
	"string_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"string_query": {
		def:     queryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleQuery },
	},
}

// AllToolNames returns every valid tool name, sorted.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with Sift tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(st store.Store, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"sift",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(st, cfg)
	for _, name := range enabledTools(cfg.DisabledTools) {
		entry := toolRegistry[name]
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// enabledTools returns the sorted registry names not listed in disabled.
func enabledTools(disabled []string) []string {
	skip := make(map[string]bool, len(disabled))
	for _, name := range disabled {
		skip[name] = true
	}

	names := make([]string, 0, len(toolRegistry))
	for _, name := range AllToolNames() {
		if !skip[name] {
			names = append(names, name)
		}
	}
	return names
}

// Run starts the MCP server using stdio transport.
func Run(st store.Store, cfg *config.Config, version string) error {
	return server.ServeStdio(NewServer(st, cfg, version))
}
