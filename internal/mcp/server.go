package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName and ServerVersion identify the fixture in the initialize
// handshake; clients under test assert against them.
const (
	ServerName    = "echo-server"
	ServerVersion = "1.0.0"

	// EndpointPath is where the streamable HTTP transport is mounted.
	EndpointPath = "/mcp/jsonrpc"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"echo": mcp.NewTool("echo",
			mcp.WithDescription("Echo back the provided message exactly as received."),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("Message to echo back unchanged"),
			),
		),
		"echo_with_prefix": mcp.NewTool("echo_with_prefix",
			mcp.WithDescription("Echo back the message with a configurable prefix."),
			mcp.WithString("message",
				mcp.Required(),
				mcp.Description("Message to echo back"),
			),
			mcp.WithString("prefix",
				mcp.Description("Prefix prepended to the message (default: \"Echo: \")"),
				mcp.DefaultString("Echo: "),
			),
		),
		"echo_json": mcp.NewTool("echo_json",
			mcp.WithDescription("Echo back JSON data exactly as received."),
			mcp.WithObject("data",
				mcp.Required(),
				mcp.Description("JSON object to echo back unchanged"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle(EndpointPath, httpServer)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: mux,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout until the
// client closes the stream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
