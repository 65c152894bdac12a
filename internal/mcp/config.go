package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/mcp-echo-server/internal/config"
	"github.com/roivaz/mcp-echo-server/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"echo":             &tools.EchoHandler{},
			"echo_with_prefix": &tools.EchoWithPrefixHandler{},
			"echo_json": &tools.EchoJSONHandler{
				MaxBytes: config.MaxPayloadBytes(),
				MaxDepth: config.MaxPayloadDepth(),
			},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(EndpointPath),
			server.WithStateLess(true),
		},
	}
}
