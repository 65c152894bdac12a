package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultPrefix is prepended to the message when the caller omits the
// prefix argument.
const DefaultPrefix = "Echo: "

type EchoWithPrefixHandler struct{}

func (h *EchoWithPrefixHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	message, ok := args["message"].(string)
	if !ok {
		return mcp.NewToolResultError("message parameter is required and must be a string"), nil
	}
	prefix := DefaultPrefix
	if raw, present := args["prefix"]; present {
		v, ok := raw.(string)
		if !ok {
			return mcp.NewToolResultError("prefix parameter must be a string"), nil
		}
		prefix = v
	}
	return mcp.NewToolResultText(prefix + message), nil
}
