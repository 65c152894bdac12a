package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type EchoHandler struct{}

func (h *EchoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, ok := req.GetArguments()["message"].(string)
	if !ok {
		return mcp.NewToolResultError("message parameter is required and must be a string"), nil
	}
	// The empty string is a valid message and must round-trip unchanged.
	return mcp.NewToolResultText(message), nil
}
