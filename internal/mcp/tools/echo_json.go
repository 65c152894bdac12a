package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// EchoJSONHandler returns its data argument untouched. The wire format puts
// no bound on payload size or nesting, so the handler enforces its own
// limits; zero values disable the corresponding check.
type EchoJSONHandler struct {
	MaxBytes int
	MaxDepth int
}

func (h *EchoJSONHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, ok := req.GetArguments()["data"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("data parameter is required and must be an object"), nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	if h.MaxBytes > 0 && len(payload) > h.MaxBytes {
		return mcp.NewToolResultError(fmt.Sprintf("data exceeds maximum payload size of %d bytes", h.MaxBytes)), nil
	}
	if h.MaxDepth > 0 {
		if depth := payloadDepth(data); depth > h.MaxDepth {
			return mcp.NewToolResultError(fmt.Sprintf("data exceeds maximum nesting depth of %d", h.MaxDepth)), nil
		}
	}
	return mcp.NewToolResultJSON(data)
}
