package probe

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/mcp-echo-server/internal/logging"
	"github.com/roivaz/mcp-echo-server/internal/mcp/tools"
)

// localCaller dispatches to the fixture's handlers in-process, bypassing
// the transport.
type localCaller struct{}

func (localCaller) CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	switch req.Params.Name {
	case "echo":
		return (&tools.EchoHandler{}).ToolAdapter(ctx, req)
	case "echo_with_prefix":
		return (&tools.EchoWithPrefixHandler{}).ToolAdapter(ctx, req)
	case "echo_json":
		return (&tools.EchoJSONHandler{}).ToolAdapter(ctx, req)
	default:
		return nil, fmt.Errorf("unknown tool %q", req.Params.Name)
	}
}

func TestRunDefaultScenarios(t *testing.T) {
	results, ok := Run(context.Background(), localCaller{}, DefaultScenarios(), logging.New(logr.Discard()))
	if !ok {
		for _, r := range results {
			if !r.Passed {
				t.Errorf("scenario %q failed: %s", r.Scenario, r.Detail)
			}
		}
		t.Fatalf("default scenarios must pass against the fixture handlers")
	}
	if len(results) != len(DefaultScenarios()) {
		t.Fatalf("expected %d results, got %d", len(DefaultScenarios()), len(results))
	}
}

func TestRunReportsTextMismatch(t *testing.T) {
	scenarios := []Scenario{{
		Name:      "wrong expectation",
		Tool:      "echo",
		Arguments: map[string]any{"message": "hello"},
		Expect:    Expectation{Text: strptr("goodbye")},
	}}
	results, ok := Run(context.Background(), localCaller{}, scenarios, logging.New(logr.Discard()))
	if ok {
		t.Fatalf("expected a failing run")
	}
	if results[0].Passed || results[0].Detail == "" {
		t.Fatalf("expected failure detail, got %+v", results[0])
	}
}

func TestRunReportsMissingJSONPath(t *testing.T) {
	scenarios := []Scenario{{
		Name:      "absent path",
		Tool:      "echo_json",
		Arguments: map[string]any{"data": map[string]any{"a": 1}},
		Expect:    Expectation{JSON: []JSONCheck{{Path: "missing", Value: "1"}}},
	}}
	_, ok := Run(context.Background(), localCaller{}, scenarios, logging.New(logr.Discard()))
	if ok {
		t.Fatalf("expected a failing run for an absent path")
	}
}

func TestRunExpectedError(t *testing.T) {
	scenarios := []Scenario{{
		Name:      "success where error expected",
		Tool:      "echo",
		Arguments: map[string]any{"message": "hello"},
		Expect:    Expectation{Error: true},
	}}
	_, ok := Run(context.Background(), localCaller{}, scenarios, logging.New(logr.Discard()))
	if ok {
		t.Fatalf("expected failure when a tool error was expected but not returned")
	}
}
