package probe

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/roivaz/mcp-echo-server/internal/logging"
)

// Caller abstracts the mcp-go client so the runner can be exercised
// in-process.
type Caller interface {
	CallTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Result struct {
	Scenario string
	Passed   bool
	Detail   string
}

// Run executes each scenario against the caller and reports per-scenario
// results. The second return value is true when every scenario passed.
func Run(ctx context.Context, caller Caller, scenarios []Scenario, logger logging.Logger) ([]Result, bool) {
	results := make([]Result, 0, len(scenarios))
	allPassed := true

	for _, sc := range scenarios {
		res := runOne(ctx, caller, sc)
		if res.Passed {
			logger.Info("scenario passed", "scenario", res.Scenario)
		} else {
			logger.Info("scenario failed", "scenario", res.Scenario, "detail", res.Detail)
			allPassed = false
		}
		results = append(results, res)
	}

	return results, allPassed
}

func runOne(ctx context.Context, caller Caller, sc Scenario) Result {
	req := mcp.CallToolRequest{}
	req.Params.Name = sc.Tool
	req.Params.Arguments = sc.Arguments

	res, err := caller.CallTool(ctx, req)
	if err != nil {
		return Result{Scenario: sc.Name, Detail: fmt.Sprintf("call failed: %v", err)}
	}

	if sc.Expect.Error {
		if !res.IsError {
			return Result{Scenario: sc.Name, Detail: "expected a tool error, got success"}
		}
		return Result{Scenario: sc.Name, Passed: true}
	}
	if res.IsError {
		return Result{Scenario: sc.Name, Detail: fmt.Sprintf("unexpected tool error: %s", resultText(res))}
	}

	text := resultText(res)
	if sc.Expect.Text != nil && text != *sc.Expect.Text {
		return Result{Scenario: sc.Name, Detail: fmt.Sprintf("expected text %q, got %q", *sc.Expect.Text, text)}
	}
	for _, check := range sc.Expect.JSON {
		got := gjson.Get(text, check.Path)
		if !got.Exists() {
			return Result{Scenario: sc.Name, Detail: fmt.Sprintf("path %q not found in result", check.Path)}
		}
		if got.String() != check.Value {
			return Result{Scenario: sc.Name, Detail: fmt.Sprintf("path %q: expected %q, got %q", check.Path, check.Value, got.String())}
		}
	}

	return Result{Scenario: sc.Name, Passed: true}
}

func resultText(res *mcp.CallToolResult) string {
	for _, content := range res.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
