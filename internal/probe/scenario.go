package probe

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Scenario is one tool invocation against the fixture together with the
// result the caller expects back.
type Scenario struct {
	Name      string         `json:"name"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Expect    Expectation    `json:"expect"`
}

// Expectation describes how to judge a tool result. Exactly one of Text,
// JSON, or Error should be set; Text compares the full text content, JSON
// runs path checks against a structured result, Error expects an in-band
// tool failure.
type Expectation struct {
	Text  *string     `json:"text,omitempty"`
	JSON  []JSONCheck `json:"json,omitempty"`
	Error bool        `json:"error,omitempty"`
}

// JSONCheck asserts that the value at a gjson path stringifies to Value.
type JSONCheck struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Load reads scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	for i, sc := range scenarios {
		if sc.Tool == "" {
			return nil, fmt.Errorf("scenario %d (%q) has no tool name", i, sc.Name)
		}
	}
	return scenarios, nil
}

func strptr(s string) *string { return &s }

// DefaultScenarios covers the fixture's documented behavior: the identity
// law, the default and explicit prefix, structural JSON echo, and the
// empty-string boundary.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:      "echo returns its input",
			Tool:      "echo",
			Arguments: map[string]any{"message": "hello"},
			Expect:    Expectation{Text: strptr("hello")},
		},
		{
			Name:      "echo round-trips the empty string",
			Tool:      "echo",
			Arguments: map[string]any{"message": ""},
			Expect:    Expectation{Text: strptr("")},
		},
		{
			Name:      "echo_with_prefix applies the default prefix",
			Tool:      "echo_with_prefix",
			Arguments: map[string]any{"message": "hello"},
			Expect:    Expectation{Text: strptr("Echo: hello")},
		},
		{
			Name:      "echo_with_prefix honors an explicit prefix",
			Tool:      "echo_with_prefix",
			Arguments: map[string]any{"message": "hello", "prefix": ">> "},
			Expect:    Expectation{Text: strptr(">> hello")},
		},
		{
			Name: "echo_json round-trips a nested object",
			Tool: "echo_json",
			Arguments: map[string]any{
				"data": map[string]any{"a": 1, "b": []any{2, 3}},
			},
			Expect: Expectation{JSON: []JSONCheck{
				{Path: "a", Value: "1"},
				{Path: "b.1", Value: "3"},
			}},
		},
		{
			Name:      "echo rejects a missing message",
			Tool:      "echo",
			Arguments: map[string]any{},
			Expect:    Expectation{Error: true},
		},
	}
}
