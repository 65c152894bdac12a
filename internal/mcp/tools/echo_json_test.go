package tools

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

func TestEchoJSONRoundTrip(t *testing.T) {
	h := &EchoJSONHandler{}
	input := map[string]any{
		"a": float64(1),
		"b": []any{float64(2), float64(3)},
		"nested": map[string]any{
			"ok":   true,
			"null": nil,
		},
	}
	res, err := h.ToolAdapter(context.Background(), callReq("echo_json", map[string]any{"data": input}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", textOf(t, res))
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(textOf(t, res)), &got); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, input) {
		t.Fatalf("expected %v, got %v", input, got)
	}
}

func TestEchoJSONMissingData(t *testing.T) {
	h := &EchoJSONHandler{}
	res, err := h.ToolAdapter(context.Background(), callReq("echo_json", map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for missing data")
	}

	res, err = h.ToolAdapter(context.Background(), callReq("echo_json", map[string]any{"data": "not an object"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for non-object data")
	}
}

func TestEchoJSONSizeLimit(t *testing.T) {
	h := &EchoJSONHandler{MaxBytes: 64}
	big := map[string]any{"filler": string(make([]byte, 128))}
	res, err := h.ToolAdapter(context.Background(), callReq("echo_json", map[string]any{"data": big}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for oversized payload")
	}
}

func TestEchoJSONDepthLimit(t *testing.T) {
	h := &EchoJSONHandler{MaxDepth: 3}

	deep := map[string]any{"v": map[string]any{"v": map[string]any{"v": map[string]any{"v": float64(1)}}}}
	res, err := h.ToolAdapter(context.Background(), callReq("echo_json", map[string]any{"data": deep}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected tool error for deeply nested payload")
	}

	shallow := map[string]any{"v": map[string]any{"v": float64(1)}}
	res, err = h.ToolAdapter(context.Background(), callReq("echo_json", map[string]any{"data": shallow}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("payload within the depth limit was rejected: %s", textOf(t, res))
	}
}

func TestPayloadDepth(t *testing.T) {
	cases := []struct {
		value any
		depth int
	}{
		{value: "scalar", depth: 0},
		{value: map[string]any{"a": float64(1)}, depth: 1},
		{value: map[string]any{"a": []any{float64(1)}}, depth: 2},
		{value: []any{map[string]any{"a": map[string]any{"b": float64(1)}}}, depth: 3},
	}
	for _, tc := range cases {
		if got := payloadDepth(tc.value); got != tc.depth {
			t.Fatalf("payloadDepth(%v): expected %d, got %d", tc.value, tc.depth, got)
		}
	}
}
