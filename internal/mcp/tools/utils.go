package tools

// payloadDepth reports how many levels of maps and slices the value nests.
// Scalars count as zero, so {"a": 1} has depth 1.
func payloadDepth(v any) int {
	deepest := 0
	switch val := v.(type) {
	case map[string]any:
		for _, child := range val {
			if d := payloadDepth(child); d > deepest {
				deepest = d
			}
		}
	case []any:
		for _, child := range val {
			if d := payloadDepth(child); d > deepest {
				deepest = d
			}
		}
	default:
		return 0
	}
	return deepest + 1
}
