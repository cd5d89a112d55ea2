package ideagen

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnparsable indicates the model output could not be parsed as an idea
// array. The parser fails closed: no regex repair, the caller falls back.
var ErrUnparsable = errors.New("response is not a parsable idea array")

// parseIdeas parses the raw model output. Strict JSON first; the only
// recovery permitted is trimming markdown fences and slicing out the
// first top-level array, for models that wrap valid JSON in prose.
func parseIdeas(raw string) ([]GeneratedIdea, error) {
	var ideas []GeneratedIdea
	if err := json.Unmarshal([]byte(raw), &ideas); err == nil {
		return ideas, nil
	}

	candidate := stripFences(raw)
	if err := json.Unmarshal([]byte(candidate), &ideas); err == nil {
		return ideas, nil
	}

	start := strings.Index(candidate, "[")
	end := strings.LastIndex(candidate, "]")
	if start == -1 || end <= start {
		return nil, ErrUnparsable
	}

	if err := json.Unmarshal([]byte(candidate[start:end+1]), &ideas); err != nil {
		return nil, ErrUnparsable
	}

	return ideas, nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
