package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for completion parsing.
var (
	ErrNoJSONFound   = errors.New("no JSON object found in response")
	ErrMalformedJSON = errors.New("malformed JSON in response")
)

// ExtractObject isolates and parses the JSON object embedded in a model
// completion. Completions may carry a reasoning preamble before the object
// and commentary after it, so the candidate spans the first '{' through the
// last '}' of the trimmed content. The heuristic tolerates stray braces in
// the preamble but not unbalanced braces in trailing commentary, which
// extend the candidate and surface as ErrMalformedJSON.
//
// On ErrMalformedJSON the candidate string is carried in the error for
// diagnostics; extraction is single-shot and never retried.
func ExtractObject(content string) (map[string]any, error) {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoJSONFound
	}

	candidate := content[start : end+1]

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, candidate)
	}

	return obj, nil
}
