package formatting_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/JaimeStill/warden/pkg/formatting"
)

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]any
		wantErr error
	}{
		{
			name:    "bare object",
			content: `{"classification": "UNCLASSIFIED"}`,
			want:    map[string]any{"classification": "UNCLASSIFIED"},
		},
		{
			name:    "reasoning preamble",
			content: `Let me analyze this document. {"classification": "SECRET", "confidence": "HIGH"}`,
			want:    map[string]any{"classification": "SECRET", "confidence": "HIGH"},
		},
		{
			name:    "trailing commentary",
			content: `{"classification": "RESTRICTED"} I hope this helps!`,
			want:    map[string]any{"classification": "RESTRICTED"},
		},
		{
			name:    "preamble and trailing noise",
			content: "Based on my analysis:\n{\"classification\": \"CONFIDENTIAL\"}\nLet me know if you need more.",
			want:    map[string]any{"classification": "CONFIDENTIAL"},
		},
		{
			name:    "surrounding whitespace",
			content: "  \n\t{\"key\": \"value\"}\n  ",
			want:    map[string]any{"key": "value"},
		},
		{
			name:    "nested object",
			content: `{"classification": "SECRET", "detected": {"pii": true}}`,
			want:    map[string]any{"classification": "SECRET", "detected": map[string]any{"pii": true}},
		},
		{
			name:    "no braces",
			content: "I cannot classify this document.",
			wantErr: formatting.ErrNoJSONFound,
		},
		{
			name:    "empty content",
			content: "",
			wantErr: formatting.ErrNoJSONFound,
		},
		{
			name:    "only open brace",
			content: "the set { is unbounded",
			wantErr: formatting.ErrNoJSONFound,
		},
		{
			name:    "only close brace",
			content: "closing } without opening",
			wantErr: formatting.ErrNoJSONFound,
		},
		{
			name:    "close before open",
			content: "} then later {",
			wantErr: formatting.ErrNoJSONFound,
		},
		{
			name:    "trailing comma",
			content: `{"classification": "SECRET",}`,
			wantErr: formatting.ErrMalformedJSON,
		},
		{
			name:    "unterminated string",
			content: `{"classification": "SECRET}`,
			wantErr: formatting.ErrMalformedJSON,
		},
		{
			name:    "stray brace in trailing commentary extends candidate",
			content: `{"classification": "SECRET"} and here is an extra }`,
			wantErr: formatting.ErrMalformedJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ExtractObject(tt.content)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractObject(%q) error = %v, want %v", tt.content, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ExtractObject(%q) unexpected error: %v", tt.content, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractObject(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestExtractObjectStrayPreambleBraces(t *testing.T) {
	// A stray open brace in the preamble widens the candidate, which then
	// fails to parse; the heuristic spans first '{' to last '}'.
	content := `Thinking about {context}... {"classification": "UNCLASSIFIED"}`

	_, err := formatting.ExtractObject(content)
	if !errors.Is(err, formatting.ErrMalformedJSON) {
		t.Errorf("error = %v, want ErrMalformedJSON", err)
	}
}
