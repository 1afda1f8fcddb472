// Package prompts owns the prompt assets for Warden: the fixed system
// messages, the security-analysis rubric template, and the construction of
// the role-tagged envelopes sent to the model. Envelopes are built fresh
// per request; construction never fails for any content string.
package prompts

import (
	"strings"

	"github.com/JaimeStill/warden/pkg/llm"
)

// Classification builds the three-turn envelope for a classification
// request: the fixed system instruction, the rubric template with the
// document content appended verbatim (no escaping), and an assistant turn
// opened with the thinking token so the model produces a reasoning trace
// before its final JSON answer.
func Classification(template, content string) llm.Envelope {
	return mustValid(llm.Envelope{
		{Role: llm.RoleSystem, Text: classificationSystem},
		{Role: llm.RoleUser, Text: template + "\n" + content},
		{Role: llm.RoleAssistant, Text: llm.TokenThinking},
	})
}

// Generation builds the two-turn envelope for a writing-assistance
// request. Context is appended to the user turn only when non-empty.
func Generation(prompt, context string) llm.Envelope {
	var sb strings.Builder
	sb.WriteString("Write about: ")
	sb.WriteString(prompt)

	if context != "" {
		sb.WriteString("\n\nContext: ")
		sb.WriteString(context)
	}

	sb.WriteString("\n\nPlease provide a well-written response that addresses the request:")

	return mustValid(llm.Envelope{
		{Role: llm.RoleSystem, Text: generationSystem},
		{Role: llm.RoleUser, Text: sb.String()},
	})
}

// mustValid guards the turn structure of every envelope this package
// builds. Turn roles are fixed at compile time and content strings cannot
// alter them, so a violation is a programmer error and panics, matching
// module.New's construction check.
func mustValid(e llm.Envelope) llm.Envelope {
	if err := e.Validate(); err != nil {
		panic(err)
	}
	return e
}
