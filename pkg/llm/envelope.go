package llm

import (
	"fmt"
	"strings"
)

// ChatML control tokens. The runtime's chat template delimits turns with
// start/end markers; the thinking token seeds the assistant turn so the
// model produces a reasoning trace before its final answer.
const (
	TokenStart    = "<|im_start|>"
	TokenEnd      = "<|im_end|>"
	TokenThinking = "<|thinking|>"
)

// Role identifies the speaker of a conversation turn.
type Role string

// Valid envelope roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single role-tagged entry in an envelope.
type Turn struct {
	Role Role
	Text string
}

// Envelope is an ordered sequence of conversation turns. Envelopes are
// built fresh per request and never reused.
type Envelope []Turn

// Validate checks the structural invariants of an envelope: exactly one
// system turn, exactly one user turn, and at most one assistant turn,
// which must be last when present.
func (e Envelope) Validate() error {
	var system, user, assistant int
	for i, t := range e {
		switch t.Role {
		case RoleSystem:
			system++
		case RoleUser:
			user++
		case RoleAssistant:
			assistant++
			if i != len(e)-1 {
				return fmt.Errorf("assistant turn must be last, found at position %d", i)
			}
		default:
			return fmt.Errorf("unknown role %q at position %d", t.Role, i)
		}
	}
	if system != 1 {
		return fmt.Errorf("envelope requires exactly one system turn, found %d", system)
	}
	if user != 1 {
		return fmt.Errorf("envelope requires exactly one user turn, found %d", user)
	}
	if assistant > 1 {
		return fmt.Errorf("envelope allows at most one assistant turn, found %d", assistant)
	}
	return nil
}

// Render serializes the envelope into the single linear ChatML form the
// model expects. Completed turns are closed with the end token; the final
// assistant turn is left open so the model continues it. When no assistant
// turn is present, an empty open assistant turn is appended.
func (e Envelope) Render() string {
	var sb strings.Builder
	open := false

	for i, t := range e {
		sb.WriteString(TokenStart)
		sb.WriteString(string(t.Role))
		sb.WriteString("\n")
		sb.WriteString(t.Text)

		if t.Role == RoleAssistant && i == len(e)-1 {
			open = true
			break
		}

		sb.WriteString(TokenEnd)
		sb.WriteString("\n")
	}

	if !open {
		sb.WriteString(TokenStart)
		sb.WriteString(string(RoleAssistant))
		sb.WriteString("\n")
	}

	return sb.String()
}
