// Package generate implements the writing-assistance domain for Warden.
// Unlike classification, the endpoint commits to a 200 response once a
// model instance is acquired: any failure during generation is converted
// into a canned fallback body with success set to false rather than a
// transport error.
package generate

// Request carries the writing prompt and optional supporting context.
// These are the only request-controllable inputs to generation; decoding
// parameters are fixed.
type Request struct {
	Prompt  string `json:"prompt"`
	Context string `json:"context"`
}

// Response is the fixed response shape for the generation endpoint.
// Error is populated only when Success is false.
type Response struct {
	GeneratedText string `json:"generatedText"`
	Prompt        string `json:"prompt"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}
