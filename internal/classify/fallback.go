package classify

const (
	fallbackReasoning = "Classification failed. Could not parse a valid JSON " +
		"response from the model after processing. Check server logs for details."
	pdfFallbackReasoning = "PDF classification failed. Could not parse a valid JSON " +
		"response from the model after processing. Check server logs for details."

	noResponse = "No response generated."
)

// Fallback builds the deterministic failure object returned when no valid
// JSON could be recovered from the model. The shape is fixed: a sentinel
// classification, a human-readable reasoning string, and the raw
// completion for manual diagnosis. Partially-parsed structures are never
// returned.
func Fallback(reasoning, raw string) Result {
	if raw == "" {
		raw = noResponse
	}
	return Result{
		"classification": StatusAnalysisFailed,
		"reasoning":      reasoning,
		"raw_response":   raw,
	}
}
