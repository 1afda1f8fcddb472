// Package classify implements the document classification domain for
// Warden. It validates incoming content, orchestrates a single-shot model
// inference over the security-analysis rubric, extracts the JSON object
// from the completion, and normalizes the outcome into either the parsed
// result or a deterministic fallback object.
package classify

// Request carries caller-provided document content for classification.
type Request struct {
	Content string `json:"content"`
}

// Result is the classification object parsed from the model's completion.
// On success it is returned verbatim (no schema validation beyond JSON
// well-formedness); supporting fields vary with the model's analysis.
type Result map[string]any

// Classification labels assigned by the model. The closed set comes from
// the rubric; StatusAnalysisFailed is the sentinel carried by the fallback
// object when no valid JSON could be recovered.
const (
	LabelTopSecret    = "TOP_SECRET"
	LabelSecret       = "SECRET"
	LabelConfidential = "CONFIDENTIAL"
	LabelRestricted   = "RESTRICTED"
	LabelUnclassified = "UNCLASSIFIED"

	StatusAnalysisFailed = "ANALYSIS_FAILED"
)

// PDFMetadata describes the upload and extraction outcome injected into
// successful PDF classification results.
type PDFMetadata struct {
	Filename             string `json:"filename"`
	FileSizeBytes        int    `json:"file_size_bytes"`
	ExtractedTextLength  int    `json:"extracted_text_length"`
	PageCount            int    `json:"page_count"`
	ExtractionSuccessful bool   `json:"extraction_successful"`
}
