// Copyright Hadayhoc Technology, 2026. All rights reserved.

package types

// IngestMode selects the canonical form a source document is converted into.
type IngestMode string

const (
	// PreserveMarkup converts the binary into HTML, keeping structural
	// formatting (headings, tables, inline styles).
	PreserveMarkup IngestMode = "markup"

	// PlainText extracts the raw text content, discarding formatting.
	PlainText IngestMode = "text"
)

// SourceDocument is one uploaded file after conversion. Content is either
// HTML (lesson plan) or plain text (requirements appendix), depending on the
// ingest mode. Immutable once created.
type SourceDocument struct {
	// Name is the original file name, used to derive the export name.
	Name string `json:"name" yaml:"name"`

	// Content is the converted payload: HTML or plain text.
	Content string `json:"content" yaml:"content"`

	// Path is the local filesystem path of the original binary.
	Path string `json:"path" yaml:"path"`
}

// ModelCandidate is one entry in the static model catalog eligible for an
// invocation attempt. Exactly one catalog entry has Default set; it is the
// starting candidate when no user selection exists.
type ModelCandidate struct {
	// ID is the model identifier sent to the generation API.
	ID string `json:"id" yaml:"id"`

	// DisplayName is the human-readable model name.
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Description summarizes the candidate's strengths.
	Description string `json:"description" yaml:"description"`

	// Default marks the catalog's default starting candidate.
	Default bool `json:"default" yaml:"default"`
}

// InvocationAttempt records one failed model attempt within an orchestration
// run. Attempts exist only for failure reporting; a successful attempt is
// never recorded.
type InvocationAttempt struct {
	// ModelID is the candidate that was attempted.
	ModelID string `json:"model_id" yaml:"model_id"`

	// Message is the failure reason for this candidate.
	Message string `json:"message" yaml:"message"`
}

// IntegrationResult is the terminal artifact of a successful orchestration
// run: the merged lesson-plan HTML plus provenance.
type IntegrationResult struct {
	// HTML is the sanitized merged lesson plan.
	HTML string `json:"html" yaml:"html"`

	// UsedModel is the first candidate, in trial order, that succeeded.
	UsedModel string `json:"used_model" yaml:"used_model"`
}
