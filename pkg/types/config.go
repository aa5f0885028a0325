// Copyright Hadayhoc Technology, 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "nanglucso/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GenerationConfig holds settings for the model invocation stage.
type GenerationConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the authentication key for the generation API, forwarded
	// verbatim. Usually loaded from .secrets/gemini-api-key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the preferred model identifier. Empty means the catalog
	// default; an id not in the catalog is ignored.
	Model string `json:"model" yaml:"model"`

	// AttemptTimeout bounds a single candidate's request. Expiry counts as
	// that candidate's failure and the fallback chain continues (default 2m).
	AttemptTimeout time.Duration `json:"attempt_timeout" yaml:"attempt_timeout"`
}

// IngestConfig holds settings for the document ingestion stage.
type IngestConfig struct {
	// Image is the converter container image the .docx binary is piped
	// through (default "mammoth:latest").
	Image string `json:"image" yaml:"image"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutputDir is the directory exported documents are written to
	// (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// SettingsConfig holds settings for the preference store.
type SettingsConfig struct {
	// Path is the SQLite database file holding user preferences
	// (default "nanglucso.db").
	Path string `json:"path" yaml:"path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Ingest     IngestConfig     `json:"ingest" yaml:"ingest"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Export     ExportConfig     `json:"export" yaml:"export"`
	Settings   SettingsConfig   `json:"settings" yaml:"settings"`
}
