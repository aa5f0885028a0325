// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package ingest converts uploaded source documents into canonical form:
// markup-preserving HTML for the lesson plan, plain text for the
// digital-competence requirements appendix.
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hadayhoc-tech/nanglucso/pkg/types"
)

// docxExt is the structured-document extension routed through the converter.
const docxExt = ".docx"

// ErrConversionUnavailable indicates the external conversion capability has
// not been initialized (no container runtime or converter image). Fatal for
// the ingestion call; there is no retry.
var ErrConversionUnavailable = errors.New("document conversion capability is not available")

// ConversionError wraps a failure raised by the conversion capability,
// typically a malformed or unsupported binary. Recoverable by supplying a
// different file.
type ConversionError struct {
	Name string // original file name
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.Name, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Converter transforms a structured-document binary into one of the two
// canonical forms. The production implementation pipes the binary through a
// converter container image; tests supply a mock.
type Converter interface {
	// ConvertToHTML converts the binary to HTML, preserving structure.
	ConvertToHTML(path string) (string, error)

	// ExtractText extracts the raw text content of the binary.
	ExtractText(path string) (string, error)
}

// Ingestor converts raw binaries into SourceDocuments. A nil Converter means
// the conversion capability never initialized; every structured-document
// ingestion then fails with ErrConversionUnavailable.
type Ingestor struct {
	conv Converter
}

// New creates an Ingestor backed by the given converter. conv may be nil
// when no conversion capability could be initialized.
func New(conv Converter) *Ingestor {
	return &Ingestor{conv: conv}
}

// Ingest converts the file at path into a SourceDocument.
//
// PreserveMarkup routes the binary through the convert-to-HTML capability.
// PlainText routes structured documents (.docx) through raw-text extraction
// and reads any other file directly as text.
func (in *Ingestor) Ingest(path string, mode types.IngestMode) (types.SourceDocument, error) {
	name := filepath.Base(path)

	var content string
	var err error

	switch mode {
	case types.PreserveMarkup:
		if in.conv == nil {
			return types.SourceDocument{}, ErrConversionUnavailable
		}
		content, err = in.conv.ConvertToHTML(path)
	case types.PlainText:
		content, err = in.plainText(path)
	default:
		return types.SourceDocument{}, fmt.Errorf("unknown ingest mode %q", mode)
	}
	if err != nil {
		if errors.Is(err, ErrConversionUnavailable) {
			return types.SourceDocument{}, err
		}
		return types.SourceDocument{}, &ConversionError{Name: name, Err: err}
	}

	return types.SourceDocument{
		Name:    name,
		Content: content,
		Path:    path,
	}, nil
}

// plainText extracts text from a structured document via the converter, or
// reads a plain file directly.
func (in *Ingestor) plainText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), docxExt) {
		if in.conv == nil {
			return "", ErrConversionUnavailable
		}
		return in.conv.ExtractText(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}
