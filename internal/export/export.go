// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package export wraps merged lesson-plan HTML in a Word-compatible document
// shell and writes it out, so the destination word processor opens it with
// table borders and inline color markup intact.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Suffix is appended to every exported file name. Saving HTML content as
// .doc rather than .docx keeps Word from rejecting the envelope.
const Suffix = "_NLS.doc"

// header opens the Word-compatible envelope: charset, the office/word
// namespace declarations Word keys on, and a small default stylesheet for
// body font and collapsed table borders.
const header = `<html xmlns:o='urn:schemas-microsoft-com:office:office'
      xmlns:w='urn:schemas-microsoft-com:office:word'
      xmlns='http://www.w3.org/TR/REC-html40'>
<head>
  <meta charset='utf-8'>
  <title>Giao an tich hop nang luc so</title>
  <style>
    body { font-family: 'Times New Roman', serif; font-size: 12pt; }
    table { border-collapse: collapse; width: 100%; }
    td, th { border: 1px solid black; padding: 5px; }
  </style>
</head>
<body>
`

const footer = "\n</body></html>\n"

// WordCompatible wraps the HTML payload in the document envelope. The input
// is not mutated.
func WordCompatible(html string) []byte {
	var b strings.Builder
	b.Grow(len(header) + len(html) + len(footer))
	b.WriteString(header)
	b.WriteString(html)
	b.WriteString(footer)
	return []byte(b.String())
}

// FileName derives the export file name from a suggested name: any existing
// structured-document extension is stripped and the fixed suffix appended,
// never doubled.
func FileName(suggested string) string {
	base := suggested
	switch strings.ToLower(filepath.Ext(base)) {
	case ".docx", ".doc":
		base = base[:len(base)-len(filepath.Ext(base))]
	}
	base = strings.TrimSuffix(base, "_NLS")
	if base == "" {
		base = "giao-an"
	}
	return base + Suffix
}

// Save writes the Word-compatible payload for html into dir under the name
// derived from suggestedName, returning the written path.
func Save(html, suggestedName, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(suggestedName))
	if err := os.WriteFile(path, WordCompatible(html), 0o644); err != nil {
		return "", fmt.Errorf("writing export %s: %w", path, err)
	}
	return path, nil
}
