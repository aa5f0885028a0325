// Copyright Hadayhoc Technology, 2026. All rights reserved.

package ingest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hadayhoc-tech/nanglucso/internal/container"
)

// DefaultImage is the converter container image used when the configuration
// does not name one.
const DefaultImage = "mammoth:latest"

// Converter image output-format flags.
const (
	formatHTML = "--output-format=html"
	formatText = "--output-format=raw-text"
)

// MammothConverter converts .docx binaries by piping them through the
// mammoth container image. It depends on a container.Runtime (docker or
// podman) injected at construction time.
type MammothConverter struct {
	runtime container.Runtime
	image   string
}

// NewMammothConverter creates a converter that uses the given container
// runtime to run the converter image. It verifies that the image exists
// locally before returning.
func NewMammothConverter(rt container.Runtime, image string) (*MammothConverter, error) {
	if image == "" {
		image = DefaultImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("converter image not available in %s: %w", rt.Name(), err)
	}
	return &MammothConverter{runtime: rt, image: image}, nil
}

// ConvertToHTML pipes the .docx at path through the converter image and
// returns the resulting HTML.
func (m *MammothConverter) ConvertToHTML(path string) (string, error) {
	return m.convert(path, formatHTML)
}

// ExtractText pipes the .docx at path through the converter image and
// returns the raw text content.
func (m *MammothConverter) ExtractText(path string) (string, error) {
	return m.convert(path, formatText)
}

func (m *MammothConverter) convert(path, format string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening document %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Run(m.image, []string{format}, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with %s: %w", path, m.image, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("converter produced empty output for %s", path)
	}

	return out.String(), nil
}
