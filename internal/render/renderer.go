// Package render turns a document description into a viewable artifact.
//
// The Renderer interface is the boundary to the rendering engine; the
// composer core only ever hands it a document.Definition. MarotoRenderer is
// the concrete PDF backend.
package render

import (
	"bytes"
	"context"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/invoice-composer/internal/document"
	"github.com/rezonia/invoice-composer/internal/model"
)

// Renderer produces a rendered artifact from a document definition.
type Renderer interface {
	Render(ctx context.Context, def document.Definition) ([]byte, error)
}

// ValidatePDF checks that the rendered bytes are a structurally valid PDF.
// Run after rendering so a backend regression never ships a broken artifact.
func ValidatePDF(data []byte) error {
	if err := api.Validate(bytes.NewReader(data), nil); err != nil {
		return model.NewRenderError("validate", "generated PDF failed validation", err)
	}
	return nil
}
