// Package export runs the full composition pipeline: optional logo
// ingestion, document building, rendering, and validation of the artifact.
//
// Assembly only starts once ingestion has fully succeeded; a failed
// ingestion aborts the export so a document never silently loses its logo.
package export

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rezonia/invoice-composer/internal/document"
	"github.com/rezonia/invoice-composer/internal/model"
	"github.com/rezonia/invoice-composer/internal/render"
)

// Exporter builds and renders invoices.
type Exporter struct {
	renderer render.Renderer
	log      zerolog.Logger
	validate bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRenderer swaps the rendering backend.
func WithRenderer(r render.Renderer) Option {
	return func(e *Exporter) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithLogger sets the exporter's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Exporter) { e.log = log }
}

// WithValidation toggles post-render PDF validation.
func WithValidation(enabled bool) Option {
	return func(e *Exporter) { e.validate = enabled }
}

// NewExporter creates an exporter with the given options. Defaults: maroto
// backend, validation on, no logging.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		renderer: render.NewMarotoRenderer(),
		log:      zerolog.Nop(),
		validate: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders the invoice into a validated PDF. The invoice must carry
// an already-ingested logo or none; Export never performs ingestion.
func (e *Exporter) Export(ctx context.Context, inv model.Invoice) ([]byte, error) {
	def := document.Build(inv)

	pdf, err := e.renderer.Render(ctx, def)
	if err != nil {
		e.log.Error().Err(err).Str("invoice", inv.Number).Msg("render failed")
		return nil, err
	}

	if e.validate {
		if err := render.ValidatePDF(pdf); err != nil {
			e.log.Error().Err(err).Str("invoice", inv.Number).Msg("validation failed")
			return nil, err
		}
	}

	e.log.Info().
		Str("invoice", inv.Number).
		Str("currency", string(inv.Currency)).
		Int("line_items", len(inv.LineItems)).
		Int("bytes", len(pdf)).
		Msg("invoice exported")
	return pdf, nil
}
