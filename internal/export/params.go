package export

import (
	"context"
	"fmt"
	"io"

	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/ingest"
	"github.com/rezonia/invoice-composer/internal/model"
)

// Params is the export entry point's input: the invoice fields as the
// editing surface holds them, plus an optional raw logo resource.
type Params struct {
	FromName     string
	ToName       string
	Number       string
	Date         string
	PaymentTerms string
	DueDate      string
	Currency     currency.Code
	LineItems    []model.LineItem
	Notes        string
	Terms        string

	// Logo is the raw image resource, not yet ingested. Nil means no logo.
	Logo     io.Reader
	LogoName string
}

// SaveInvoicePDF ingests the logo (if any), builds and renders the invoice,
// and writes the PDF to w. Ingestion failure aborts before any assembly.
func (e *Exporter) SaveInvoicePDF(ctx context.Context, p Params, w io.Writer) error {
	if !p.Currency.Valid() {
		return fmt.Errorf("unsupported currency code %q", p.Currency)
	}

	inv := model.Invoice{
		FromName:     p.FromName,
		ToName:       p.ToName,
		Number:       p.Number,
		Date:         p.Date,
		PaymentTerms: p.PaymentTerms,
		DueDate:      p.DueDate,
		Currency:     p.Currency,
		LineItems:    p.LineItems,
		Notes:        p.Notes,
		Terms:        p.Terms,
	}

	if p.Logo != nil {
		source := p.LogoName
		if source == "" {
			source = "logo"
		}
		res := <-ingest.IngestAsync(ctx, p.Logo, source)
		if res.Err != nil {
			return res.Err
		}
		inv.Logo = res.Image
	}

	pdf, err := e.Export(ctx, inv)
	if err != nil {
		return err
	}
	if _, err := w.Write(pdf); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
