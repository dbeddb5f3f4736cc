package composerkit

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-composer/internal/editor"
	"github.com/rezonia/invoice-composer/internal/export"
	"github.com/rezonia/invoice-composer/internal/ingest"
)

// Composer is a stateful convenience wrapper: an editing session over one
// invoice with undo/redo and a PDF export path. Not safe for concurrent
// use; it models a single editing surface.
type Composer struct {
	history  *editor.History
	exporter *export.Exporter
}

// NewComposer starts an editing session at the given invoice snapshot.
func NewComposer(initial Invoice) *Composer {
	return &Composer{
		history:  editor.NewHistory(initial),
		exporter: export.NewExporter(),
	}
}

// Invoice returns the current snapshot.
func (c *Composer) Invoice() Invoice {
	return c.history.Current()
}

// AddLineItem appends a default line item and returns its ID.
func (c *Composer) AddLineItem() uuid.UUID {
	next, li := editor.AddLineItem(c.history.Current())
	c.history.Push(next)
	return li.ID
}

// UpdateDescription sets the description of the addressed line item.
func (c *Composer) UpdateDescription(id uuid.UUID, description string) error {
	return c.apply(func(inv Invoice) (Invoice, error) {
		return editor.UpdateDescription(inv, id, description)
	})
}

// UpdateQuantity sets the quantity of the addressed line item.
func (c *Composer) UpdateQuantity(id uuid.UUID, quantity decimal.Decimal) error {
	return c.apply(func(inv Invoice) (Invoice, error) {
		return editor.UpdateQuantity(inv, id, quantity)
	})
}

// UpdateRate sets the rate of the addressed line item.
func (c *Composer) UpdateRate(id uuid.UUID, rate decimal.Decimal) error {
	return c.apply(func(inv Invoice) (Invoice, error) {
		return editor.UpdateRate(inv, id, rate)
	})
}

// RemoveLineItem removes the addressed line item.
func (c *Composer) RemoveLineItem(id uuid.UUID) error {
	return c.apply(func(inv Invoice) (Invoice, error) {
		return editor.RemoveLineItem(inv, id)
	})
}

// Total returns the current grand total.
func (c *Composer) Total() decimal.Decimal {
	return c.history.Current().Total()
}

// Undo reverts the last edit. Returns false at the start of history.
func (c *Composer) Undo() bool { return c.history.Undo() }

// Redo reapplies an undone edit. Returns false with nothing to redo.
func (c *Composer) Redo() bool { return c.history.Redo() }

// AttachLogo ingests a logo image and attaches it to the invoice.
func (c *Composer) AttachLogo(ctx context.Context, r io.Reader, name string) error {
	img, err := ingest.Ingest(ctx, r, name)
	if err != nil {
		return err
	}
	inv := c.history.Current()
	inv.Logo = img
	c.history.Push(inv)
	return nil
}

// ExportPDF renders the current snapshot into a validated PDF.
func (c *Composer) ExportPDF(ctx context.Context) ([]byte, error) {
	return c.exporter.Export(ctx, c.history.Current())
}

func (c *Composer) apply(f func(Invoice) (Invoice, error)) error {
	next, err := f(c.history.Current())
	if err != nil {
		return err
	}
	c.history.Push(next)
	return nil
}
