// Package model defines the invoice value types shared across the composer.
//
// An Invoice is a plain value: header display text, an ordered list of line
// items, a currency code, and optional notes/terms/logo. Totals are always
// derived from current state, never stored.
package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/money"
)

// LineItem is one billable row on an invoice.
//
// Quantity and Rate are unvalidated: fractional and negative values pass
// through (negative rows read as credits or discounts).
type LineItem struct {
	// ID is a stable identifier assigned at creation. Mutations address
	// items by ID, so reordering or removal never misattributes an edit.
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// NewLineItem returns a default-valued line item with a fresh ID.
func NewLineItem() LineItem {
	return LineItem{
		ID:       uuid.New(),
		Quantity: money.Zero,
		Rate:     money.Zero,
	}
}

// Amount is the derived row amount: quantity * rate, full precision.
func (li LineItem) Amount() decimal.Decimal {
	return money.Mul(li.Quantity, li.Rate)
}

// EmbeddedImage is an already-ingested logo, ready for embedding in a
// document. DataURI is the full data: URI; MIME is the detected media type.
type EmbeddedImage struct {
	MIME    string `json:"mime"`
	DataURI string `json:"dataUri"`
}

// Invoice is a single-currency invoice under composition.
// Header fields are opaque display text; no date parsing happens here.
type Invoice struct {
	FromName     string         `json:"fromName"`
	ToName       string         `json:"toName"`
	Number       string         `json:"invoiceNumber"`
	Date         string         `json:"date"`
	PaymentTerms string         `json:"paymentTerms"`
	DueDate      string         `json:"dueDate"`
	Currency     currency.Code  `json:"currency"`
	LineItems    []LineItem     `json:"lineItems"`
	Notes        string         `json:"notes,omitempty"`
	Terms        string         `json:"terms,omitempty"`
	Logo         *EmbeddedImage `json:"logo,omitempty"`
}

// Total is the grand total: the sum of all line-item amounts, recomputed
// from current state. Empty invoice totals to zero.
func (inv Invoice) Total() decimal.Decimal {
	amounts := make([]decimal.Decimal, len(inv.LineItems))
	for i, li := range inv.LineItems {
		amounts[i] = li.Amount()
	}
	return money.Sum(amounts)
}

// FindLineItem returns the index of the item with the given ID, or -1.
func (inv Invoice) FindLineItem(id uuid.UUID) int {
	for i, li := range inv.LineItems {
		if li.ID == id {
			return i
		}
	}
	return -1
}

// CloneLineItems returns a copy of the line-item slice. Mutation operations
// copy before writing so earlier snapshots stay intact.
func (inv Invoice) CloneLineItems() []LineItem {
	items := make([]LineItem, len(inv.LineItems))
	copy(items, inv.LineItems)
	return items
}
