// Package composerkit provides a public API for composing invoices.
//
// This package exposes the core types for building an invoice value,
// editing its line items, and exporting it as a PDF document.
//
// Example usage:
//
//	c := composerkit.NewComposer(composerkit.Invoice{Currency: composerkit.USD})
//	id := c.AddLineItem()
//	_ = c.UpdateDescription(id, "Widget")
//	pdf, err := c.ExportPDF(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
package composerkit

import (
	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/document"
	"github.com/rezonia/invoice-composer/internal/model"
)

// Re-export core types for public API
type (
	Invoice       = model.Invoice
	LineItem      = model.LineItem
	EmbeddedImage = model.EmbeddedImage
	Currency      = currency.Code
	Definition    = document.Definition
)

// Re-export the supported currencies
const (
	USD = currency.USD
	EUR = currency.EUR
	GBP = currency.GBP
	JPY = currency.JPY
	AUD = currency.AUD
	CAD = currency.CAD
	CHF = currency.CHF
	CNY = currency.CNY
	INR = currency.INR
	VND = currency.VND
)

// Re-export error types
type (
	LineItemNotFoundError = model.LineItemNotFoundError
	IngestionError        = model.IngestionError
	RenderError           = model.RenderError
)

// SupportedCurrencies returns every supported currency code.
func SupportedCurrencies() []Currency {
	return currency.Supported()
}

// BuildDocument maps an invoice onto its renderer-agnostic document
// description without rendering it.
func BuildDocument(inv Invoice) Definition {
	return document.Build(inv)
}
