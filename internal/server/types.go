package server

import (
	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/export"
	"github.com/rezonia/invoice-composer/internal/model"
	"github.com/rezonia/invoice-composer/internal/money"
)

// LineItemRequest is one line item in a render request.
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// InvoiceRequest is the JSON body of a render request.
type InvoiceRequest struct {
	FromName     string            `json:"fromName"`
	ToName       string            `json:"toName"`
	Number       string            `json:"invoiceNumber"`
	Date         string            `json:"date"`
	PaymentTerms string            `json:"paymentTerms"`
	DueDate      string            `json:"dueDate"`
	Currency     string            `json:"currency" binding:"required"`
	LineItems    []LineItemRequest `json:"lineItems"`
	Notes        string            `json:"notes"`
	Terms        string            `json:"terms"`
}

// toParams converts the request into export parameters.
func (r InvoiceRequest) toParams() export.Params {
	items := make([]model.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		item := model.NewLineItem()
		item.Description = li.Description
		item.Quantity = money.FromFloat(li.Quantity)
		item.Rate = money.FromFloat(li.Rate)
		items = append(items, item)
	}
	return export.Params{
		FromName:     r.FromName,
		ToName:       r.ToName,
		Number:       r.Number,
		Date:         r.Date,
		PaymentTerms: r.PaymentTerms,
		DueDate:      r.DueDate,
		Currency:     currency.Code(r.Currency),
		LineItems:    items,
		Notes:        r.Notes,
		Terms:        r.Terms,
	}
}

// CurrencyResponse describes one supported currency.
type CurrencyResponse struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
