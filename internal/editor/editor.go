// Package editor implements the line-item mutation operations.
//
// Every operation is a pure function over an Invoice value: the input is
// never mutated and the result shares no line-item storage with it, so the
// editing surface can hold onto earlier snapshots (see History).
package editor

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-composer/internal/model"
)

// AddLineItem appends a default-valued line item and returns the new
// snapshot together with the created item (callers need its ID).
func AddLineItem(inv model.Invoice) (model.Invoice, model.LineItem) {
	li := model.NewLineItem()
	items := inv.CloneLineItems()
	inv.LineItems = append(items, li)
	return inv, li
}

// UpdateDescription replaces the description of the addressed line item,
// leaving every other item untouched.
func UpdateDescription(inv model.Invoice, id uuid.UUID, description string) (model.Invoice, error) {
	return updateLineItem(inv, id, func(li *model.LineItem) {
		li.Description = description
	})
}

// UpdateQuantity replaces the quantity of the addressed line item.
func UpdateQuantity(inv model.Invoice, id uuid.UUID, quantity decimal.Decimal) (model.Invoice, error) {
	return updateLineItem(inv, id, func(li *model.LineItem) {
		li.Quantity = quantity
	})
}

// UpdateRate replaces the rate of the addressed line item.
func UpdateRate(inv model.Invoice, id uuid.UUID, rate decimal.Decimal) (model.Invoice, error) {
	return updateLineItem(inv, id, func(li *model.LineItem) {
		li.Rate = rate
	})
}

// RemoveLineItem removes the addressed line item. Relative order of the
// remaining items is preserved.
func RemoveLineItem(inv model.Invoice, id uuid.UUID) (model.Invoice, error) {
	i := inv.FindLineItem(id)
	if i < 0 {
		return inv, model.NewLineItemNotFoundError(id)
	}
	items := make([]model.LineItem, 0, len(inv.LineItems)-1)
	items = append(items, inv.LineItems[:i]...)
	items = append(items, inv.LineItems[i+1:]...)
	inv.LineItems = items
	return inv, nil
}

func updateLineItem(inv model.Invoice, id uuid.UUID, apply func(*model.LineItem)) (model.Invoice, error) {
	i := inv.FindLineItem(id)
	if i < 0 {
		return inv, model.NewLineItemNotFoundError(id)
	}
	items := inv.CloneLineItems()
	apply(&items[i])
	inv.LineItems = items
	return inv, nil
}
