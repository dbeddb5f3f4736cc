package document

import (
	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/model"
)

// Build maps an invoice onto a document definition. Pure and total: it
// never fails for a well-formed invoice, and optional sections (logo,
// notes, terms) are omitted entirely rather than emitted empty.
//
// Build only ever sees a ready embedded logo or none; ingestion happens
// upstream in the export pipeline.
func Build(inv model.Invoice) Definition {
	content := []Node{
		buildHeader(inv),
		buildLineItemsTable(inv),
		buildTotal(inv),
	}
	content = append(content, buildNotesAndTerms(inv)...)
	return Definition{Content: content}
}

// buildHeader assembles the two-column header block: sender and recipient
// on the left, invoice identity and schedule on the right.
func buildHeader(inv model.Invoice) Node {
	left := Stack{Items: append(buildLogo(inv),
		Text{Value: inv.FromName, Margin: Margin{0, 30, 0, 30}},
		Text{Value: "Bill To"},
		Text{Value: inv.ToName},
	)}

	right := Stack{
		Alignment: AlignRight,
		Items: []Node{
			Text{Value: "INVOICE", FontSize: 25},
			Text{Value: "# " + inv.Number, FontSize: 15, Margin: Margin{0, 0, 0, 30}},
			Columns{Columns: []Column{
				{
					Width: "63%",
					Content: Stack{
						Alignment: AlignRight,
						Items: []Node{
							Text{Value: "Date"},
							Text{Value: "Payment Terms"},
							Text{Value: "Due Date"},
						},
					},
				},
				{
					Content: Stack{
						Alignment: AlignRight,
						Items: []Node{
							Text{Value: inv.Date},
							Text{Value: inv.PaymentTerms},
							Text{Value: inv.DueDate},
						},
					},
				},
			}},
		},
	}

	return Columns{
		Columns: []Column{{Content: left}, {Content: right}},
		Gap:     10,
		Margin:  Margin{0, 0, 0, 30},
	}
}

// buildLogo returns the logo image node, or nothing when no logo is set.
func buildLogo(inv model.Invoice) []Node {
	if inv.Logo == nil {
		return nil
	}
	return []Node{Image{DataURI: inv.Logo.DataURI, MIME: inv.Logo.MIME}}
}

// buildLineItemsTable emits the line-item table: a header row plus one row
// per item in display order. The description column takes the remaining
// width after three narrow numeric columns.
func buildLineItemsTable(inv model.Invoice) Node {
	body := [][]Cell{{
		{Text: "Item"},
		{Text: "Quantity", Alignment: AlignRight},
		{Text: "Rate", Alignment: AlignRight},
		{Text: "Amount", Alignment: AlignRight},
	}}
	for _, li := range inv.LineItems {
		body = append(body, []Cell{
			{Text: li.Description},
			{Text: li.Quantity.String(), Alignment: AlignRight},
			{Text: currency.FormatPlain(li.Rate, inv.Currency), Alignment: AlignRight},
			{Text: currency.FormatPlain(li.Amount(), inv.Currency), Alignment: AlignRight},
		})
	}
	return Table{
		Widths:     []string{"*", "11%", "18%", "18%"},
		HeaderRows: 1,
		Body:       body,
		Layout:     LayoutLightHorizontalLines,
	}
}

// buildTotal emits the borderless grand-total row.
func buildTotal(inv model.Invoice) Node {
	return Table{
		Widths: []string{"*", "18%"},
		Body: [][]Cell{{
			{Text: "Total", Alignment: AlignRight},
			{Text: currency.FormatPlain(inv.Total(), inv.Currency), Alignment: AlignRight},
		}},
		Layout: LayoutNoBorders,
		Margin: Margin{0, 0, 0, 30},
	}
}

// buildNotesAndTerms emits the optional trailing sections, Notes before
// Terms. Empty sections contribute zero nodes.
func buildNotesAndTerms(inv model.Invoice) []Node {
	var result []Node
	if inv.Notes != "" {
		result = append(result,
			Text{Value: "Notes"},
			Text{Value: inv.Notes, Margin: Margin{0, 0, 0, 30}},
		)
	}
	if inv.Terms != "" {
		result = append(result,
			Text{Value: "Terms"},
			Text{Value: inv.Terms, Margin: Margin{0, 0, 0, 30}},
		)
	}
	return result
}
