package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/document"
	"github.com/rezonia/invoice-composer/internal/model"
	"github.com/rezonia/invoice-composer/internal/money"
)

func sampleInvoice() model.Invoice {
	widget := model.NewLineItem()
	widget.Description = "Widget"
	widget.Quantity = money.MustFromString("2")
	widget.Rate = money.MustFromString("9.5")

	gadget := model.NewLineItem()
	gadget.Description = "Gadget"
	gadget.Quantity = money.MustFromString("1")
	gadget.Rate = money.MustFromString("20")

	return model.Invoice{
		FromName:     "Acme Corp",
		ToName:       "Globex Inc",
		Number:       "INV-001",
		Date:         "Jan 5, 2026",
		PaymentTerms: "Net 30",
		DueDate:      "Feb 4, 2026",
		Currency:     currency.USD,
		LineItems:    []model.LineItem{widget, gadget},
	}
}

// collectTexts walks a node tree and gathers every text value in order.
func collectTexts(nodes []document.Node) []string {
	var out []string
	for _, n := range nodes {
		switch v := n.(type) {
		case document.Text:
			out = append(out, v.Value)
		case document.Stack:
			out = append(out, collectTexts(v.Items)...)
		case document.Columns:
			for _, c := range v.Columns {
				out = append(out, collectTexts([]document.Node{c.Content})...)
			}
		case document.Table:
			for _, row := range v.Body {
				for _, cell := range row {
					out = append(out, cell.Text)
				}
			}
		}
	}
	return out
}

// collectImages walks a node tree and gathers every image node.
func collectImages(nodes []document.Node) []document.Image {
	var out []document.Image
	for _, n := range nodes {
		switch v := n.(type) {
		case document.Image:
			out = append(out, v)
		case document.Stack:
			out = append(out, collectImages(v.Items)...)
		case document.Columns:
			for _, c := range v.Columns {
				out = append(out, collectImages([]document.Node{c.Content})...)
			}
		}
	}
	return out
}

func findTables(def document.Definition) []document.Table {
	var out []document.Table
	for _, n := range def.Content {
		if t, ok := n.(document.Table); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestBuild_ContentOrder(t *testing.T) {
	def := document.Build(sampleInvoice())

	// Header, table, total; no notes/terms/logo blocks.
	require.Len(t, def.Content, 3)
	_, ok := def.Content[0].(document.Columns)
	assert.True(t, ok, "first block is the header columns")
	_, ok = def.Content[1].(document.Table)
	assert.True(t, ok, "second block is the line-item table")
	_, ok = def.Content[2].(document.Table)
	assert.True(t, ok, "third block is the total table")
	assert.Empty(t, collectImages(def.Content))
}

func TestBuild_Header(t *testing.T) {
	def := document.Build(sampleInvoice())

	header, ok := def.Content[0].(document.Columns)
	require.True(t, ok)
	require.Len(t, header.Columns, 2)
	assert.Equal(t, 10.0, header.Gap)
	assert.Equal(t, 30.0, header.Margin.Bottom())

	leftTexts := collectTexts([]document.Node{header.Columns[0].Content})
	assert.Equal(t, []string{"Acme Corp", "Bill To", "Globex Inc"}, leftTexts)

	right, ok := header.Columns[1].Content.(document.Stack)
	require.True(t, ok)
	assert.Equal(t, document.AlignRight, right.Alignment)

	rightTexts := collectTexts(right.Items)
	assert.Equal(t, []string{
		"INVOICE", "# INV-001",
		"Date", "Payment Terms", "Due Date",
		"Jan 5, 2026", "Net 30", "Feb 4, 2026",
	}, rightTexts)

	title, ok := right.Items[0].(document.Text)
	require.True(t, ok)
	assert.Equal(t, 25.0, title.FontSize)

	sub, ok := right.Items[2].(document.Columns)
	require.True(t, ok)
	assert.Equal(t, "63%", sub.Columns[0].Width)
}

func TestBuild_LineItemsTable(t *testing.T) {
	def := document.Build(sampleInvoice())

	table := findTables(def)[0]
	assert.Equal(t, []string{"*", "11%", "18%", "18%"}, table.Widths)
	assert.Equal(t, 1, table.HeaderRows)
	assert.Equal(t, document.LayoutLightHorizontalLines, table.Layout)
	require.Len(t, table.Body, 3, "header plus two data rows")

	head := table.Body[0]
	assert.Equal(t, "Item", head[0].Text)
	assert.Equal(t, "Quantity", head[1].Text)
	assert.Equal(t, "Rate", head[2].Text)
	assert.Equal(t, "Amount", head[3].Text)
	for _, cell := range head[1:] {
		assert.Equal(t, document.AlignRight, cell.Alignment)
	}

	widget := table.Body[1]
	assert.Equal(t, "Widget", widget[0].Text)
	assert.Equal(t, "2", widget[1].Text)
	assert.Equal(t, "$9.50", widget[2].Text)
	assert.Equal(t, "$19.00", widget[3].Text)

	gadget := table.Body[2]
	assert.Equal(t, "Gadget", gadget[0].Text)
	assert.Equal(t, "1", gadget[1].Text)
	assert.Equal(t, "$20.00", gadget[2].Text)
	assert.Equal(t, "$20.00", gadget[3].Text)
}

func TestBuild_Total(t *testing.T) {
	def := document.Build(sampleInvoice())

	total := findTables(def)[1]
	assert.Equal(t, []string{"*", "18%"}, total.Widths)
	assert.Equal(t, document.LayoutNoBorders, total.Layout)
	assert.Equal(t, 30.0, total.Margin.Bottom())
	require.Len(t, total.Body, 1)
	assert.Equal(t, "Total", total.Body[0][0].Text)
	assert.Equal(t, "$39.00", total.Body[0][1].Text)
	assert.Equal(t, document.AlignRight, total.Body[0][0].Alignment)
	assert.Equal(t, document.AlignRight, total.Body[0][1].Alignment)
}

func TestBuild_EmptyInvoice(t *testing.T) {
	inv := model.Invoice{Currency: currency.USD}
	def := document.Build(inv)

	tables := findTables(def)
	assert.Len(t, tables[0].Body, 1, "header row only")
	assert.Equal(t, "$0.00", tables[1].Body[0][1].Text)
}

func TestBuild_NotesAndTermsCombinations(t *testing.T) {
	tests := []struct {
		name   string
		notes  string
		terms  string
		labels []string
	}{
		{"neither", "", "", nil},
		{"notes only", "Thanks!", "", []string{"Notes"}},
		{"terms only", "", "Net 30 strictly", []string{"Terms"}},
		{"both", "Thanks!", "Net 30 strictly", []string{"Notes", "Terms"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := sampleInvoice()
			inv.Notes = tt.notes
			inv.Terms = tt.terms

			def := document.Build(inv)
			trailing := def.Content[3:]
			require.Len(t, trailing, 2*len(tt.labels))

			var labels []string
			for i := 0; i < len(trailing); i += 2 {
				label, ok := trailing[i].(document.Text)
				require.True(t, ok)
				labels = append(labels, label.Value)
				body, ok := trailing[i+1].(document.Text)
				require.True(t, ok)
				assert.NotEmpty(t, body.Value)
				assert.Equal(t, 30.0, body.Margin.Bottom())
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestBuild_LogoBlock(t *testing.T) {
	inv := sampleInvoice()
	inv.Logo = &model.EmbeddedImage{
		MIME:    "image/png",
		DataURI: "data:image/png;base64,aGVsbG8=",
	}

	def := document.Build(inv)

	images := collectImages(def.Content)
	require.Len(t, images, 1)
	assert.Equal(t, "image/png", images[0].MIME)
	assert.Equal(t, inv.Logo.DataURI, images[0].DataURI)

	// The logo stacks ahead of the sender name in the left column.
	header := def.Content[0].(document.Columns)
	left := header.Columns[0].Content.(document.Stack)
	_, ok := left.Items[0].(document.Image)
	assert.True(t, ok)
}

func TestBuild_AllMonetaryTextDecoded(t *testing.T) {
	for _, code := range currency.Supported() {
		inv := sampleInvoice()
		inv.Currency = code

		def := document.Build(inv)
		for _, text := range collectTexts(def.Content) {
			assert.False(t, strings.Contains(text, "&#"),
				"currency %s: entity residue in %q", code, text)
		}
	}
}

func TestBuild_InputUntouched(t *testing.T) {
	inv := sampleInvoice()
	before := inv.CloneLineItems()

	_ = document.Build(inv)

	assert.Equal(t, before, inv.LineItems)
}
