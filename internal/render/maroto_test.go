package render_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-composer/internal/currency"
	"github.com/rezonia/invoice-composer/internal/document"
	"github.com/rezonia/invoice-composer/internal/model"
	"github.com/rezonia/invoice-composer/internal/money"
	"github.com/rezonia/invoice-composer/internal/render"
)

func sampleInvoice(t *testing.T) model.Invoice {
	t.Helper()
	li := model.NewLineItem()
	li.Description = "Widget"
	li.Quantity = money.MustFromString("2")
	li.Rate = money.MustFromString("9.5")
	return model.Invoice{
		FromName:     "Acme Corp",
		ToName:       "Globex Inc",
		Number:       "INV-001",
		Date:         "Jan 5, 2026",
		PaymentTerms: "Net 30",
		DueDate:      "Feb 4, 2026",
		Currency:     currency.USD,
		LineItems:    []model.LineItem{li},
		Notes:        "Thanks!",
		Terms:        "Payment due within 30 days",
	}
}

func TestMarotoRenderer_Render(t *testing.T) {
	def := document.Build(sampleInvoice(t))

	pdf, err := render.NewMarotoRenderer().Render(context.Background(), def)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	assert.NoError(t, render.ValidatePDF(pdf))
}

func TestMarotoRenderer_RenderWithLogo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	inv := sampleInvoice(t)
	inv.Logo = &model.EmbeddedImage{
		MIME:    "image/png",
		DataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}

	pdf, err := render.NewMarotoRenderer().Render(context.Background(), document.Build(inv))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestMarotoRenderer_MalformedDataURI(t *testing.T) {
	inv := sampleInvoice(t)
	inv.Logo = &model.EmbeddedImage{MIME: "image/png", DataURI: "not a data uri"}

	_, err := render.NewMarotoRenderer().Render(context.Background(), document.Build(inv))

	var renderErr *model.RenderError
	require.ErrorAs(t, err, &renderErr)
}

func TestMarotoRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.NewMarotoRenderer().Render(ctx, document.Build(sampleInvoice(t)))
	require.Error(t, err)
}

func TestValidatePDF_Garbage(t *testing.T) {
	err := render.ValidatePDF([]byte("definitely not a pdf"))

	var renderErr *model.RenderError
	require.ErrorAs(t, err, &renderErr)
}
