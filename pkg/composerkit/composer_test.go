package composerkit_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-composer/internal/money"
	"github.com/rezonia/invoice-composer/pkg/composerkit"
)

func TestComposer_EditSession(t *testing.T) {
	c := composerkit.NewComposer(composerkit.Invoice{
		FromName: "Acme Corp",
		ToName:   "Globex Inc",
		Number:   "INV-001",
		Currency: composerkit.USD,
	})

	widget := c.AddLineItem()
	require.NoError(t, c.UpdateDescription(widget, "Widget"))
	require.NoError(t, c.UpdateQuantity(widget, money.MustFromString("2")))
	require.NoError(t, c.UpdateRate(widget, money.MustFromString("9.5")))

	gadget := c.AddLineItem()
	require.NoError(t, c.UpdateDescription(gadget, "Gadget"))
	require.NoError(t, c.UpdateQuantity(gadget, money.MustFromString("1")))
	require.NoError(t, c.UpdateRate(gadget, money.MustFromString("20")))

	assert.True(t, c.Total().Equal(money.MustFromString("39")))

	require.NoError(t, c.RemoveLineItem(widget))
	assert.True(t, c.Total().Equal(money.MustFromString("20")))

	require.True(t, c.Undo())
	assert.True(t, c.Total().Equal(money.MustFromString("39")))
	require.True(t, c.Redo())
	assert.True(t, c.Total().Equal(money.MustFromString("20")))
}

func TestComposer_UnknownID(t *testing.T) {
	c := composerkit.NewComposer(composerkit.Invoice{Currency: composerkit.USD})
	other := composerkit.NewComposer(composerkit.Invoice{Currency: composerkit.USD})
	foreign := other.AddLineItem()

	err := c.UpdateDescription(foreign, "x")

	var notFound *composerkit.LineItemNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestComposer_AttachLogoFailure(t *testing.T) {
	c := composerkit.NewComposer(composerkit.Invoice{Currency: composerkit.USD})

	err := c.AttachLogo(context.Background(), strings.NewReader("junk"), "junk.bin")

	var ingestErr *composerkit.IngestionError
	require.ErrorAs(t, err, &ingestErr)
	assert.Nil(t, c.Invoice().Logo)
}

func TestComposer_ExportPDF(t *testing.T) {
	c := composerkit.NewComposer(composerkit.Invoice{
		Number:   "INV-007",
		Currency: composerkit.EUR,
	})
	id := c.AddLineItem()
	require.NoError(t, c.UpdateDescription(id, "Consulting"))
	require.NoError(t, c.UpdateQuantity(id, money.MustFromString("3")))
	require.NoError(t, c.UpdateRate(id, money.MustFromString("400")))

	pdf, err := c.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestBuildDocument(t *testing.T) {
	def := composerkit.BuildDocument(composerkit.Invoice{Currency: composerkit.USD})
	assert.Len(t, def.Content, 3)
}
