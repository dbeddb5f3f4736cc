package cmd

import (
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "invoice-composer",
	Short: "Compose and render invoices to PDF",
	Long: `Invoice Composer builds printable invoices from structured invoice data.

Supports:
  - Line items with exact decimal quantities and rates
  - Localized currency formatting for the supported currency set
  - Optional logo, notes and terms sections
  - PDF output with structural validation

Examples:
  # Render an invoice to PDF
  invoice-composer generate invoice.json -o invoice.pdf

  # Render with a logo image
  invoice-composer generate invoice.json --logo logo.png -o invoice.pdf

  # List supported currencies
  invoice-composer currencies

  # Run the HTTP API
  invoice-composer serve`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
