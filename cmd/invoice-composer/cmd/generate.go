package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-composer/internal/export"
	"github.com/rezonia/invoice-composer/internal/ingest"
	"github.com/rezonia/invoice-composer/internal/model"
	"github.com/rezonia/invoice-composer/pkg/logger"
)

var (
	logoPath   string
	outputPath string
	noValidate bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <invoice.json>",
	Short: "Render an invoice file to PDF",
	Long: `Render a structured invoice file to a PDF document.

The input is a JSON file with the invoice header, currency code, line
items, and optional notes and terms. A logo image (PNG or JPEG) can be
attached with --logo.

Examples:
  invoice-composer generate invoice.json
  invoice-composer generate invoice.json -o out/invoice.pdf
  invoice-composer generate invoice.json --logo logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&logoPath, "logo", "", "Logo image file (PNG or JPEG)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF path (default: input name with .pdf)")
	generateCmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip structural validation of the generated PDF")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read invoice: %w", err)
	}

	var inv model.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		return fmt.Errorf("parse invoice: %w", err)
	}
	if !inv.Currency.Valid() {
		return fmt.Errorf("unsupported currency code %q (see: invoice-composer currencies)", inv.Currency)
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level})

	// Ingestion runs ahead of assembly; a broken logo fails the export.
	if logoPath != "" {
		img, err := ingest.IngestFile(ctx, logoPath)
		if err != nil {
			return err
		}
		inv.Logo = img
	}

	exporter := export.NewExporter(
		export.WithLogger(log),
		export.WithValidation(!noValidate),
	)
	pdf, err := exporter.Export(ctx, inv)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(args[0], ".json") + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(pdf))
	return nil
}
