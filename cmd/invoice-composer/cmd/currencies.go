package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-composer/internal/currency"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported currency codes",
	RunE:  runCurrencies,
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}

func runCurrencies(cmd *cobra.Command, args []string) error {
	for _, code := range currency.Supported() {
		fmt.Printf("%s  %s\n", code, currency.Symbol(code))
	}
	return nil
}
