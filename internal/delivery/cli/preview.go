package cli

import (
	"fmt"

	"inventory/internal/domain/validation"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var price, cost string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the profit margin and profit per unit for a price and cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderPreview(price, cost, validation.CalculateProfit(price, cost).Preview()))

			return nil
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Selling price as typed in the form")
	cmd.Flags().StringVar(&cost, "cost", "", "Cost as typed in the form")

	return cmd
}
