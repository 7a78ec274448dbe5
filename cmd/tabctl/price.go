package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slabforge/tablecheck/internal/domain"
	"github.com/slabforge/tablecheck/internal/pricing"
)

// NewPriceCmd creates the price command.
func NewPriceCmd(opts *rootOptions) *cobra.Command {
	var pricesPath string

	cmd := &cobra.Command{
		Use:          "price <material> <thickness-mm>",
		Short:        "Look up the per-square-meter price for a material and thickness",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrice(cmd, args, opts, pricesPath)
		},
	}

	cmd.Flags().StringVar(&pricesPath, "prices", "prices.csv", "Path to the price list CSV file")

	return cmd
}

func runPrice(cmd *cobra.Command, args []string, opts *rootOptions, pricesPath string) error {
	mat := domain.TopMaterial(args[0])
	if !mat.IsValid() {
		return fmt.Errorf("unknown material %q", args[0])
	}
	thickness, err := strconv.ParseFloat(args[1], 64)
	if err != nil || thickness <= 0 {
		return fmt.Errorf("invalid thickness %q", args[1])
	}

	prices, err := pricing.LoadCSV(pricesPath)
	if err != nil {
		return err
	}

	price, err := prices.PricePerArea(mat, thickness)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		writeJSON(cmd.OutOrStdout(), map[string]interface{}{
			"material":    mat,
			"thicknessMm": thickness,
			"pricePerSqm": price,
		})
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %gmm: %.2f per sqm\n", mat, thickness, price)
	}
	return nil
}
