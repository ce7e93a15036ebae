package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voltride/rental-core/internal/core/domain"
)

func tiersCmd() *cobra.Command {
	var days bool

	cmd := &cobra.Command{
		Use:   "tiers <amount>",
		Short: "Split a rental length into discount tiers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("amount: %w", err)
			}
			if days {
				n *= 24
			}

			tb := domain.CalculateProgressiveTiers(n)
			fmt.Fprintf(cmd.OutOrStdout(), "tier=%s periods=%d discounted_hours=%g regular_hours=%g\n",
				tb.DiscountTier, tb.FullPeriods, tb.DiscountedHours, tb.RegularHours)
			return nil
		},
	}

	cmd.Flags().BoolVar(&days, "days", false, "interpret the amount as days instead of hours")
	return cmd
}
