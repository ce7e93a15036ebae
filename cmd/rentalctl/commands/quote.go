package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voltride/rental-core/internal/core/domain"
)

func quoteCmd(policy func() domain.PricingPolicy) *cobra.Command {
	var (
		start, end string
		membership float64
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a rental interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseInstant(start, time.Local)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			e, err := parseInstant(end, time.Local)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}

			q, v := policy().Quote(s, e, membership)
			out := cmd.OutOrStdout()
			if !v.IsValid {
				fmt.Fprintf(out, "invalid: %s\n", v.Error)
				return nil
			}

			fmt.Fprintf(out, "Duration:    %dd %dh (%.2f hours)\n", q.Duration.Days, q.Duration.Hours, q.Duration.TotalHours)
			fmt.Fprintf(out, "Tier:        %s x%d (%.0f%% off %.0f hours)\n", q.Tiers.DiscountTier, q.Tiers.FullPeriods, q.TierDiscountPct, q.Tiers.DiscountedHours)
			fmt.Fprintf(out, "Regular:     %.2f\n", q.RegularAmount)
			fmt.Fprintf(out, "Discounted:  %.2f\n", q.DiscountedAmount)
			fmt.Fprintf(out, "Subtotal:    %.2f\n", q.Subtotal)
			if q.MembershipDiscount > 0 {
				fmt.Fprintf(out, "Membership: -%.2f\n", q.MembershipDiscount)
			}
			fmt.Fprintf(out, "Total:       %.2f\n", q.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "rental start (RFC 3339 or \"YYYY-MM-DD 9:00 AM\")")
	cmd.Flags().StringVar(&end, "end", "", "rental end")
	cmd.Flags().Float64Var(&membership, "membership-discount", 0, "membership discount percent")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
