package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voltride/rental-core/internal/core/domain"
)

func validateCmd(policy func() domain.PricingPolicy) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an interval against the minimum rental duration",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseInstant(start, time.Local)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			e, err := parseInstant(end, time.Local)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}

			v := domain.ValidateRentalDuration(s, e, policy().MinRentalHours)
			if v.IsValid {
				fmt.Fprintf(cmd.OutOrStdout(), "valid (%.2f hours)\n", v.TotalHours)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "invalid [%s]: %s\n", v.Reason, v.Error)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "rental start")
	cmd.Flags().StringVar(&end, "end", "", "rental end")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
