package commands

import (
	"github.com/spf13/cobra"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/infrastructure/config"
)

type pricingFlags struct {
	hourlyRate float64
	monthlyPct float64
	yearlyPct  float64
	minHours   float64
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		flags  pricingFlags
		policy domain.PricingPolicy
	)

	root := &cobra.Command{
		Use:          "rentalctl",
		Short:        "Rental duration, pricing and distance tools",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			policy = domain.PricingPolicy{
				HourlyRate:         cfg.Pricing.HourlyRate,
				MonthlyDiscountPct: cfg.Pricing.MonthlyDiscountPct,
				YearlyDiscountPct:  cfg.Pricing.YearlyDiscountPct,
				MinRentalHours:     cfg.Pricing.MinRentalHours,
			}

			pf := cmd.Flags()
			if pf.Changed("hourly-rate") {
				policy.HourlyRate = flags.hourlyRate
			}
			if pf.Changed("monthly-discount") {
				policy.MonthlyDiscountPct = flags.monthlyPct
			}
			if pf.Changed("yearly-discount") {
				policy.YearlyDiscountPct = flags.yearlyPct
			}
			if pf.Changed("min-hours") {
				policy.MinRentalHours = flags.minHours
			}
			return nil
		},
	}

	root.PersistentFlags().Float64Var(&flags.hourlyRate, "hourly-rate", 0, "price per hour")
	root.PersistentFlags().Float64Var(&flags.monthlyPct, "monthly-discount", 0, "discount percent for full 30-day periods")
	root.PersistentFlags().Float64Var(&flags.yearlyPct, "yearly-discount", 0, "discount percent for full 365-day periods")
	root.PersistentFlags().Float64Var(&flags.minHours, "min-hours", 0, "minimum rental duration in hours")

	getPolicy := func() domain.PricingPolicy { return policy }
	root.AddCommand(
		quoteCmd(getPolicy),
		validateCmd(getPolicy),
		tiersCmd(),
		parseTimeCmd(),
		distanceCmd(),
	)
	return root
}
