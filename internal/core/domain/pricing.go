package domain

import (
	"math"
	"time"
)

// PricingPolicy holds the rates used to quote a rental. Discounts are
// percentages in the 0-100 range.
type PricingPolicy struct {
	HourlyRate         float64
	MonthlyDiscountPct float64
	YearlyDiscountPct  float64
	MinRentalHours     float64
}

// Quote is the priced breakdown of a rental interval.
type Quote struct {
	Duration           RentalDuration
	Tiers              TierBreakdown
	TierDiscountPct    float64
	MembershipDiscount float64
	RegularAmount      float64
	DiscountedAmount   float64
	Subtotal           float64
	Total              float64
}

// Quote prices the interval [start, end). The duration is validated first;
// when it is rejected the returned Quote is the zero value.
func (p PricingPolicy) Quote(start, end time.Time, membershipDiscountPct float64) (Quote, DurationValidation) {
	minHours := p.MinRentalHours
	if minHours <= 0 {
		minHours = DefaultMinRentalHours
	}
	v := ValidateRentalDuration(start, end, minHours)
	if !v.IsValid {
		return Quote{}, v
	}

	tiers := CalculateProgressiveTiers(v.TotalHours)
	tierPct := p.tierDiscount(tiers.DiscountTier)
	memberPct := clampPct(membershipDiscountPct)

	regular := tiers.RegularHours * p.HourlyRate
	discounted := tiers.DiscountedHours * p.HourlyRate * (1 - tierPct/100)
	subtotal := regular + discounted

	return Quote{
		Duration:           CalculateRentalDuration(start, end),
		Tiers:              tiers,
		TierDiscountPct:    tierPct,
		MembershipDiscount: roundCents(subtotal * memberPct / 100),
		RegularAmount:      roundCents(regular),
		DiscountedAmount:   roundCents(discounted),
		Subtotal:           roundCents(subtotal),
		Total:              roundCents(subtotal * (1 - memberPct/100)),
	}, v
}

func (p PricingPolicy) tierDiscount(t DiscountTier) float64 {
	switch t {
	case TierYearly:
		return clampPct(p.YearlyDiscountPct)
	case TierMonthly:
		return clampPct(p.MonthlyDiscountPct)
	default:
		return 0
	}
}

func clampPct(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
