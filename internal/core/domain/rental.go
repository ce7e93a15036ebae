package domain

import (
	"fmt"
	"math"
	"time"
)

// DefaultMinRentalHours is the shortest rental a renter may book.
const DefaultMinRentalHours = 24

const (
	hoursPerDay  = 24
	daysPerMonth = 30
	daysPerYear  = 365
)

// DurationFailure names why a rental interval was rejected.
type DurationFailure string

const (
	ReasonNone             DurationFailure = ""
	ReasonReversedInterval DurationFailure = "reversed_interval"
	ReasonBelowMinimum     DurationFailure = "below_minimum"
)

// DurationValidation is the outcome of ValidateRentalDuration. Rejections are
// reported here rather than as errors so callers can render them directly.
type DurationValidation struct {
	IsValid    bool
	Reason     DurationFailure
	Error      string
	TotalHours float64
}

// ValidateRentalDuration checks that end is after start and that at least
// minHours elapse between them.
func ValidateRentalDuration(start, end time.Time, minHours float64) DurationValidation {
	if !end.After(start) {
		return DurationValidation{
			Reason: ReasonReversedInterval,
			Error:  "end time must be after start time",
		}
	}

	hours := end.Sub(start).Hours()
	if hours < minHours {
		return DurationValidation{
			Reason:     ReasonBelowMinimum,
			Error:      fmt.Sprintf("minimum rental duration is %s hours", formatHours(minHours)),
			TotalHours: hours,
		}
	}
	return DurationValidation{IsValid: true, TotalHours: hours}
}

// RentalDuration splits an interval into whole days and remaining hours.
type RentalDuration struct {
	Days       int
	Hours      int
	TotalHours float64
}

// CalculateRentalDuration decomposes the time between start and end. A
// reversed interval yields the zero value.
func CalculateRentalDuration(start, end time.Time) RentalDuration {
	if !end.After(start) {
		return RentalDuration{}
	}
	total := end.Sub(start).Hours()
	whole := int(math.Floor(total))
	return RentalDuration{
		Days:       whole / hoursPerDay,
		Hours:      whole % hoursPerDay,
		TotalHours: total,
	}
}

// DiscountTier is the progressive pricing band a rental falls into.
type DiscountTier string

const (
	TierNone    DiscountTier = "none"
	TierMonthly DiscountTier = "monthly"
	TierYearly  DiscountTier = "yearly"
)

// TierBreakdown splits a rental's hours into discounted full periods and a
// remainder billed at the regular rate.
type TierBreakdown struct {
	DiscountTier    DiscountTier
	FullPeriods     int
	DiscountedHours float64
	RegularHours    float64
}

// CalculateProgressiveTiers classifies totalHours into exactly one tier. The
// yearly band is checked first so a 400-day rental counts as one year plus
// 35 regular days, not thirteen months.
func CalculateProgressiveTiers(totalHours float64) TierBreakdown {
	if totalHours <= 0 {
		return TierBreakdown{DiscountTier: TierNone}
	}
	days := totalHours / hoursPerDay

	switch {
	case days >= daysPerYear:
		return periodBreakdown(TierYearly, totalHours, days, daysPerYear)
	case days >= daysPerMonth:
		return periodBreakdown(TierMonthly, totalHours, days, daysPerMonth)
	default:
		return TierBreakdown{DiscountTier: TierNone, RegularHours: totalHours}
	}
}

func periodBreakdown(tier DiscountTier, totalHours, days float64, periodDays int) TierBreakdown {
	periods := int(math.Floor(days / float64(periodDays)))
	discounted := float64(periods * periodDays * hoursPerDay)
	return TierBreakdown{
		DiscountTier:    tier,
		FullPeriods:     periods,
		DiscountedHours: discounted,
		RegularHours:    totalHours - discounted,
	}
}

func formatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%d", int(h))
	}
	return fmt.Sprintf("%.1f", h)
}
