// Package commands defines the rentalctl CLI over the rental rules.
//
// Commands
//
//   - quote       Price a rental interval
//   - validate    Check an interval against the minimum duration
//   - tiers       Split a number of hours into progressive discount tiers
//   - parse-time  Parse a 12-hour clock string ("9:30 PM", "9h30 tối")
//   - distance    Haversine distance between two coordinates
//
// Pricing defaults come from the same environment variables the API reads
// (HOURLY_RATE, MONTHLY_DISCOUNT_PCT, YEARLY_DISCOUNT_PCT, MIN_RENTAL_HOURS);
// flags override them.
package commands
