package domain

import (
	"slices"
	"time"
)

// Membership is a loyalty tier granting a discount once a renter has
// completed MinBookings rentals.
type Membership struct {
	ID                   string
	TierName             string
	MinBookings          int
	DiscountPercentage   float64
	FreeChargingPerMonth int
	Description          string
	Renters              []string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
	DeletedAt            *time.Time
	IsDeleted            bool
}

func (m Membership) EntityID() string { return m.ID }

func (m Membership) Clone() Membership {
	m.Renters = slices.Clone(m.Renters)
	m.UpdatedAt = cloneTime(m.UpdatedAt)
	m.DeletedAt = cloneTime(m.DeletedAt)
	return m
}

// HasRenter reports whether renterID belongs to the tier. Renters need not be
// normalised.
func (m Membership) HasRenter(renterID string) bool {
	return slices.Contains(m.Renters, renterID)
}

// WithRenter returns a copy of m with renterID added to the renter set.
func (m Membership) WithRenter(renterID string) Membership {
	out := m.Clone()
	out.Renters = NormalizeRenters(append(out.Renters, renterID))
	return out
}

// NormalizeRenters sorts ids and drops empties and duplicates.
func NormalizeRenters(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// MembershipForBookings returns the highest tier whose MinBookings the given
// booking count reaches. Soft-deleted tiers are skipped. Tiers sharing a
// threshold resolve to the larger discount, then the smaller ID, so the
// result does not depend on the order of tiers.
func MembershipForBookings(tiers []Membership, bookings int) (Membership, bool) {
	var (
		best  Membership
		found bool
	)
	for _, t := range tiers {
		if t.IsDeleted || t.MinBookings > bookings {
			continue
		}
		if !found || outranks(t, best) {
			best, found = t, true
		}
	}
	return best, found
}

func outranks(a, b Membership) bool {
	if a.MinBookings != b.MinBookings {
		return a.MinBookings > b.MinBookings
	}
	if a.DiscountPercentage != b.DiscountPercentage {
		return a.DiscountPercentage > b.DiscountPercentage
	}
	return a.ID < b.ID
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
