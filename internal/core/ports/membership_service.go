package ports

import (
	"context"

	"github.com/voltride/rental-core/internal/core/domain"
)

// MembershipInput carries a membership tier definition.
type MembershipInput struct {
	ID                   string   `json:"id,omitempty"              validate:"omitempty,max=64"`
	TierName             string   `json:"tier_name"                 validate:"required"`
	MinBookings          int      `json:"min_bookings"              validate:"gte=0"`
	DiscountPercentage   float64  `json:"discount_percentage"       validate:"gte=0,lte=100"`
	FreeChargingPerMonth int      `json:"free_charging_per_month"   validate:"gte=0"`
	Description          string   `json:"description"`
	Renters              []string `json:"renters,omitempty"`
}

// MembershipDraft is a membership created on this device and not yet sent
// to the remote store. ID has the form local_<epoch-millis>; the embedded
// MembershipInput.ID is always empty on drafts.
type MembershipDraft struct {
	MembershipInput
	ID string `json:"id"`
}

// MembershipDraftStore persists drafts as one JSON array under a single key.
type MembershipDraftStore interface {
	Add(ctx context.Context, in MembershipInput) (MembershipDraft, error)
	List(ctx context.Context) ([]MembershipDraft, error)
}

// MembershipCatalog lists every membership tier.
type MembershipCatalog interface {
	List(ctx context.Context) ([]domain.Membership, error)
}

type MembershipService interface {
	Create(ctx context.Context, in MembershipInput) (domain.Membership, error)
	Get(ctx context.Context, id string) (domain.Membership, error)
	Update(ctx context.Context, in MembershipInput) (domain.Membership, error)
	AddRenter(ctx context.Context, membershipID, renterID string) (domain.Membership, error)
	TierFor(ctx context.Context, bookings int) (domain.Membership, error)
	SaveDraft(ctx context.Context, in MembershipInput) (MembershipDraft, error)
	ListDrafts(ctx context.Context) ([]MembershipDraft, error)
}
