package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// MembershipModel is the wire form of a membership tier.
type MembershipModel struct {
	MembershipID         *string  `json:"membership_id"           bson:"_id"`
	TierName             *string  `json:"tier_name"               bson:"tier_name"`
	MinBookings          *int     `json:"min_bookings"            bson:"min_bookings"`
	DiscountPercentage   *float64 `json:"discount_percentage"     bson:"discount_percentage"`
	FreeChargingPerMonth *int     `json:"free_charging_per_month" bson:"free_charging_per_month"`
	Description          *string  `json:"description"             bson:"description"`
	Renters              []string `json:"renters"                 bson:"renters"`
	CreatedAt            *string  `json:"created_at"              bson:"created_at"`
	UpdatedAt            *string  `json:"updated_at"              bson:"updated_at"`
	DeletedAt            *string  `json:"deleted_at"              bson:"deleted_at"`
	IsDeleted            *bool    `json:"is_deleted"              bson:"is_deleted"`
}

func FromMembership(m domain.Membership) MembershipModel {
	renters := m.Renters
	if renters == nil {
		renters = []string{}
	}
	return MembershipModel{
		MembershipID:         ptr(m.ID),
		TierName:             ptr(m.TierName),
		MinBookings:          ptr(m.MinBookings),
		DiscountPercentage:   ptr(m.DiscountPercentage),
		FreeChargingPerMonth: ptr(m.FreeChargingPerMonth),
		Description:          ptr(m.Description),
		Renters:              append([]string(nil), renters...),
		CreatedAt:            formatTime(m.CreatedAt),
		UpdatedAt:            formatOptionalTime(m.UpdatedAt),
		DeletedAt:            formatOptionalTime(m.DeletedAt),
		IsDeleted:            ptr(m.IsDeleted),
	}
}

// ToMembership maps a wire document to a membership. The discount is
// clamped to 0-100 and negative counters become zero, each with a default
// record.
func ToMembership(m MembershipModel, now time.Time) Decoded[domain.Membership] {
	f := &fields{now: now}
	out := domain.Membership{
		ID:                   f.str("membership_id", m.MembershipID),
		TierName:             f.str("tier_name", m.TierName),
		MinBookings:          f.count("min_bookings", m.MinBookings),
		FreeChargingPerMonth: f.count("free_charging_per_month", m.FreeChargingPerMonth),
		Description:          f.str("description", m.Description),
		Renters:              domain.NormalizeRenters(m.Renters),
		CreatedAt:            f.timestamp("created_at", m.CreatedAt),
		UpdatedAt:            f.optionalTime("updated_at", m.UpdatedAt),
		DeletedAt:            f.optionalTime("deleted_at", m.DeletedAt),
		IsDeleted:            f.boolean("is_deleted", m.IsDeleted),
	}

	switch d := m.DiscountPercentage; {
	case d == nil:
		f.note("discount_percentage", ReasonMissing, "")
	case *d < 0 || *d > 100:
		f.note("discount_percentage", ReasonOutOfRange, strconv.FormatFloat(*d, 'f', -1, 64))
		out.DiscountPercentage = min(100, max(0, *d))
	default:
		out.DiscountPercentage = *d
	}

	return Decoded[domain.Membership]{Entity: out, Defaults: f.defaults}
}

func DecodeMembership(data []byte) (Decoded[domain.Membership], error) {
	var m MembershipModel
	if err := json.Unmarshal(data, &m); err != nil {
		return Decoded[domain.Membership]{}, fmt.Errorf("decode membership: %w", err)
	}
	return ToMembership(m, time.Now().UTC()), nil
}

func EncodeMembership(m domain.Membership) ([]byte, error) {
	return json.Marshal(FromMembership(m))
}
