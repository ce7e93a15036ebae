package wire

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// RenterModel is the wire form of a renter.
type RenterModel struct {
	RenterID    *string `json:"renter_id"     bson:"_id"`
	Email       *string `json:"email"         bson:"email"`
	Phone       *string `json:"phone"         bson:"phone"`
	Address     *string `json:"address"       bson:"address"`
	DateOfBirth *string `json:"date_of_birth" bson:"date_of_birth"`
	AvatarURL   *string `json:"avatar_url"    bson:"avatar_url"`
}

func FromRenter(r domain.Renter) RenterModel {
	m := RenterModel{
		RenterID:    ptr(r.ID),
		Email:       ptr(r.Email),
		Phone:       ptr(r.Phone),
		Address:     ptr(r.Address),
		DateOfBirth: formatTime(r.DateOfBirth),
	}
	if r.AvatarURL != nil {
		m.AvatarURL = ptr(*r.AvatarURL)
	}
	return m
}

func ToRenter(m RenterModel, now time.Time) Decoded[domain.Renter] {
	f := &fields{now: now}
	r := domain.Renter{
		ID:          f.str("renter_id", m.RenterID),
		Email:       f.str("email", m.Email),
		Phone:       f.str("phone", m.Phone),
		Address:     f.str("address", m.Address),
		DateOfBirth: f.timestamp("date_of_birth", m.DateOfBirth),
	}
	if m.AvatarURL != nil && *m.AvatarURL != "" {
		r.AvatarURL = ptr(*m.AvatarURL)
	}
	return Decoded[domain.Renter]{Entity: r, Defaults: f.defaults}
}

func DecodeRenter(data []byte) (Decoded[domain.Renter], error) {
	var m RenterModel
	if err := json.Unmarshal(data, &m); err != nil {
		return Decoded[domain.Renter]{}, fmt.Errorf("decode renter: %w", err)
	}
	return ToRenter(m, time.Now().UTC()), nil
}

func EncodeRenter(r domain.Renter) ([]byte, error) {
	return json.Marshal(FromRenter(r))
}
