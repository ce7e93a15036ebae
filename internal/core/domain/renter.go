package domain

import "time"

// Renter holds the contact profile of a person renting bikes.
type Renter struct {
	ID          string
	Email       string
	Phone       string
	Address     string
	DateOfBirth time.Time
	AvatarURL   *string
}

func (r Renter) EntityID() string { return r.ID }

func (r Renter) Clone() Renter {
	if r.AvatarURL != nil {
		u := *r.AvatarURL
		r.AvatarURL = &u
	}
	return r
}
