package ports

import (
	"context"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// RenterInput carries a renter profile. ID is generated on create when
// empty and identifies the renter on update.
type RenterInput struct {
	ID          string    `validate:"omitempty,max=64"`
	Email       string    `validate:"required,email"`
	Phone       string    `validate:"required"`
	Address     string    `validate:"max=256"`
	DateOfBirth time.Time `validate:"required"`
	AvatarURL   *string   `validate:"omitempty,url"`
}

type RenterService interface {
	Create(ctx context.Context, in RenterInput) (domain.Renter, error)
	Get(ctx context.Context, id string) (domain.Renter, error)
	Update(ctx context.Context, in RenterInput) (domain.Renter, error)
}
