package ports

import (
	"context"

	"github.com/voltride/rental-core/internal/core/domain"
)

// CreateAccountInput carries the data needed to open an account. ID is
// optional; a stable one is generated when empty.
type CreateAccountInput struct {
	ID       string
	Username string
	Password string
	Role     string
	FullName string
}

// UpdateAccountInput replaces every mutable field of an account. An empty
// Password keeps the stored hash.
type UpdateAccountInput struct {
	ID       string
	Username string
	Password string
	Role     string
	FullName string
	IsActive bool
}

type AccountService interface {
	Create(ctx context.Context, in CreateAccountInput) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	Update(ctx context.Context, in UpdateAccountInput) (domain.Account, error)
	RecordLogin(ctx context.Context, id string) (domain.Account, error)
}
