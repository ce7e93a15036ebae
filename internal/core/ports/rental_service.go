package ports

import (
	"context"
	"time"

	"github.com/voltride/rental-core/internal/core/domain"
)

// QuoteInput asks for the price of a rental. MembershipID is optional.
type QuoteInput struct {
	Start        time.Time
	End          time.Time
	MembershipID string
}

// QuoteResult carries either a priced quote or the reason the interval was
// rejected. A rejected interval is not an error.
type QuoteResult struct {
	Validation domain.DurationValidation
	Quote      domain.Quote
	Membership *domain.Membership
}

type RentalService interface {
	Validate(start, end time.Time) domain.DurationValidation
	Quote(ctx context.Context, in QuoteInput) (QuoteResult, error)
}
