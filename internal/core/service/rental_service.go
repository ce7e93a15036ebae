package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
	"github.com/voltride/rental-core/internal/pkg/metrics"
)

type RentalService struct {
	policy      domain.PricingPolicy
	memberships ports.EntityRepository[domain.Membership]
	logger      zerolog.Logger
}

func NewRentalService(policy domain.PricingPolicy, memberships ports.EntityRepository[domain.Membership], logger zerolog.Logger) *RentalService {
	if policy.MinRentalHours <= 0 {
		policy.MinRentalHours = domain.DefaultMinRentalHours
	}
	return &RentalService{policy: policy, memberships: memberships, logger: logger}
}

// Validate checks a rental interval against the configured minimum.
func (s *RentalService) Validate(start, end time.Time) domain.DurationValidation {
	return domain.ValidateRentalDuration(start, end, s.policy.MinRentalHours)
}

// Quote prices a rental. A rejected interval is reported in the result's
// Validation, not as an error. A soft-deleted membership grants no discount.
func (s *RentalService) Quote(ctx context.Context, in ports.QuoteInput) (ports.QuoteResult, error) {
	var (
		res      ports.QuoteResult
		discount float64
	)

	if in.MembershipID != "" {
		m, found, err := s.memberships.GetByID(ctx, in.MembershipID)
		if err != nil {
			return ports.QuoteResult{}, err
		}
		if !found {
			return ports.QuoteResult{}, domain.ErrMembershipNotFound
		}
		if !m.IsDeleted {
			discount = m.DiscountPercentage
			res.Membership = &m
		}
	}

	res.Quote, res.Validation = s.policy.Quote(in.Start, in.End, discount)
	if !res.Validation.IsValid {
		metrics.RentalQuotesTotal.WithLabelValues("rejected").Inc()
		s.logger.Debug().Str("reason", string(res.Validation.Reason)).Msg("rental quote rejected")
		return res, nil
	}

	metrics.RentalQuotesTotal.WithLabelValues(string(res.Quote.Tiers.DiscountTier)).Inc()
	s.logger.Info().
		Float64("hours", res.Validation.TotalHours).
		Str("tier", string(res.Quote.Tiers.DiscountTier)).
		Float64("total", res.Quote.Total).
		Msg("rental quoted")
	return res, nil
}
