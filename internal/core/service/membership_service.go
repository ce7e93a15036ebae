package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

type MembershipService struct {
	repo    ports.EntityRepository[domain.Membership]
	catalog ports.MembershipCatalog
	drafts  ports.MembershipDraftStore
	logger  zerolog.Logger
	now     func() time.Time
}

func NewMembershipService(
	repo ports.EntityRepository[domain.Membership],
	catalog ports.MembershipCatalog,
	drafts ports.MembershipDraftStore,
	logger zerolog.Logger,
) *MembershipService {
	return &MembershipService{
		repo:    repo,
		catalog: catalog,
		drafts:  drafts,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *MembershipService) Create(ctx context.Context, in ports.MembershipInput) (domain.Membership, error) {
	if err := validateInput(in); err != nil {
		return domain.Membership{}, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	m := domain.Membership{
		ID:                   in.ID,
		TierName:             in.TierName,
		MinBookings:          in.MinBookings,
		DiscountPercentage:   in.DiscountPercentage,
		FreeChargingPerMonth: in.FreeChargingPerMonth,
		Description:          in.Description,
		Renters:              domain.NormalizeRenters(in.Renters),
		CreatedAt:            s.now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("membership_id", m.ID).Msg("failed to create membership")
		return domain.Membership{}, err
	}
	s.logger.Info().Str("membership_id", m.ID).Str("tier", m.TierName).Msg("membership created")
	return m, nil
}

func (s *MembershipService) Get(ctx context.Context, id string) (domain.Membership, error) {
	m, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Membership{}, err
	}
	if !found {
		return domain.Membership{}, domain.ErrMembershipNotFound
	}
	return m, nil
}

// Update replaces the tier definition. CreatedAt and the soft-delete fields
// are carried over from the stored record and UpdatedAt is stamped.
func (s *MembershipService) Update(ctx context.Context, in ports.MembershipInput) (domain.Membership, error) {
	if in.ID == "" {
		return domain.Membership{}, domain.ErrMissingID
	}
	if err := validateInput(in); err != nil {
		return domain.Membership{}, err
	}
	current, err := s.Get(ctx, in.ID)
	if err != nil {
		return domain.Membership{}, err
	}

	now := s.now()
	next := current.Clone()
	next.TierName = in.TierName
	next.MinBookings = in.MinBookings
	next.DiscountPercentage = in.DiscountPercentage
	next.FreeChargingPerMonth = in.FreeChargingPerMonth
	next.Description = in.Description
	next.Renters = domain.NormalizeRenters(in.Renters)
	next.UpdatedAt = &now

	if err := s.repo.Update(ctx, next); err != nil {
		s.logger.Error().Err(err).Str("membership_id", in.ID).Msg("failed to update membership")
		return domain.Membership{}, err
	}
	return next, nil
}

// AddRenter enrols renterID in the tier. Adding a renter already enrolled
// is a no-op that still returns the membership.
func (s *MembershipService) AddRenter(ctx context.Context, membershipID, renterID string) (domain.Membership, error) {
	if renterID == "" {
		return domain.Membership{}, domain.ErrMissingID
	}
	current, err := s.Get(ctx, membershipID)
	if err != nil {
		return domain.Membership{}, err
	}
	if current.HasRenter(renterID) {
		return current, nil
	}

	now := s.now()
	next := current.WithRenter(renterID)
	next.UpdatedAt = &now
	if err := s.repo.Update(ctx, next); err != nil {
		return domain.Membership{}, err
	}
	s.logger.Info().Str("membership_id", membershipID).Str("renter_id", renterID).Msg("renter enrolled")
	return next, nil
}

// TierFor returns the best tier a renter with the given booking count
// qualifies for.
func (s *MembershipService) TierFor(ctx context.Context, bookings int) (domain.Membership, error) {
	tiers, err := s.catalog.List(ctx)
	if err != nil {
		return domain.Membership{}, err
	}
	m, ok := domain.MembershipForBookings(tiers, bookings)
	if !ok {
		return domain.Membership{}, domain.ErrMembershipNotFound
	}
	return m, nil
}

// SaveDraft stores a membership locally without contacting the remote store.
// The draft id is always generated, so a request carrying its own id is
// rejected.
func (s *MembershipService) SaveDraft(ctx context.Context, in ports.MembershipInput) (ports.MembershipDraft, error) {
	if in.ID != "" {
		return ports.MembershipDraft{}, fmt.Errorf("%w: drafts get a generated id, got %q", domain.ErrInvalidInput, in.ID)
	}
	if err := validateInput(in); err != nil {
		return ports.MembershipDraft{}, err
	}
	draft, err := s.drafts.Add(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to save membership draft")
		return ports.MembershipDraft{}, err
	}
	s.logger.Info().Str("draft_id", draft.ID).Msg("membership draft saved")
	return draft, nil
}

func (s *MembershipService) ListDrafts(ctx context.Context) ([]ports.MembershipDraft, error) {
	return s.drafts.List(ctx)
}
