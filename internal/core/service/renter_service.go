package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

type RenterService struct {
	repo   ports.EntityRepository[domain.Renter]
	logger zerolog.Logger
}

func NewRenterService(repo ports.EntityRepository[domain.Renter], logger zerolog.Logger) *RenterService {
	return &RenterService{repo: repo, logger: logger}
}

func (s *RenterService) Create(ctx context.Context, in ports.RenterInput) (domain.Renter, error) {
	if err := validateInput(in); err != nil {
		return domain.Renter{}, err
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	renter := toRenter(in)

	if err := s.repo.Create(ctx, renter); err != nil {
		s.logger.Error().Err(err).Str("renter_id", renter.ID).Msg("failed to create renter")
		return domain.Renter{}, err
	}
	s.logger.Info().Str("renter_id", renter.ID).Msg("renter created")
	return renter, nil
}

func (s *RenterService) Get(ctx context.Context, id string) (domain.Renter, error) {
	renter, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Renter{}, err
	}
	if !found {
		return domain.Renter{}, domain.ErrRenterNotFound
	}
	return renter, nil
}

// Update replaces the profile of an existing renter. The id only selects
// the record; it can never be changed.
func (s *RenterService) Update(ctx context.Context, in ports.RenterInput) (domain.Renter, error) {
	if in.ID == "" {
		return domain.Renter{}, domain.ErrMissingID
	}
	if err := validateInput(in); err != nil {
		return domain.Renter{}, err
	}
	if _, err := s.Get(ctx, in.ID); err != nil {
		return domain.Renter{}, err
	}

	renter := toRenter(in)
	if err := s.repo.Update(ctx, renter); err != nil {
		s.logger.Error().Err(err).Str("renter_id", renter.ID).Msg("failed to update renter")
		return domain.Renter{}, err
	}
	return renter, nil
}

func toRenter(in ports.RenterInput) domain.Renter {
	r := domain.Renter{
		ID:          in.ID,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		DateOfBirth: in.DateOfBirth.UTC(),
	}
	if in.AvatarURL != nil && *in.AvatarURL != "" {
		u := *in.AvatarURL
		r.AvatarURL = &u
	}
	return r
}
