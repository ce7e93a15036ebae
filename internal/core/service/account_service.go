package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
)

// AccountService implements account creation and maintenance.
type AccountService struct {
	repo     ports.EntityRepository[domain.Account]
	logger   zerolog.Logger
	now      func() time.Time
	hashCost int
}

func NewAccountService(repo ports.EntityRepository[domain.Account], logger zerolog.Logger) *AccountService {
	return &AccountService{
		repo:     repo,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		hashCost: bcrypt.DefaultCost,
	}
}

// Create opens a new account. When in.ID is empty a UUID is generated, so
// a retried request should resend the id it got back to stay idempotent.
func (s *AccountService) Create(ctx context.Context, in ports.CreateAccountInput) (domain.Account, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return domain.Account{}, domain.ErrInvalidCredentials
	}
	role, err := parseRoleInput(in.Role)
	if err != nil {
		return domain.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return domain.Account{}, fmt.Errorf("hash password: %w", err)
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}
	account := domain.Account{
		ID:           id,
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Role:         role,
		FullName:     in.FullName,
		IsActive:     true,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.Error().Err(err).Str("account_id", id).Msg("failed to create account")
		return domain.Account{}, err
	}

	s.logger.Info().Str("account_id", id).Str("role", string(role)).Msg("account created")
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (domain.Account, error) {
	account, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	if !found {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

// Update replaces the mutable fields of an account. CreatedAt and LastLogin
// are kept; an empty password keeps the stored hash.
func (s *AccountService) Update(ctx context.Context, in ports.UpdateAccountInput) (domain.Account, error) {
	if in.ID == "" {
		return domain.Account{}, domain.ErrMissingID
	}
	current, err := s.Get(ctx, in.ID)
	if err != nil {
		return domain.Account{}, err
	}
	role, err := parseRoleInput(in.Role)
	if err != nil {
		return domain.Account{}, err
	}

	next := current.Clone()
	next.Username = strings.TrimSpace(in.Username)
	next.FullName = in.FullName
	next.Role = role
	next.IsActive = in.IsActive
	if next.Username == "" {
		next.Username = current.Username
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
		if err != nil {
			return domain.Account{}, fmt.Errorf("hash password: %w", err)
		}
		next.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, next); err != nil {
		s.logger.Error().Err(err).Str("account_id", in.ID).Msg("failed to update account")
		return domain.Account{}, err
	}
	return next, nil
}

// RecordLogin stamps LastLogin with the current time.
func (s *AccountService) RecordLogin(ctx context.Context, id string) (domain.Account, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}
	now := s.now()
	next := current.Clone()
	next.LastLogin = &now
	if err := s.repo.Update(ctx, next); err != nil {
		return domain.Account{}, err
	}
	return next, nil
}

// parseRoleInput accepts an empty role as RoleRenter and rejects names
// outside the role set instead of silently downgrading them.
func parseRoleInput(s string) (domain.Role, error) {
	if strings.TrimSpace(s) == "" {
		return domain.RoleRenter, nil
	}
	role, ok := domain.ParseRole(s)
	if !ok {
		return "", fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, s)
	}
	return role, nil
}
