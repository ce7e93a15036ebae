package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/api/middleware"
	"github.com/voltride/rental-core/internal/core/domain"
	"github.com/voltride/rental-core/internal/core/ports"
	"github.com/voltride/rental-core/internal/pkg/validation"
)

// newContext builds an echo context carrying the claims Auth would inject.
// An empty subject leaves the context unauthenticated.
func newContext(method, target, body, subject string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subject != "" {
		c.Set(middleware.ContextSubject, subject)
		c.Set(middleware.ContextRole, role)
	}
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAccountService struct {
	createFn func(ctx context.Context, in ports.CreateAccountInput) (domain.Account, error)
	getFn    func(ctx context.Context, id string) (domain.Account, error)
	updateFn func(ctx context.Context, in ports.UpdateAccountInput) (domain.Account, error)
}

func (s *stubAccountService) Create(ctx context.Context, in ports.CreateAccountInput) (domain.Account, error) {
	return s.createFn(ctx, in)
}

func (s *stubAccountService) Get(ctx context.Context, id string) (domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *stubAccountService) Update(ctx context.Context, in ports.UpdateAccountInput) (domain.Account, error) {
	return s.updateFn(ctx, in)
}

func (s *stubAccountService) RecordLogin(context.Context, string) (domain.Account, error) {
	return domain.Account{}, nil
}

type stubRenterService struct {
	created *ports.RenterInput
	updated *ports.RenterInput
	renters map[string]domain.Renter
}

func (s *stubRenterService) Create(_ context.Context, in ports.RenterInput) (domain.Renter, error) {
	s.created = &in
	return domain.Renter{ID: in.ID, Email: in.Email, Phone: in.Phone, DateOfBirth: in.DateOfBirth}, nil
}

func (s *stubRenterService) Get(_ context.Context, id string) (domain.Renter, error) {
	r, ok := s.renters[id]
	if !ok {
		return domain.Renter{}, domain.ErrRenterNotFound
	}
	return r, nil
}

func (s *stubRenterService) Update(_ context.Context, in ports.RenterInput) (domain.Renter, error) {
	s.updated = &in
	return domain.Renter{ID: in.ID, Email: in.Email}, nil
}

type stubMembershipService struct {
	tiers    []domain.Membership
	added    [2]string
	drafts   []ports.MembershipDraft
	bookings int
}

func (s *stubMembershipService) Create(_ context.Context, in ports.MembershipInput) (domain.Membership, error) {
	return domain.Membership{ID: "m_new", TierName: in.TierName}, nil
}

func (s *stubMembershipService) Get(_ context.Context, id string) (domain.Membership, error) {
	for _, m := range s.tiers {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Membership{}, domain.ErrMembershipNotFound
}

func (s *stubMembershipService) Update(_ context.Context, in ports.MembershipInput) (domain.Membership, error) {
	return domain.Membership{ID: in.ID, TierName: in.TierName}, nil
}

func (s *stubMembershipService) AddRenter(_ context.Context, membershipID, renterID string) (domain.Membership, error) {
	s.added = [2]string{membershipID, renterID}
	return domain.Membership{ID: membershipID, Renters: []string{renterID}}, nil
}

func (s *stubMembershipService) TierFor(_ context.Context, bookings int) (domain.Membership, error) {
	s.bookings = bookings
	m, ok := domain.MembershipForBookings(s.tiers, bookings)
	if !ok {
		return domain.Membership{}, domain.ErrMembershipNotFound
	}
	return m, nil
}

func (s *stubMembershipService) SaveDraft(_ context.Context, in ports.MembershipInput) (ports.MembershipDraft, error) {
	d := ports.MembershipDraft{MembershipInput: in, ID: "local_1760774400000"}
	s.drafts = append(s.drafts, d)
	return d, nil
}

func (s *stubMembershipService) ListDrafts(context.Context) ([]ports.MembershipDraft, error) {
	return s.drafts, nil
}

type stubRentalService struct {
	start, end time.Time
	quoteIn    ports.QuoteInput
	quoteFn    func(in ports.QuoteInput) (ports.QuoteResult, error)
}

func (s *stubRentalService) Validate(start, end time.Time) domain.DurationValidation {
	s.start, s.end = start, end
	return domain.ValidateRentalDuration(start, end, domain.DefaultMinRentalHours)
}

func (s *stubRentalService) Quote(_ context.Context, in ports.QuoteInput) (ports.QuoteResult, error) {
	s.quoteIn = in
	return s.quoteFn(in)
}

type stubGeofenceService struct {
	queries []ports.GeofenceQuery
	result  ports.GeofenceResult
}

func (s *stubGeofenceService) Query(_ context.Context, q ports.GeofenceQuery) (ports.GeofenceResult, error) {
	s.queries = append(s.queries, q)
	return s.result, nil
}
