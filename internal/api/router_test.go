package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/voltride/rental-core/internal/core/domain"
)

func bearer(t *testing.T, sub, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub, "role": role}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

// The prometheus middleware registers its collectors globally, so the
// router is built once per test binary.
var newTestRouter = sync.OnceValue(func() *echo.Echo {
	return NewRouter(Dependencies{JWTSecret: "secret", Logger: zerolog.Nop()})
})

func TestRouter_Health(t *testing.T) {
	e := newTestRouter()

	for _, path := range []string{"/health", "/health/ready"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_RequiresToken(t *testing.T) {
	e := newTestRouter()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts/acc_1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected the error envelope, got %s", rec.Body.String())
	}
}

func TestRouter_RoleGates(t *testing.T) {
	e := newTestRouter()

	tests := []struct {
		method, path, role string
	}{
		{http.MethodPost, "/v1/accounts", "staff"},
		{http.MethodGet, "/v1/accounts/acc_1", "renter"},
		{http.MethodPost, "/v1/memberships", "technician"},
		{http.MethodGet, "/v1/memberships/drafts", "renter"},
		{http.MethodPut, "/v1/memberships/gold", "staff"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s %s as %s", tc.method, tc.path, tc.role), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(echo.HeaderAuthorization, bearer(t, "u_1", tc.role))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", domain.ErrMembershipNotFound), http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrMissingID, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusBadRequest},
		{fmt.Errorf("%w: tier_name is required", domain.ErrInvalidInput), http.StatusUnprocessableEntity},
		{fmt.Errorf("start_time: %w", domain.ErrUnrecognizedTime), http.StatusUnprocessableEntity},
		{echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{errors.New("mongo: connection reset"), http.StatusInternalServerError},
	}
	handle := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range tests {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handle(tc.err, c)
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestHTTPErrorHandler_HidesInternalErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("dial tcp 10.0.0.7:27017: refused"), c)
	if strings.Contains(rec.Body.String(), "10.0.0.7") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}
