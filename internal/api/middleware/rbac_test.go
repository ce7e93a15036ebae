package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/core/domain"
)

func TestRBAC(t *testing.T) {
	managers := []domain.Role{domain.RoleManager, domain.RoleAdmin}

	tests := []struct {
		name    string
		role    any
		allowed bool
	}{
		{"manager", domain.RoleManager, true},
		{"admin", domain.RoleAdmin, true},
		{"renter", domain.RoleRenter, false},
		{"technician", domain.RoleTechnician, false},
		{"missing role", nil, false},
		{"untyped string", "admin", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tc.role != nil {
				c.Set(ContextRole, tc.role)
			}

			called := false
			err := RBAC(managers...)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})(c)

			if tc.allowed {
				if err != nil || !called || rec.Code != http.StatusOK {
					t.Fatalf("expected pass-through, got err=%v called=%v code=%d", err, called, rec.Code)
				}
				return
			}
			if called {
				t.Fatal("should not reach next handler")
			}
			if !errors.Is(err, domain.ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
		})
	}
}
