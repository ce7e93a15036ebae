package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/api/middleware"
	"github.com/voltride/rental-core/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware. A missing
// subject means the middleware never ran; reject with 401.
func ctxClaims(c echo.Context) (subject string, role domain.Role, err error) {
	subject, _ = c.Get(middleware.ContextSubject).(string)
	if subject == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.ContextRole).(domain.Role)
	if role == "" {
		role = domain.RoleRenter
	}
	return subject, role, nil
}

// ownerOrStaff lets renters touch only their own records.
func ownerOrStaff(c echo.Context, ownerID string) error {
	subject, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if role == domain.RoleRenter && subject != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

// bindAndValidate binds the request body and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
