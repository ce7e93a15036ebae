package middleware

import (
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/voltride/rental-core/internal/core/domain"
)

// RBAC lets the request through only when the role set by Auth is one of
// allowed. Rejections return domain.ErrForbidden for the error handler to
// render as 403.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	allowed = slices.Clone(allowed)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if !slices.Contains(allowed, role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
