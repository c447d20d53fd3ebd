package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/authlab/secure-api/internal/core/domain"
)

// RBAC enforces role-based access control. It trusts the role the Auth
// middleware bound to the context and never re-verifies the token, so
// it must only be composed behind Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			for _, r := range allowedRoles {
				if domain.RoleAllowed(role, r) {
					return next(c)
				}
			}
			return domain.ErrInsufficientRole
		}
	}
}
