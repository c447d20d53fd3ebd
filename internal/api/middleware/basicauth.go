package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/authlab/secure-api/internal/api/metrics"
	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/core/ports"
)

// BasicAuth is the per-request credential gate. Every rejection looks
// identical to the client (401, generic invalid-credentials body,
// WWW-Authenticate challenge) whether the user is unknown, the password
// is wrong, or the header is absent. Nothing is retained between
// requests.
func BasicAuth(auth ports.AuthService, realm string) echo.MiddlewareFunc {
	if realm == "" {
		realm = "Restricted"
	}
	challenge := fmt.Sprintf("Basic realm=%q", realm)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, password, ok := c.Request().BasicAuth()
			if !ok {
				metrics.BasicAuthChecksTotal.WithLabelValues("failure").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
				return domain.ErrInvalidCredentials
			}

			user, err := auth.VerifyBasic(c.Request().Context(), username, password)
			if err != nil {
				metrics.BasicAuthChecksTotal.WithLabelValues("failure").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
				return err
			}
			metrics.BasicAuthChecksTotal.WithLabelValues("success").Inc()

			c.Set("username", user.Username)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
