package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authlab/secure-api/internal/api/metrics"
	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/core/ports"
)

// Auth is the bearer-token gate: it verifies the JWT and injects the
// embedded subject and role into the request context. Rejections carry
// the domain token sentinels; the central error handler maps each
// reason to its message.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			claims, err := tokens.Verify(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(tokenReason(err)).Inc()
				return err
			}
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()

			c.Set("username", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

// tokenReason labels a verification failure for metrics.
func tokenReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrTokenSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	default:
		return "error"
	}
}
