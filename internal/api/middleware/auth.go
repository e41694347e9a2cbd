package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/admin-system/internal/api/metrics"
	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/ports"
	"github.com/adminpanel/admin-system/internal/core/token"
)

// Auth authenticates the bearer token and re-fetches the live user from
// the store. Handlers downstream see the freshly fetched identity, not the
// token's claims, so role changes and account deletion take effect on the
// next request despite stateless tokens.
func Auth(codec *token.SessionCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A correctly signed, unexpired token may still refer to a
			// deleted account. Same outward response as a bad token.
			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("stale_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			c.Set("user", user)
			c.Set("role", string(user.Role))

			return next(c)
		}
	}
}
