package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-backend/internal/api/metrics"
	"github.com/inkpress/blog-backend/internal/core/domain"
	"github.com/inkpress/blog-backend/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the resolved user.
const UserContextKey = "auth_user"

const deniedMessage = "not authorized to do that"

// Auth gates protected routes. It extracts the Bearer token, verifies it, and
// resolves the subject against the user store; the resolved user is attached
// to the request context for handlers downstream. Every rejection is a 401
// with one generic message — callers never learn whether the token was
// missing, expired, forged, or pointed at a deleted account.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, deniedMessage)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, deniedMessage)
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				reason := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, deniedMessage)
			}

			// The subject may have been deleted after the token was issued.
			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, deniedMessage)
				}
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
