package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-backend/internal/api/middleware"
	"github.com/inkpress/blog-backend/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. A gated
// handler reached without one means a wiring mistake; reject rather than
// proceed with a nil identity.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}
