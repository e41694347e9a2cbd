package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/admin-system/internal/core/domain"
)

// currentUser extracts the live identity attached by the Auth middleware.
// Its presence proves the guard ran; absence on a protected route means a
// wiring mistake, rejected with 401 rather than trusted.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
