package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkpress/blog-backend/internal/api/metrics"
	"github.com/inkpress/blog-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a new account and returns it with a signed token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  signupResponse
// @Router       /signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusCreated, signupResponse{
		Status: "success",
		Data:   userData{User: user, Token: token},
	})
}

// Login verifies credentials and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, sessionResponse{
		Status: "success",
		Token:  token,
		User:   user,
	})
}

// UpdatePassword changes the authenticated user's password. Runs behind the
// Auth middleware.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /updatePassword [patch]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, updated, err := h.authService.UpdatePassword(c.Request().Context(), ports.UpdatePasswordInput{
		UserID:          user.ID,
		Password:        req.Password,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}

	metrics.PasswordChangesTotal.Inc()

	return c.JSON(http.StatusOK, sessionResponse{
		Status: "success",
		Token:  token,
		User:   updated,
	})
}

// Me returns the authenticated user. Runs behind the Auth middleware.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signupResponse{
		Status: "success",
		Data:   userData{User: user},
	})
}
