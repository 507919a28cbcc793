package handler

import "github.com/inkpress/blog-backend/internal/core/domain"

// --- Request types ---

type signupRequest struct {
	Name            string `json:"name"            validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Password        string `json:"password"        validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// --- Response types ---
// All success envelopes carry status:"success"; failures are rendered by the
// central error handler as {"status":"fail"|"error","message":...}.

type userData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token,omitempty"`
}

// signupResponse nests user and token under data, as returned on 201.
type signupResponse struct {
	Status string   `json:"status"`
	Data   userData `json:"data"`
}

// sessionResponse is the flat login / password-change envelope.
type sessionResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	User   *domain.User `json:"user"`
}
