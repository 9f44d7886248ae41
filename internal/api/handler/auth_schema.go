package handler

import "github.com/sounddesk/client-portal/internal/core/ports"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse keeps the original portal's wire shape: the token next to the
// public account fields.
type authResponse struct {
	Token   string `json:"token"`
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func newAuthResponse(result *ports.AuthResult) authResponse {
	return authResponse{
		Token:   result.Token,
		ID:      result.Client.ID,
		Name:    result.Client.Name,
		Email:   result.Client.Email,
		IsAdmin: result.Client.IsAdmin,
	}
}
