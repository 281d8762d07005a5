package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse carries a human readable status message
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: ok
	Message string `json:"message"`
}

// AccountResponse is the public view of an account
// swagger:model AccountResponse
type AccountResponse struct {
	// Account id
	// default: 1
	ID int64 `json:"id"`

	// Username
	// default: alice123
	Username string `json:"username"`

	// Email
	// default: alice@example.com
	Email string `json:"email"`

	// Creation time
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by register and login
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type
	// default: bearer
	TokenType string `json:"token_type"`

	// Account the token was issued for
	User AccountResponse `json:"user"`
}

func newAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

func newTokenResponse(res *services.AuthResult) TokenResponse {
	return TokenResponse{
		AccessToken: res.Token,
		TokenType:   "bearer",
		User:        newAccountResponse(res.Account),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, msg)
}
