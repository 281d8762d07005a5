package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/middlewares"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/services"
	"github.com/sbilibin2017/career-toolkit/internal/validation"
)

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, account *models.Account, currentPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password, same rules as registration
	// required: true
	NewPassword string `json:"new_password"`
}

// NewChangePasswordHandler returns an HTTP handler that changes the caller's password.
// @Summary Change password
// @Description Replaces the password of the calling account after checking the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / weak password"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/password [put]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := svc.ChangePassword(r.Context(), account, req.CurrentPassword, req.NewPassword)
		if err != nil {
			var verr *validation.Error
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Message)
			case errors.Is(err, services.ErrInvalidCredentials):
				writeUnauthorized(w, "Incorrect password")
			case errors.Is(err, services.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, "Account not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
	}
}
