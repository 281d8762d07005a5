package handlers

import (
	"net/http"

	"github.com/sbilibin2017/career-toolkit/internal/middlewares"
)

// NewMeHandler returns an HTTP handler describing the calling account.
// @Summary Current account
// @Description Returns the account the bearer token was issued for
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.AccountResponse "Current account"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /auth/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}

		writeJSON(w, http.StatusOK, newAccountResponse(account))
	}
}
