package handlers

import (
	"net/http"

	"github.com/sbilibin2017/career-toolkit/internal/middlewares"
)

// PlaceholderResponse is returned by features that are not built yet
// swagger:model PlaceholderResponse
type PlaceholderResponse struct {
	// Message
	// default: Resume routes coming soon
	Message string `json:"message"`

	// Calling account id
	// default: 1
	UserID int64 `json:"user_id"`
}

// NewResumesHandler returns the placeholder handler for resume features.
// @Summary Resumes
// @Description Placeholder for resume features
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PlaceholderResponse "Placeholder"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Router /resumes [get]
func NewResumesHandler() http.HandlerFunc {
	return newPlaceholderHandler("Resume routes coming soon")
}

// NewInterviewsHandler returns the placeholder handler for interview features.
// @Summary Interviews
// @Description Placeholder for interview features
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PlaceholderResponse "Placeholder"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Router /interviews [get]
func NewInterviewsHandler() http.HandlerFunc {
	return newPlaceholderHandler("Interview routes coming soon")
}

func newPlaceholderHandler(msg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}
		writeJSON(w, http.StatusOK, PlaceholderResponse{Message: msg, UserID: account.ID})
	}
}
