package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/career-toolkit/internal/logger"
	"github.com/sbilibin2017/career-toolkit/internal/middlewares"
	"github.com/sbilibin2017/career-toolkit/internal/models"
	"github.com/sbilibin2017/career-toolkit/internal/services"
)

// ProfileGetter reads the caller's profile.
type ProfileGetter interface {
	Get(ctx context.Context, accountID int64) (*models.Profile, error)
}

// ProfileUpdater edits the caller's profile.
type ProfileUpdater interface {
	Update(ctx context.Context, account *models.Account, upd models.ProfileUpdate) (*models.Profile, error)
}

// ProfileUpdateRequest represents a partial profile change. Omitted fields stay
// unchanged and a null field is cleared.
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	// Full name
	// default: Alice Example
	Name models.OptionalString `json:"name" swaggertype:"string"`

	// Career goals
	// default: Become a staff engineer
	CareerGoals models.OptionalString `json:"career_goals" swaggertype:"string"`

	// Education
	// default: BSc Computer Science
	Education models.OptionalString `json:"education" swaggertype:"string"`

	// Skills
	// default: Go, SQL
	Skills models.OptionalString `json:"skills" swaggertype:"string"`
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Description Returns the profile of the calling account
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [get]
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}

		profile, err := svc.Get(r.Context(), account.ID)
		if err != nil {
			writeProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for editing the caller's profile.
// @Summary Update profile
// @Description Applies the given fields to the profile of the calling account
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileUpdateRequest body handlers.ProfileUpdateRequest true "Profile fields to change"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} handlers.ErrorResponse "Profile not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account := middlewares.AccountFromContext(r.Context())
		if account == nil {
			writeUnauthorized(w, "Could not validate credentials")
			return
		}

		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		profile, err := svc.Update(r.Context(), account, models.ProfileUpdate{
			Name:        req.Name,
			CareerGoals: req.CareerGoals,
			Education:   req.Education,
			Skills:      req.Skills,
		})
		if err != nil {
			writeProfileError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

func writeProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "Profile not found")
		return
	}
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
