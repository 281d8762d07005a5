package handlers

import "net/http"

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// Status
	// default: healthy
	Status string `json:"status"`

	// Application name
	// default: AI Career Toolkit
	App string `json:"app"`
}

// NewRootHandler returns a handler that confirms the API is up.
// @Summary Root
// @Tags system
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router / [get]
func NewRootHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, MessageResponse{Message: appName + " API is running!"})
	}
}

// NewHealthHandler returns the liveness check handler.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", App: appName})
	}
}
