package handlers

import "net/http"

// RootResponse identifies the API.
// swagger:model RootResponse
type RootResponse struct {
	// default: Plan Alimenticio Personalizado API
	Message string `json:"message"`
	// default: 1.0.0
	Version string `json:"version"`
}

// NewRootHandler answers the API root.
// @Summary API info
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.RootResponse
// @Router / [get]
func NewRootHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: "Plan Alimenticio Personalizado API",
			Version: version,
		})
	}
}
