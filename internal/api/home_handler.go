package api

import (
	"net/http"

	"github.com/phrazzld/people-api/internal/api/shared"
)

// HomeHandler serves the service entry point.
type HomeHandler struct{}

// NewHomeHandler creates a HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home handles GET / with a fixed greeting.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HomeResponse{Hello: "World"})
}
