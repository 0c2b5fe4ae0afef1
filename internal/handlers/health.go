package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	store   *state.Store
	storage string
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler. storage names the backend
// driver the datasets are mirrored to.
func NewHealthHandler(store *state.Store, storage string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage"`
	MenuItems int       `json:"menuItems"`
	Orders    int       `json:"orders"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current := h.store.State()
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Storage:   h.storage,
		MenuItems: len(current.MenuItems),
		Orders:    len(current.Orders),
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
