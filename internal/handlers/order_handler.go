package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
)

// OrderHandler handles guest order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// PlaceOrder handles POST /api/order
// The current cart becomes the order; the body carries the guest details.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CustomerInfo

	// An empty body is allowed, every customer field is optional
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, order, h.log)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(chi.URLParam(r, "orderId"))
	if err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, order, h.log)
}
