package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cart   *service.CartService
	logger *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cart,
		logger: logger,
	}
}

type addToCartRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type updateCartRequest struct {
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.cart.Summary(), h.logger)
}

// AddItem handles POST /api/cart
// Quantity defaults to 1 when omitted.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	req := addToCartRequest{Quantity: 1}
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	summary, err := h.cart.Add(req.MenuItemID, req.Quantity, req.Notes)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, summary, h.logger)
}

// UpdateItem handles PUT /api/cart/{itemId}
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	summary, err := h.cart.Update(chi.URLParam(r, "itemId"), req.Quantity, req.Notes)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, summary, h.logger)
}

// RemoveItem handles DELETE /api/cart/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cart.Remove(chi.URLParam(r, "itemId"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, summary, h.logger)
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.cart.Clear(), h.logger)
}
