package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
)

// AdminHandler handles staff login and the kitchen order board
type AdminHandler struct {
	auth   *service.AuthService
	orders *service.OrderService
	log    *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(auth *service.AuthService, orders *service.OrderService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		auth:   auth,
		orders: orders,
		log:    log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type statusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// SessionResponse describes the admin session
type SessionResponse struct {
	IsAdminMode bool          `json:"isAdminMode"`
	Admin       *models.Admin `json:"admin,omitempty"`
}

func sessionResponse(admin *models.Admin, adminMode bool) SessionResponse {
	if admin == nil {
		return SessionResponse{IsAdminMode: adminMode}
	}
	// never echo the stored password
	public := *admin
	public.Password = ""
	return SessionResponse{IsAdminMode: adminMode, Admin: &public}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}

	admin, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, sessionResponse(&admin, true), h.log)
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	WriteJSON(w, http.StatusOK, sessionResponse(nil, false), h.log)
}

// Session handles GET /api/admin/session
func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, sessionResponse(h.auth.Session()), h.log)
}

// ListOrders handles GET /api/admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.orders.Board(), h.log)
}

// UpdateOrderStatus handles PUT /api/admin/orders/{orderId}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}

	order, err := h.orders.SetStatus(r.Context(), chi.URLParam(r, "orderId"), req.Status)
	if err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, order, h.log)
}

// AdvanceOrder handles POST /api/admin/orders/{orderId}/advance
func (h *AdminHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Advance(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		writeServiceError(w, r, err, h.log)
		return
	}
	WriteJSON(w, http.StatusOK, order, h.log)
}

// Dashboard handles GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.orders.Dashboard(), h.log)
}
