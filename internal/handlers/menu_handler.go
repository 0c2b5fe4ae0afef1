package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
)

// MenuHandler handles menu and category HTTP requests
type MenuHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalog *service.CatalogService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// menuItemRequest is the body of menu item create and update calls.
// Available defaults to true when omitted.
type menuItemRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	IsRecommended bool            `json:"isRecommended"`
	IsSpecial     bool            `json:"isSpecial"`
	Available     *bool           `json:"available"`
	PrepTime      int             `json:"prepTime"`
}

func (req menuItemRequest) toModel() models.MenuItem {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return models.MenuItem{
		ID:            req.ID,
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		Category:      req.Category,
		Image:         strings.TrimSpace(req.Image),
		IsRecommended: req.IsRecommended,
		IsSpecial:     req.IsSpecial,
		Available:     available,
		PrepTime:      req.PrepTime,
	}
}

// ListMenu handles GET /api/menu
// Query parameters: category (id) and q (search term)
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	filter := service.MenuFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}
	WriteJSON(w, http.StatusOK, h.catalog.ListMenu(filter), h.logger)
}

// Featured handles GET /api/menu/featured
func (h *MenuHandler) Featured(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.Featured(), h.logger)
}

// GetMenuItem handles GET /api/menu/{itemId}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetMenuItem(chi.URLParam(r, "itemId"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.logger)
}

// ListCategories handles GET /api/categories
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.Categories(), h.logger)
}

// AllMenuItems handles GET /api/admin/menu, unavailable items included
func (h *MenuHandler) AllMenuItems(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.catalog.AllMenuItems(), h.logger)
}

// CreateMenuItem handles POST /api/admin/menu
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	item, err := h.catalog.CreateMenuItem(req.toModel())
	if err != nil {
		h.writeMenuItemError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, item, h.logger)
}

// UpdateMenuItem handles PUT /api/admin/menu/{itemId}
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	req.ID = chi.URLParam(r, "itemId")

	item, err := h.catalog.UpdateMenuItem(req.toModel())
	if err != nil {
		h.writeMenuItemError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.logger)
}

// DeleteMenuItem handles DELETE /api/admin/menu/{itemId}
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteMenuItem(chi.URLParam(r, "itemId")); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeMenuItemError reports an unknown category on a menu item as a bad
// request rather than a missing resource.
func (h *MenuHandler) writeMenuItemError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrCategoryNotFound) {
		WriteError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	writeServiceError(w, r, err, h.logger)
}

// CreateCategory handles POST /api/admin/categories
func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.Category
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	cat, err := h.catalog.CreateCategory(req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusCreated, cat, h.logger)
}

// UpdateCategory handles PUT /api/admin/categories/{categoryId}
func (h *MenuHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.Category
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	req.ID = chi.URLParam(r, "categoryId")

	cat, err := h.catalog.UpdateCategory(req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	WriteJSON(w, http.StatusOK, cat, h.logger)
}

// DeleteCategory handles DELETE /api/admin/categories/{categoryId}
// Returns 409 while menu items still reference the category.
func (h *MenuHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(chi.URLParam(r, "categoryId")); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
