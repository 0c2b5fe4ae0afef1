package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	api := newTestAPI(t)

	// Empty cart
	expectError(t, api.do(t, http.MethodPost, "/api/order", map[string]string{"tableNumber": "4"}), http.StatusBadRequest)

	expectStatus(t, api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "4", "quantity": 2}), http.StatusOK)
	expectStatus(t, api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "8"}), http.StatusOK)

	w := api.do(t, http.MethodPost, "/api/order", map[string]string{"roomNumber": " 1204 ", "contactInfo": "555-0100"})
	expectStatus(t, w, http.StatusCreated)

	order := decode[models.Order](t, w)
	if order.ID == "" {
		t.Error("order ID is empty")
	}
	if order.Status != models.StatusPending {
		t.Errorf("expected pending, got %s", order.Status)
	}
	if order.Total.StringFixed(2) != "70.50" {
		t.Errorf("expected total 70.50, got %s", order.Total.StringFixed(2))
	}
	if order.EstimatedTime != 25 {
		t.Errorf("expected estimated time 25, got %d", order.EstimatedTime)
	}
	if order.CustomerInfo.RoomNumber != "1204" {
		t.Errorf("expected room 1204, got %q", order.CustomerInfo.RoomNumber)
	}
	if len(order.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(order.Items))
	}

	cart := decode[service.CartSummary](t, api.do(t, http.MethodGet, "/api/cart", nil))
	if len(cart.Items) != 0 {
		t.Errorf("expected empty cart after order, got %d lines", len(cart.Items))
	}

	w = api.do(t, http.MethodGet, "/api/order/"+order.ID, nil)
	expectStatus(t, w, http.StatusOK)
	if got := decode[models.Order](t, w); got.ID != order.ID {
		t.Errorf("expected order %s, got %s", order.ID, got.ID)
	}

	stored := storage.Load(context.Background(), api.adapter, storage.Orders, []models.Order{})
	if len(stored) != 1 || stored[0].ID != order.ID {
		t.Errorf("expected order persisted, got %+v", stored)
	}
}

func TestOrderHandler_EmptyBody(t *testing.T) {
	api := newTestAPI(t)
	expectStatus(t, api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "6"}), http.StatusOK)

	expectStatus(t, api.do(t, http.MethodPost, "/api/order", nil), http.StatusCreated)
}

func TestOrderHandler_GetOrderNotFound(t *testing.T) {
	api := newTestAPI(t)
	expectError(t, api.do(t, http.MethodGet, "/api/order/missing", nil), http.StatusNotFound)
}
