package handlers

import (
	"net/http"
	"testing"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
)

func TestCartHandler_Flow(t *testing.T) {
	api := newTestAPI(t)

	empty := decode[service.CartSummary](t, api.do(t, http.MethodGet, "/api/cart", nil))
	if len(empty.Items) != 0 || empty.ItemCount != 0 {
		t.Fatalf("expected empty cart, got %+v", empty)
	}

	w := api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "1", "quantity": 2})
	expectStatus(t, w, http.StatusOK)
	w = api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "3", "notes": "medium rare"})
	expectStatus(t, w, http.StatusOK)

	summary := decode[service.CartSummary](t, w)
	if summary.ItemCount != 3 {
		t.Errorf("expected 3 items, got %d", summary.ItemCount)
	}
	if summary.Total.StringFixed(2) != "87.00" {
		t.Errorf("expected total 87.00, got %s", summary.Total.StringFixed(2))
	}
	if summary.EstimatedTime != 35 {
		t.Errorf("expected estimated time 35, got %d", summary.EstimatedTime)
	}

	w = api.do(t, http.MethodPut, "/api/cart/3", map[string]any{"quantity": 2})
	expectStatus(t, w, http.StatusOK)
	summary = decode[service.CartSummary](t, w)
	if summary.Items[1].Quantity != 2 || summary.Items[1].Notes != "medium rare" {
		t.Errorf("unexpected line after update: %+v", summary.Items[1])
	}

	w = api.do(t, http.MethodPut, "/api/cart/1", map[string]any{"quantity": 0})
	expectStatus(t, w, http.StatusOK)
	summary = decode[service.CartSummary](t, w)
	if len(summary.Items) != 1 || summary.Items[0].ID != "3" {
		t.Errorf("expected only item 3 left, got %+v", summary.Items)
	}

	w = api.do(t, http.MethodDelete, "/api/cart/3", nil)
	expectStatus(t, w, http.StatusOK)
	if summary = decode[service.CartSummary](t, w); len(summary.Items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(summary.Items))
	}
}

func TestCartHandler_Errors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown item", http.MethodPost, "/api/cart", map[string]any{"menuItemId": "999"}, http.StatusNotFound},
		{"unavailable item", http.MethodPost, "/api/cart", map[string]any{"menuItemId": "7"}, http.StatusBadRequest},
		{"negative quantity", http.MethodPost, "/api/cart", map[string]any{"menuItemId": "1", "quantity": -2}, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/cart", "not json", http.StatusBadRequest},
		{"update missing line", http.MethodPut, "/api/cart/1", map[string]any{"quantity": 1}, http.StatusNotFound},
		{"remove missing line", http.MethodDelete, "/api/cart/1", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, api.do(t, tt.method, tt.path, tt.body), tt.want)
		})
	}
}

func TestCartHandler_Clear(t *testing.T) {
	api := newTestAPI(t)

	expectStatus(t, api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "8"}), http.StatusOK)
	expectStatus(t, api.do(t, http.MethodPost, "/api/cart", map[string]any{"menuItemId": "9"}), http.StatusOK)

	w := api.do(t, http.MethodDelete, "/api/cart", nil)
	expectStatus(t, w, http.StatusOK)
	if summary := decode[service.CartSummary](t, w); len(summary.Items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(summary.Items))
	}
}
