package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/seed"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/service"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
	"github.com/Lixing-Zhang/grand-hotel-dining/pkg/logger"
)

type testAPI struct {
	handler http.Handler
	store   *state.Store
	adapter *storage.Adapter
}

// newTestAPI wires the full stack on an in-memory backend with the built-in seed data
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log := logger.Discard()
	ctx := context.Background()

	adapter := storage.NewAdapter(storage.NewMemoryBackend(), log, 0)
	store := state.NewStore(state.Initial(), log)
	service.Bootstrap(ctx, adapter, store, seed.Default(), log)
	t.Cleanup(service.NewPersister(adapter, log).Attach(store))

	handler := NewRouter(RouterConfig{
		Store:         store,
		Catalog:       service.NewCatalogService(store, log),
		Cart:          service.NewCartService(store, log),
		Orders:        service.NewOrderService(store, log),
		Auth:          service.NewAuthService(store, adapter, log),
		StorageDriver: "memory",
		Logger:        log,
	})

	return &testAPI{handler: handler, store: store, adapter: adapter}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T) {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", w.Code, w.Body.String())
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, w.Code, w.Body.String())
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	expectStatus(t, w, want)
	response := decode[map[string]string](t, w)
	if response["error"] == "" {
		t.Error("expected error message in response")
	}
}
