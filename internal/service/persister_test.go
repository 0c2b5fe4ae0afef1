package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
	"github.com/Lixing-Zhang/grand-hotel-dining/pkg/logger"
)

func TestPersister_SavesChangedCollections(t *testing.T) {
	ctx := context.Background()
	backend := newCountingBackend()
	adapter := storage.NewAdapter(backend, logger.Discard(), 0)
	store := newTestStore()

	detach := NewPersister(adapter, logger.Discard()).Attach(store)

	// cart and session changes stay in memory
	store.Dispatch(state.AddToCart{Item: testMenu()[0], Quantity: 1})
	store.Dispatch(state.LoginAdmin{Admin: models.Admin{ID: "1"}})
	for _, d := range allDatasets {
		assert.Equal(t, 0, backend.count(key(t, d)), "%s written", d)
	}

	store.Dispatch(state.AddMenuItem{Item: models.MenuItem{ID: "e", Name: "Tea", Category: "drinks", Price: decimal.NewFromInt(3)}})
	assert.Equal(t, 1, backend.count(key(t, storage.MenuItems)))

	store.Dispatch(state.DeleteCategory{ID: "drinks"})
	assert.Equal(t, 1, backend.count(key(t, storage.Categories)))

	order := models.Order{ID: "o1", Items: store.State().CartItems, Status: models.StatusPending}
	store.Dispatch(state.PlaceOrder{Order: order})
	assert.Equal(t, 1, backend.count(key(t, storage.Orders)))
	assert.Equal(t, 1, backend.count(key(t, storage.MenuItems)), "unchanged collections are not rewritten")

	stored := storage.Load(ctx, adapter, storage.Orders, []models.Order{})
	require.Len(t, stored, 1)
	assert.Equal(t, "o1", stored[0].ID)

	detach()
	store.Dispatch(state.UpdateOrderStatus{ID: "o1", Status: models.StatusReady})
	assert.Equal(t, 1, backend.count(key(t, storage.Orders)), "detached persister stops writing")
}

func TestPersister_NoOpTransitionWritesNothing(t *testing.T) {
	backend := newCountingBackend()
	adapter := storage.NewAdapter(backend, logger.Discard(), 0)
	store := newTestStore()
	NewPersister(adapter, logger.Discard()).Attach(store)

	store.Dispatch(state.UpdateOrderStatus{ID: "missing", Status: models.StatusReady})
	store.Dispatch(state.DeleteMenuItem{ID: "missing"})

	assert.Equal(t, 0, backend.count(key(t, storage.Orders)))
	assert.Equal(t, 0, backend.count(key(t, storage.MenuItems)))
}
