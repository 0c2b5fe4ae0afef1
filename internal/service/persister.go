package service

import (
	"context"
	"log/slog"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
)

// Persister mirrors menu items, categories and orders to storage after every
// transition that changes them. The cart and admin session stay in memory.
type Persister struct {
	adapter *storage.Adapter
	logger  *slog.Logger
}

// NewPersister creates a persister writing through adapter
func NewPersister(adapter *storage.Adapter, logger *slog.Logger) *Persister {
	return &Persister{
		adapter: adapter,
		logger:  logger,
	}
}

// Attach subscribes to store and returns the detach function
func (p *Persister) Attach(store *state.Store) func() {
	return store.Subscribe(p.OnChange)
}

// OnChange saves each persisted collection that differs between prev and next
func (p *Persister) OnChange(prev, next state.AppState) {
	changes := state.Diff(prev, next)
	ctx := context.Background()

	if changes.MenuItems {
		p.adapter.Save(ctx, storage.MenuItems, next.MenuItems)
	}
	if changes.Categories {
		p.adapter.Save(ctx, storage.Categories, next.Categories)
	}
	if changes.Orders {
		p.adapter.Save(ctx, storage.Orders, next.Orders)
	}
}
