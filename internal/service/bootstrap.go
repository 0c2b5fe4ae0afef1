package service

import (
	"context"
	"log/slog"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/seed"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
)

// BootstrapResult reports which datasets were filled from seed data
type BootstrapResult struct {
	Seeded []storage.Dataset
}

// Bootstrap loads every dataset, substitutes seed data for empty menu items,
// categories and admins, writes the substituted datasets back, and loads the
// result into the store. Orders are never seeded.
func Bootstrap(ctx context.Context, adapter *storage.Adapter, store *state.Store, seeds seed.Data, logger *slog.Logger) BootstrapResult {
	var result BootstrapResult

	menuItems := storage.Load(ctx, adapter, storage.MenuItems, []models.MenuItem{})
	categories := storage.Load(ctx, adapter, storage.Categories, []models.Category{})
	orders := storage.Load(ctx, adapter, storage.Orders, []models.Order{})
	admins := storage.Load(ctx, adapter, storage.Admins, []models.Admin{})

	if len(menuItems) == 0 {
		menuItems = seeds.MenuItems
		adapter.Save(ctx, storage.MenuItems, menuItems)
		result.Seeded = append(result.Seeded, storage.MenuItems)
	}
	if len(categories) == 0 {
		categories = seeds.Categories
		adapter.Save(ctx, storage.Categories, categories)
		result.Seeded = append(result.Seeded, storage.Categories)
	}
	if len(admins) == 0 {
		adapter.Save(ctx, storage.Admins, seeds.Admins)
		result.Seeded = append(result.Seeded, storage.Admins)
	}

	if menuItems == nil {
		menuItems = []models.MenuItem{}
	}
	if categories == nil {
		categories = []models.Category{}
	}
	if orders == nil {
		orders = []models.Order{}
	}

	store.Dispatch(state.LoadData{
		MenuItems:  &menuItems,
		Categories: &categories,
		Orders:     &orders,
	})

	logger.InfoContext(ctx, "state loaded",
		"menu_items", len(menuItems),
		"categories", len(categories),
		"orders", len(orders),
		"seeded", result.Seeded,
	)
	return result
}
