// Package state holds the single in-memory model of the ordering app and the
// reducer that every change goes through.
package state

import "github.com/Lixing-Zhang/grand-hotel-dining/internal/models"

// AppState is one immutable snapshot of the application.
// Slices in a snapshot are never written after the snapshot is produced;
// readers must treat them as read-only.
type AppState struct {
	MenuItems    []models.MenuItem `json:"menuItems"`
	Categories   []models.Category `json:"categories"`
	CartItems    []models.CartItem `json:"cartItems"`
	Orders       []models.Order    `json:"orders"`
	CurrentAdmin *models.Admin     `json:"currentAdmin"`
	IsAdminMode  bool              `json:"isAdminMode"`
}

// Initial returns the empty, logged-out state
func Initial() AppState {
	return AppState{
		MenuItems:  []models.MenuItem{},
		Categories: []models.Category{},
		CartItems:  []models.CartItem{},
		Orders:     []models.Order{},
	}
}

// MenuItem returns the catalog entry with the given id
func (s AppState) MenuItem(id string) (models.MenuItem, bool) {
	for _, item := range s.MenuItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Category returns the category with the given id
func (s AppState) Category(id string) (models.Category, bool) {
	for _, cat := range s.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// CartItem returns the cart line for the given menu item id
func (s AppState) CartItem(id string) (models.CartItem, bool) {
	for _, item := range s.CartItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.CartItem{}, false
}

// Order returns the order with the given id
func (s AppState) Order(id string) (models.Order, bool) {
	for _, order := range s.Orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// CategoryInUse reports whether any menu item references the category
func (s AppState) CategoryInUse(id string) bool {
	for _, item := range s.MenuItems {
		if item.Category == id {
			return true
		}
	}
	return false
}
