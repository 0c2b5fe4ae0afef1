package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
	"github.com/Lixing-Zhang/grand-hotel-dining/pkg/logger"
)

// countingBackend records writes per key on top of an in-memory backend
type countingBackend struct {
	*storage.MemoryBackend
	mu   sync.Mutex
	sets map[string]int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{
		MemoryBackend: storage.NewMemoryBackend(),
		sets:          make(map[string]int),
	}
}

func (c *countingBackend) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.sets[key]++
	c.mu.Unlock()
	return c.MemoryBackend.Set(ctx, key, value)
}

func (c *countingBackend) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets[key]
}

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "a", Name: "Tomato Soup", Description: "Roasted tomatoes and basil", Price: decimal.NewFromInt(10), Category: "starters", Available: true, IsRecommended: true, PrepTime: 10},
		{ID: "b", Name: "Club Sandwich", Description: "Chicken, bacon and egg", Price: decimal.NewFromInt(5), Category: "mains", Available: true, IsSpecial: true, PrepTime: 20},
		{ID: "c", Name: "Lobster Bisque", Description: "Rich and creamy", Price: decimal.RequireFromString("22.50"), Category: "starters", Available: false, IsRecommended: true, PrepTime: 25},
		{ID: "d", Name: "Steak Frites", Description: "Sirloin with fries", Price: decimal.NewFromInt(30), Category: "mains", Available: true, IsRecommended: true, IsSpecial: true, PrepTime: 30},
	}
}

func testCategories() []models.Category {
	return []models.Category{
		{ID: "mains", Name: "Mains", Description: "Hearty plates", SortOrder: 2},
		{ID: "starters", Name: "Starters", Description: "To begin", SortOrder: 1},
		{ID: "drinks", Name: "Drinks", Description: "Bar", SortOrder: 2},
	}
}

func newTestStore() *state.Store {
	s := state.Initial()
	s.MenuItems = testMenu()
	s.Categories = testCategories()
	return state.NewStore(s, logger.Discard())
}
