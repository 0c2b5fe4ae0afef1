package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/pkg/logger"
)

// A cart line added while an order is being built must end up either in the
// order or in the cart afterwards, never in neither.
func TestPlaceOrder_ConcurrentAddIsNotLost(t *testing.T) {
	store := newTestStore()
	cart := NewCartService(store, logger.Discard())
	orders := NewOrderService(store, logger.Discard())

	_, err := cart.Add("a", 1, "")
	require.NoError(t, err)

	var (
		wg     sync.WaitGroup
		addErr error
	)
	orders.newID = func() string {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, addErr = cart.Add("b", 2, "")
		}()
		// give the concurrent add every chance to land mid-checkout
		time.Sleep(20 * time.Millisecond)
		return "order-1"
	}

	order, err := orders.PlaceOrder(context.Background(), models.CustomerInfo{TableNumber: "5"})
	require.NoError(t, err)
	wg.Wait()
	require.NoError(t, addErr)

	inOrder := false
	for _, item := range order.Items {
		inOrder = inOrder || item.ID == "b"
	}
	_, inCart := store.State().CartItem("b")

	assert.True(t, inOrder != inCart, "item b in order=%v, in cart=%v", inOrder, inCart)
	assert.True(t, order.Total.Equal(models.CartTotal(order.Items)), "total matches the ordered lines")
	if !inOrder {
		assert.Len(t, order.Items, 1)
	}
}

// Deleting a category while menu items are being created in it must never
// leave an item pointing at a missing category.
func TestCatalog_ConcurrentDeleteCategoryKeepsReferences(t *testing.T) {
	for round := 0; round < 20; round++ {
		svc := NewCatalogService(newTestStore(), logger.Discard())

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _ = svc.CreateMenuItem(models.MenuItem{
					ID:          fmt.Sprintf("drink-%d", i),
					Name:        "Lemonade",
					Description: "Fresh",
					Price:       decimal.NewFromInt(4),
					Category:    "drinks",
				})
			}(i)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.DeleteCategory("drinks")
		}()
		wg.Wait()

		current := svc.store.State()
		for _, item := range current.MenuItems {
			_, ok := current.Category(item.Category)
			assert.True(t, ok, "round %d: item %s references missing category %s", round, item.ID, item.Category)
		}
	}
}
