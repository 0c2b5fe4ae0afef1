package service

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrItemUnavailable  = errors.New("menu item is currently unavailable")
	ErrCartItemNotFound = errors.New("item not in cart")
)

// CartSummary is the cart as shown to the guest
type CartSummary struct {
	Items         []models.CartItem `json:"items"`
	ItemCount     int               `json:"itemCount"`
	Total         decimal.Decimal   `json:"total"`
	EstimatedTime int               `json:"estimatedTime"`
}

// CartService handles the guest cart
type CartService struct {
	store  *state.Store
	logger *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(store *state.Store, logger *slog.Logger) *CartService {
	return &CartService{
		store:  store,
		logger: logger,
	}
}

// Summary returns the current cart with totals
func (s *CartService) Summary() CartSummary {
	return summarize(s.store.State().CartItems)
}

// Add puts quantity units of a menu item into the cart.
// Adding an item already in the cart merges with it and replaces its notes.
func (s *CartService) Add(menuItemID string, quantity int, notes string) (CartSummary, error) {
	if quantity <= 0 {
		return CartSummary{}, ErrInvalidQuantity
	}

	next, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		item, ok := current.MenuItem(menuItemID)
		if !ok {
			return nil, ErrMenuItemNotFound
		}
		if !item.Available {
			return nil, ErrItemUnavailable
		}
		return state.AddToCart{Item: item, Quantity: quantity, Notes: notes}, nil
	})
	if err != nil {
		return CartSummary{}, err
	}

	s.logger.Debug("added to cart", "menu_item_id", menuItemID, "quantity", quantity)
	return summarize(next.CartItems), nil
}

// Update sets the quantity of a cart line. A quantity of zero or less removes
// the line. Nil notes keep the current notes.
func (s *CartService) Update(menuItemID string, quantity int, notes *string) (CartSummary, error) {
	next, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		line, ok := current.CartItem(menuItemID)
		if !ok {
			return nil, ErrCartItemNotFound
		}
		if quantity <= 0 {
			return state.RemoveFromCart{ID: menuItemID}, nil
		}

		newNotes := line.Notes
		if notes != nil {
			newNotes = *notes
		}
		return state.UpdateCartItem{ID: menuItemID, Quantity: quantity, Notes: newNotes}, nil
	})
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(next.CartItems), nil
}

// Remove drops a line from the cart
func (s *CartService) Remove(menuItemID string) (CartSummary, error) {
	next, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if _, ok := current.CartItem(menuItemID); !ok {
			return nil, ErrCartItemNotFound
		}
		return state.RemoveFromCart{ID: menuItemID}, nil
	})
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(next.CartItems), nil
}

// Clear empties the cart
func (s *CartService) Clear() CartSummary {
	next := s.store.Dispatch(state.ClearCart{})
	return summarize(next.CartItems)
}

func summarize(items []models.CartItem) CartSummary {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return CartSummary{
		Items:         items,
		ItemCount:     count,
		Total:         models.CartTotal(items),
		EstimatedTime: models.EstimatedTime(items),
	}
}
