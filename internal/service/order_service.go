package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrOrderCompleted = errors.New("order is already completed")
)

// completedShown is how many completed orders the order board keeps
const completedShown = 5

// OrderBoard is the kitchen view of orders
type OrderBoard struct {
	Active         []models.Order `json:"active"`
	Completed      []models.Order `json:"completed"`
	ActiveCount    int            `json:"activeCount"`
	CompletedCount int            `json:"completedCount"`
}

// DashboardStats are the counters on the admin dashboard tabs
type DashboardStats struct {
	ActiveOrders int `json:"activeOrders"`
	MenuItems    int `json:"menuItems"`
	Categories   int `json:"categories"`
}

// OrderService handles checkout and the order lifecycle
type OrderService struct {
	store  *state.Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewOrderService creates a new order service
func NewOrderService(store *state.Store, logger *slog.Logger) *OrderService {
	return &OrderService{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  generateID,
	}
}

// PlaceOrder turns the current cart into a pending order and empties the cart.
// Total and estimated time are fixed at this point.
func (s *OrderService) PlaceOrder(ctx context.Context, info models.CustomerInfo) (models.Order, error) {
	var order models.Order
	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		cart := current.CartItems
		if len(cart) == 0 {
			return nil, ErrEmptyCart
		}

		order = models.Order{
			ID:    s.newID(),
			Items: models.CloneItems(cart),
			Total: models.CartTotal(cart),
			CustomerInfo: models.CustomerInfo{
				TableNumber: strings.TrimSpace(info.TableNumber),
				RoomNumber:  strings.TrimSpace(info.RoomNumber),
				ContactInfo: strings.TrimSpace(info.ContactInfo),
			},
			Status:        models.StatusPending,
			CreatedAt:     s.now().UTC(),
			EstimatedTime: models.EstimatedTime(cart),
		}
		return state.PlaceOrder{Order: order}, nil
	})
	if err != nil {
		return models.Order{}, err
	}

	s.logger.InfoContext(ctx, "order placed",
		"order_id", order.ID,
		"items_count", len(order.Items),
		"total", order.Total.StringFixed(2),
		"estimated_minutes", order.EstimatedTime,
	)
	return order, nil
}

// GetOrder returns an order by its ID
func (s *OrderService) GetOrder(id string) (models.Order, error) {
	order, ok := s.store.State().Order(id)
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// Board splits orders into active ones and the most recent completed ones
func (s *OrderService) Board() OrderBoard {
	board := OrderBoard{
		Active:    []models.Order{},
		Completed: []models.Order{},
	}
	for _, order := range s.store.State().Orders {
		if order.Status == models.StatusCompleted {
			board.Completed = append(board.Completed, order)
		} else {
			board.Active = append(board.Active, order)
		}
	}
	board.ActiveCount = len(board.Active)
	board.CompletedCount = len(board.Completed)
	if len(board.Completed) > completedShown {
		board.Completed = board.Completed[len(board.Completed)-completedShown:]
	}
	return board
}

// Dashboard returns the admin tab counters
func (s *OrderService) Dashboard() DashboardStats {
	current := s.store.State()
	active := 0
	for _, order := range current.Orders {
		if order.Status != models.StatusCompleted {
			active++
		}
	}
	return DashboardStats{
		ActiveOrders: active,
		MenuItems:    len(current.MenuItems),
		Categories:   len(current.Categories),
	}
}

// SetStatus sets any known status, without enforcing the kitchen workflow
func (s *OrderService) SetStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrInvalidStatus
	}

	return s.updateStatus(ctx, id, func(models.OrderStatus) (models.OrderStatus, error) {
		return status, nil
	})
}

// Advance moves an order one step along pending, preparing, ready, completed
func (s *OrderService) Advance(ctx context.Context, id string) (models.Order, error) {
	return s.updateStatus(ctx, id, func(status models.OrderStatus) (models.OrderStatus, error) {
		next, ok := status.Next()
		if ok {
			return next, nil
		}
		if status == models.StatusCompleted {
			return "", ErrOrderCompleted
		}
		return "", ErrInvalidStatus
	})
}

// updateStatus picks the new status from the order's current one and applies
// it in a single store update
func (s *OrderService) updateStatus(ctx context.Context, id string, pick func(models.OrderStatus) (models.OrderStatus, error)) (models.Order, error) {
	next, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		order, ok := current.Order(id)
		if !ok {
			return nil, ErrOrderNotFound
		}
		status, err := pick(order.Status)
		if err != nil {
			return nil, err
		}
		return state.UpdateOrderStatus{ID: id, Status: status}, nil
	})
	if err != nil {
		return models.Order{}, err
	}

	order, _ := next.Order(id)
	s.logger.InfoContext(ctx, "order status updated", "order_id", id, "status", order.Status)
	return order, nil
}
