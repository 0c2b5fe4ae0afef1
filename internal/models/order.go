package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the kitchen progress of a placed order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
)

// OrderStatuses lists every status in progression order
var OrderStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusCompleted}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in the kitchen workflow.
// The second result is false for completed and unknown statuses.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	default:
		return s, false
	}
}

// CartItem is a menu item together with the guest's quantity and notes
type CartItem struct {
	MenuItem
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// LineTotal returns price multiplied by quantity
func (c CartItem) LineTotal() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CustomerInfo tells the kitchen where to deliver an order
type CustomerInfo struct {
	TableNumber string `json:"tableNumber,omitempty"`
	RoomNumber  string `json:"roomNumber,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`
}

// Order is a snapshot of the cart taken at checkout
type Order struct {
	ID            string          `json:"id"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	CustomerInfo  CustomerInfo    `json:"customerInfo"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	EstimatedTime int             `json:"estimatedTime"` // minutes
}

// CartTotal sums price times quantity across items
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// EstimatedTime is the longest prep time among items, not their sum.
// An empty cart has an estimate of zero.
func EstimatedTime(items []CartItem) int {
	longest := 0
	for _, item := range items {
		if item.PrepTime > longest {
			longest = item.PrepTime
		}
	}
	return longest
}

// CloneItems returns a copy of items that shares no backing array with the input
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return nil
	}
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
