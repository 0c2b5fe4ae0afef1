package state

import "log/slog"

// Changes lists which parts of the state differ between two snapshots
type Changes struct {
	MenuItems  bool
	Categories bool
	CartItems  bool
	Orders     bool
	Session    bool
}

// Any reports whether anything changed
func (c Changes) Any() bool {
	return c.MenuItems || c.Categories || c.CartItems || c.Orders || c.Session
}

// LogValue lists the changed parts, for debug logging
func (c Changes) LogValue() slog.Value {
	parts := make([]string, 0, 5)
	for _, part := range []struct {
		name    string
		changed bool
	}{
		{"menuItems", c.MenuItems},
		{"categories", c.Categories},
		{"cartItems", c.CartItems},
		{"orders", c.Orders},
		{"session", c.Session},
	} {
		if part.changed {
			parts = append(parts, part.name)
		}
	}
	return slog.AnyValue(parts)
}

// Diff compares two snapshots produced by the same store.
// It relies on Reduce rebuilding a collection whenever it changes, so a
// collection counts as changed when its length or backing array differs.
func Diff(prev, next AppState) Changes {
	return Changes{
		MenuItems:  sliceChanged(prev.MenuItems, next.MenuItems),
		Categories: sliceChanged(prev.Categories, next.Categories),
		CartItems:  sliceChanged(prev.CartItems, next.CartItems),
		Orders:     sliceChanged(prev.Orders, next.Orders),
		Session:    prev.IsAdminMode != next.IsAdminMode || prev.CurrentAdmin != next.CurrentAdmin,
	}
}

func sliceChanged[T any](prev, next []T) bool {
	if len(prev) != len(next) {
		return true
	}
	if len(prev) == 0 {
		return false
	}
	return &prev[0] != &next[0]
}
