package state

import "github.com/Lixing-Zhang/grand-hotel-dining/internal/models"

// Reduce applies action to s and returns the next snapshot.
//
// Reduce is total: it never fails and never panics. Validation happens before
// dispatch. Collections that change are rebuilt into fresh slices so that
// earlier snapshots stay untouched; collections that do not change are shared
// with s. Unknown actions return s unchanged.
func Reduce(s AppState, action Action) AppState {
	switch a := action.(type) {
	case LoginAdmin:
		admin := a.Admin
		s.CurrentAdmin = &admin
		s.IsAdminMode = true

	case LogoutAdmin:
		s.CurrentAdmin = nil
		s.IsAdminMode = false

	case AddMenuItem:
		// Ids stay unique: a second item with a known id is ignored.
		if _, exists := s.MenuItem(a.Item.ID); exists {
			return s
		}
		s.MenuItems = appended(s.MenuItems, a.Item)

	case UpdateMenuItem:
		s.MenuItems = replaced(s.MenuItems,
			func(item models.MenuItem) bool { return item.ID == a.Item.ID },
			func(models.MenuItem) models.MenuItem { return a.Item },
		)

	case DeleteMenuItem:
		s.MenuItems = removed(s.MenuItems, func(item models.MenuItem) bool { return item.ID == a.ID })

	case AddCategory:
		if _, exists := s.Category(a.Category.ID); exists {
			return s
		}
		s.Categories = appended(s.Categories, a.Category)

	case UpdateCategory:
		s.Categories = replaced(s.Categories,
			func(cat models.Category) bool { return cat.ID == a.Category.ID },
			func(models.Category) models.Category { return a.Category },
		)

	case DeleteCategory:
		s.Categories = removed(s.Categories, func(cat models.Category) bool { return cat.ID == a.ID })

	case AddToCart:
		merge := func(item models.CartItem) models.CartItem {
			item.Quantity += a.Quantity
			item.Notes = a.Notes
			return item
		}
		if _, exists := s.CartItem(a.Item.ID); exists {
			s.CartItems = replaced(s.CartItems,
				func(item models.CartItem) bool { return item.ID == a.Item.ID }, merge)
		} else {
			s.CartItems = appended(s.CartItems, models.CartItem{
				MenuItem: a.Item,
				Quantity: a.Quantity,
				Notes:    a.Notes,
			})
		}

	case UpdateCartItem:
		s.CartItems = replaced(s.CartItems,
			func(item models.CartItem) bool { return item.ID == a.ID },
			func(item models.CartItem) models.CartItem {
				item.Quantity = a.Quantity
				item.Notes = a.Notes
				return item
			},
		)

	case RemoveFromCart:
		s.CartItems = removed(s.CartItems, func(item models.CartItem) bool { return item.ID == a.ID })

	case ClearCart:
		s.CartItems = []models.CartItem{}

	case PlaceOrder:
		order := a.Order
		order.Items = models.CloneItems(order.Items)
		s.Orders = appended(s.Orders, order)
		s.CartItems = []models.CartItem{}

	case UpdateOrderStatus:
		s.Orders = replaced(s.Orders,
			func(order models.Order) bool { return order.ID == a.ID },
			func(order models.Order) models.Order {
				order.Status = a.Status
				return order
			},
		)

	case LoadData:
		if a.MenuItems != nil {
			s.MenuItems = cloned(*a.MenuItems)
		}
		if a.Categories != nil {
			s.Categories = cloned(*a.Categories)
		}
		if a.CartItems != nil {
			s.CartItems = cloned(*a.CartItems)
		}
		if a.Orders != nil {
			s.Orders = cloned(*a.Orders)
		}

	default:
		return s
	}

	return s
}

// appended returns a new slice holding xs followed by x.
// It never writes into the backing array of xs.
func appended[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

// replaced rewrites the first element matching match.
// xs itself is returned when nothing matches.
func replaced[T any](xs []T, match func(T) bool, with func(T) T) []T {
	for i, x := range xs {
		if match(x) {
			out := cloned(xs)
			out[i] = with(x)
			return out
		}
	}
	return xs
}

// removed drops every element matching match.
// xs itself is returned when nothing matches.
func removed[T any](xs []T, match func(T) bool) []T {
	hit := false
	for _, x := range xs {
		if match(x) {
			hit = true
			break
		}
	}
	if !hit {
		return xs
	}

	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !match(x) {
			out = append(out, x)
		}
	}
	return out
}

func cloned[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}
