package state

import "github.com/Lixing-Zhang/grand-hotel-dining/internal/models"

// ActionKind identifies a transition handled by Reduce
type ActionKind int

const (
	KindLoginAdmin ActionKind = iota
	KindLogoutAdmin
	KindAddMenuItem
	KindUpdateMenuItem
	KindDeleteMenuItem
	KindAddCategory
	KindUpdateCategory
	KindDeleteCategory
	KindAddToCart
	KindUpdateCartItem
	KindRemoveFromCart
	KindClearCart
	KindPlaceOrder
	KindUpdateOrderStatus
	KindLoadData

	numActionKinds
)

var kindNames = [...]string{
	KindLoginAdmin:        "LOGIN_ADMIN",
	KindLogoutAdmin:       "LOGOUT_ADMIN",
	KindAddMenuItem:       "ADD_MENU_ITEM",
	KindUpdateMenuItem:    "UPDATE_MENU_ITEM",
	KindDeleteMenuItem:    "DELETE_MENU_ITEM",
	KindAddCategory:       "ADD_CATEGORY",
	KindUpdateCategory:    "UPDATE_CATEGORY",
	KindDeleteCategory:    "DELETE_CATEGORY",
	KindAddToCart:         "ADD_TO_CART",
	KindUpdateCartItem:    "UPDATE_CART_ITEM",
	KindRemoveFromCart:    "REMOVE_FROM_CART",
	KindClearCart:         "CLEAR_CART",
	KindPlaceOrder:        "PLACE_ORDER",
	KindUpdateOrderStatus: "UPDATE_ORDER_STATUS",
	KindLoadData:          "LOAD_DATA",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Action is a state transition request.
// The set of actions is closed: only types in this package implement it.
type Action interface {
	Kind() ActionKind
	action()
}

type LoginAdmin struct {
	Admin models.Admin
}

type LogoutAdmin struct{}

type AddMenuItem struct {
	Item models.MenuItem
}

type UpdateMenuItem struct {
	Item models.MenuItem
}

type DeleteMenuItem struct {
	ID string
}

type AddCategory struct {
	Category models.Category
}

type UpdateCategory struct {
	Category models.Category
}

type DeleteCategory struct {
	ID string
}

// AddToCart merges into an existing cart line with the same item id.
// Notes always replace the previous notes, an empty value included.
type AddToCart struct {
	Item     models.MenuItem
	Quantity int
	Notes    string
}

// UpdateCartItem sets quantity and notes absolutely, it is not a delta
type UpdateCartItem struct {
	ID       string
	Quantity int
	Notes    string
}

type RemoveFromCart struct {
	ID string
}

type ClearCart struct{}

// PlaceOrder appends a fully built order and empties the cart.
// Total and estimated time are computed by the caller.
type PlaceOrder struct {
	Order models.Order
}

// UpdateOrderStatus sets the status without checking the transition
type UpdateOrderStatus struct {
	ID     string
	Status models.OrderStatus
}

// LoadData replaces every collection that is non-nil. Used at startup.
type LoadData struct {
	MenuItems  *[]models.MenuItem
	Categories *[]models.Category
	CartItems  *[]models.CartItem
	Orders     *[]models.Order
}

func (LoginAdmin) Kind() ActionKind        { return KindLoginAdmin }
func (LogoutAdmin) Kind() ActionKind       { return KindLogoutAdmin }
func (AddMenuItem) Kind() ActionKind       { return KindAddMenuItem }
func (UpdateMenuItem) Kind() ActionKind    { return KindUpdateMenuItem }
func (DeleteMenuItem) Kind() ActionKind    { return KindDeleteMenuItem }
func (AddCategory) Kind() ActionKind       { return KindAddCategory }
func (UpdateCategory) Kind() ActionKind    { return KindUpdateCategory }
func (DeleteCategory) Kind() ActionKind    { return KindDeleteCategory }
func (AddToCart) Kind() ActionKind         { return KindAddToCart }
func (UpdateCartItem) Kind() ActionKind    { return KindUpdateCartItem }
func (RemoveFromCart) Kind() ActionKind    { return KindRemoveFromCart }
func (ClearCart) Kind() ActionKind         { return KindClearCart }
func (PlaceOrder) Kind() ActionKind        { return KindPlaceOrder }
func (UpdateOrderStatus) Kind() ActionKind { return KindUpdateOrderStatus }
func (LoadData) Kind() ActionKind          { return KindLoadData }

func (LoginAdmin) action()        {}
func (LogoutAdmin) action()       {}
func (AddMenuItem) action()       {}
func (UpdateMenuItem) action()    {}
func (DeleteMenuItem) action()    {}
func (AddCategory) action()       {}
func (UpdateCategory) action()    {}
func (DeleteCategory) action()    {}
func (AddToCart) action()         {}
func (UpdateCartItem) action()    {}
func (RemoveFromCart) action()    {}
func (ClearCart) action()         {}
func (PlaceOrder) action()        {}
func (UpdateOrderStatus) action() {}
func (LoadData) action()          {}
