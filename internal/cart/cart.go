package cart

import (
	"context"

	types "teranga-storefront/internal/types/cart"
)

// API - бэкенд корзины. Реализуется transport.CartClient
//
//go:generate mockgen -source=cart.go -destination=../mocks/mock_cart_api.go -package=mocks -mock_names=API=MockCartAPI
type API interface {
	// GetCart - GET /api/cart
	GetCart(ctx context.Context) (types.Snapshot, error)
	// AddItem - POST /api/cart/add
	AddItem(ctx context.Context, productID string, quantity int) error
	// UpdateItem - PUT /api/cart/update
	UpdateItem(ctx context.Context, productID string, quantity int) error
	// RemoveItem - DELETE /api/cart/remove/{product_id}
	RemoveItem(ctx context.Context, productID string) error
	// Clear - DELETE /api/cart/clear
	Clear(ctx context.Context) error
}

// Имена операций в OpError
const (
	OpFetch  = "fetch cart"
	OpAdd    = "add to cart"
	OpUpdate = "update quantity"
	OpRemove = "remove from cart"
	OpClear  = "clear cart"
)

// Тексты уведомлений
const (
	MsgAdded   = "Product added to cart"
	MsgUpdated = "Cart updated"
	MsgRemoved = "Product removed from cart"
	MsgCleared = "Cart cleared"

	MsgFetchFailed    = "Could not load your cart"
	MsgAddFailed      = "Could not add the product to your cart"
	MsgUpdateFailed   = "Could not update the quantity"
	MsgRemoveFailed   = "Could not remove the product"
	MsgClearFailed    = "Could not clear your cart"
	MsgBadQuantity    = "Quantity must be at least 1"
	MsgMissingProduct = "No product selected"
)
