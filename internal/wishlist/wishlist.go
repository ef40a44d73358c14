package wishlist

import (
	"context"

	types "teranga-storefront/internal/types/cart"
)

// API - бэкенд избранного. Реализуется transport.WishlistClient
//
//go:generate mockgen -source=wishlist.go -destination=../mocks/mock_wishlist_api.go -package=mocks -mock_names=API=MockWishlistAPI,Authenticator=MockAuthenticator
type API interface {
	// GetWishlist - GET /api/wishlist
	GetWishlist(ctx context.Context) (types.WishlistSnapshot, error)
	// AddItem - POST /api/wishlist/add/{product_id}
	AddItem(ctx context.Context, productID string) error
	// RemoveItem - DELETE /api/wishlist/remove/{product_id}
	RemoveItem(ctx context.Context, productID string) error
}

// Authenticator сообщает, вошел ли пользователь. Реализуется auth.State
type Authenticator interface {
	IsAuthenticated() bool
}

const (
	OpFetch  = "fetch wishlist"
	OpAdd    = "add to wishlist"
	OpRemove = "remove from wishlist"
)

const (
	MsgAdded   = "Added to your wishlist"
	MsgRemoved = "Removed from your wishlist"

	MsgSignIn         = "Please sign in to save products to your wishlist"
	MsgFetchFailed    = "Could not load your wishlist"
	MsgAddFailed      = "Could not add the product to your wishlist"
	MsgRemoveFailed   = "Could not remove the product from your wishlist"
	MsgMissingProduct = "No product selected"
)
