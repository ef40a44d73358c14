package kafka

import "time"

type EventType string

const (
	AddToCart      EventType = "addToCart"
	RemoveFromCart EventType = "removeFromCart"
	ClearCart      EventType = "clearCart"
	AddToWishlist  EventType = "addToWishlist"
)

// Event событие корзины или избранного для аналитики.
// Для гостевой корзины заполнен SessionID, для избранного - UserID.
type Event struct {
	SessionID string    `json:"session_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Type      EventType `json:"type"`
	ProductID string    `json:"product_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
