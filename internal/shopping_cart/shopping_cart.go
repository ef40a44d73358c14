package shopping_cart

import (
	"context"

	types "teranga-storefront/internal/types/cart"
)

// ShoppingCartRepo интерфейс для работы репозитория корзины покупок
//
//go:generate mockgen -source=shopping_cart.go -destination=../mocks/mock_shopping_cart_repo.go -package=mocks
type ShoppingCartRepo interface {
	// AddItem добавляет товар в корзину; если он уже есть, количество суммируется.
	// ErrInsufficientStock, если итог превысит остаток
	AddItem(ctx context.Context, sessionID, productID string, quantity int) error
	// UpdateQuantity выставляет количество; ErrItemNotInCart, если позиции нет
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	// RemoveItem удаляет позицию целиком
	RemoveItem(ctx context.Context, sessionID, productID string) error
	// Clear очищает корзину сессии
	Clear(ctx context.Context, sessionID string) error
	// GetBySessionID получает позиции корзины вместе с ценой, названием и картинкой
	GetBySessionID(ctx context.Context, sessionID string) ([]types.LineItem, error)
}
