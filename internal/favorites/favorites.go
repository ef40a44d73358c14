package favorites

import (
	"context"

	types "teranga-storefront/internal/types/cart"
)

// FavoritesRepo интерфейс избранного пользователя
//
//go:generate mockgen -source=favorites.go -destination=../mocks/mock_favorites_repo.go -package=mocks
type FavoritesRepo interface {
	// Add добавляет товар в избранное, повторное добавление ничего не меняет
	Add(ctx context.Context, userID, productID string) error
	// Remove удаляет товар из избранного
	Remove(ctx context.Context, userID, productID string) error
	// GetByUserID возвращает избранное с данными товаров
	GetByUserID(ctx context.Context, userID string) ([]types.WishlistItem, error)
}
