package favorites

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

type FavoritesDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewFavoritesDBRepository(db *sql.DB, logger *zap.SugaredLogger) *FavoritesDBRepository {
	return &FavoritesDBRepository{
		DB:     db,
		Logger: logger,
	}
}

func (fr *FavoritesDBRepository) Add(ctx context.Context, userID, productID string) error {
	query := `
	INSERT INTO wishlist_items(user_id, product_id)
	VALUES ($1, $2) ON CONFLICT (user_id, product_id)
	DO NOTHING
`
	if _, err := fr.DB.ExecContext(ctx, query, userID, productID); err != nil {
		fr.Logger.Errorf("Ошибка при добавлении в избранное: %v", err)
		return myErr.ErrDBInternal
	}

	return nil
}

func (fr *FavoritesDBRepository) Remove(ctx context.Context, userID, productID string) error {
	query := `
	DELETE FROM wishlist_items
	WHERE user_id = $1 AND product_id = $2
`
	if _, err := fr.DB.ExecContext(ctx, query, userID, productID); err != nil {
		fr.Logger.Errorf("Ошибка при удалении из избранного: %v", err)
		return myErr.ErrDBInternal
	}

	return nil
}

func (fr *FavoritesDBRepository) GetByUserID(ctx context.Context, userID string) ([]types.WishlistItem, error) {
	query := `
	SELECT w.product_id, p.name, p.price, p.image
	FROM wishlist_items w
	JOIN products p ON p.product_id = w.product_id
	WHERE w.user_id = $1
	ORDER BY w.created_at DESC
`
	rows, err := fr.DB.QueryContext(ctx, query, userID)
	if err != nil {
		fr.Logger.Errorf("Ошибка при получении избранного пользователя %v: %v", userID, err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	items := []types.WishlistItem{}
	for rows.Next() {
		var item types.WishlistItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Image); err != nil {
			return nil, myErr.ErrDBInternal
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, myErr.ErrDBInternal
	}

	return items, nil
}
