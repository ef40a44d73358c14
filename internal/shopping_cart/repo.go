package shopping_cart

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

type ShoppingCartRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewShoppingCartRepository(db *sql.DB, logger *zap.SugaredLogger) *ShoppingCartRepository {
	return &ShoppingCartRepository{
		DB:     db,
		Logger: logger,
	}
}

// AddItem добавляет в корзину сессии товар.
// Проверка остатка и запись идут одним запросом: если итог превысит stock,
// строка не вставляется и не обновляется, возвращается ErrInsufficientStock
func (scr *ShoppingCartRepository) AddItem(ctx context.Context, sessionID, productID string, quantity int) error {
	query := `
	INSERT INTO cart_items(session_id, product_id, quantity)
	SELECT $1::text, $2::text, $3::int
	WHERE $3::int <= (SELECT stock FROM products WHERE product_id = $2)
	ON CONFLICT (session_id, product_id)
	DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
	WHERE cart_items.quantity + EXCLUDED.quantity <= (SELECT stock FROM products WHERE product_id = EXCLUDED.product_id)
`
	res, err := scr.DB.ExecContext(ctx, query, sessionID, productID, quantity)
	if err != nil {
		scr.Logger.Errorf("Ошибка при добавлении товара в корзину: %v", err)
		return myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		scr.Logger.Warnf("Не удалось получить количество добавленных строк: %v", err)
		return myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return myErr.ErrInsufficientStock
	}

	return nil
}

// UpdateQuantity меняет количество товара в корзине
func (scr *ShoppingCartRepository) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	query := `
	UPDATE cart_items SET quantity = $3, updated_at = now()
	WHERE session_id = $1 AND product_id = $2
`
	res, err := scr.DB.ExecContext(ctx, query, sessionID, productID, quantity)
	if err != nil {
		scr.Logger.Errorf("Ошибка при изменении количества: %v", err)
		return myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		scr.Logger.Warnf("Не удалось получить количество обновлённых строк: %v", err)
		return myErr.ErrDBInternal
	}
	if rowsAffected == 0 {
		return myErr.ErrItemNotInCart
	}

	return nil
}

// RemoveItem удаляет товар из корзины. Удаление отсутствующей позиции не ошибка
func (scr *ShoppingCartRepository) RemoveItem(ctx context.Context, sessionID, productID string) error {
	query := `
	DELETE FROM cart_items
	WHERE session_id = $1 AND product_id = $2
`
	_, err := scr.DB.ExecContext(ctx, query, sessionID, productID)
	if err != nil {
		scr.Logger.Errorf("Ошибка при удалении из корзины: %v", err)
		return myErr.ErrDBInternal
	}

	return nil
}

// Clear удаляет все позиции сессии
func (scr *ShoppingCartRepository) Clear(ctx context.Context, sessionID string) error {
	query := `
	DELETE FROM cart_items
	WHERE session_id = $1
`
	_, err := scr.DB.ExecContext(ctx, query, sessionID)
	if err != nil {
		scr.Logger.Errorf("Ошибка при очистке корзины %v: %v", sessionID, err)
		return myErr.ErrDBInternal
	}

	return nil
}

// GetBySessionID получает корзину сессии в порядке добавления
func (scr *ShoppingCartRepository) GetBySessionID(ctx context.Context, sessionID string) ([]types.LineItem, error) {
	query := `
	SELECT ci.product_id, ci.quantity, p.price, p.name, p.image
	FROM cart_items ci
	JOIN products p ON p.product_id = ci.product_id
	WHERE ci.session_id = $1
	ORDER BY ci.created_at
`
	rows, err := scr.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		scr.Logger.Errorf("Ошибка при получении корзины сессии %v: %v", sessionID, err)
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	items := []types.LineItem{}
	for rows.Next() {
		var item types.LineItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price, &item.Name, &item.Image); err != nil {
			return nil, myErr.ErrDBInternal
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		scr.Logger.Errorf("Ошибка при чтении корзины сессии %v: %v", sessionID, err)
		return nil, myErr.ErrDBInternal
	}

	return items, nil
}
