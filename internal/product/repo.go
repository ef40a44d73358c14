package product

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	myErr "teranga-storefront/internal/types/errors"
)

type ProductDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewProductDBRepository(db *sql.DB, logger *zap.SugaredLogger) *ProductDBRepository {
	return &ProductDBRepository{
		DB:     db,
		Logger: logger,
	}
}

// GetByID возвращает активный товар по id
func (pr *ProductDBRepository) GetByID(ctx context.Context, productID string) (*Product, error) {
	query := `
	SELECT product_id, name, price, image, stock
	FROM products
	WHERE product_id = $1 AND is_active = true
`
	p := &Product{}
	err := pr.DB.QueryRowContext(ctx, query, productID).
		Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrProductNotFound
		}

		pr.Logger.Errorf("Ошибка при получении товара %v: %v", productID, err)
		return nil, myErr.ErrDBInternal
	}

	return p, nil
}
