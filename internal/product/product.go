package product

import "context"

// Product - карточка товара, нужная корзине и избранному
type Product struct {
	ID    string `json:"product_id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // XOF
	Image string `json:"image"`
	Stock int    `json:"stock"`
}

// ProductRepo интерфейс каталога товаров
//
//go:generate mockgen -source=product.go -destination=../mocks/mock_product_repo.go -package=mocks
type ProductRepo interface {
	// GetByID возвращает товар или ErrProductNotFound
	GetByID(ctx context.Context, productID string) (*Product, error)
}
