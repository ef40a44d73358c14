package cart

// LineItem - позиция в корзине. Цена в XOF (без копеек)
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Name      string `json:"name"`
	Image     string `json:"image"`
}

// Snapshot - состояние корзины в том виде, в котором его вернул сервер
type Snapshot struct {
	Items []LineItem `json:"items"`
	Total int64      `json:"total"`
}

// Empty возвращает пустую корзину {items: [], total: 0}
func Empty() Snapshot {
	return Snapshot{Items: []LineItem{}, Total: 0}
}

// Count - сумма количеств по всем позициям. Не хранится, считается на каждом чтении
func (s Snapshot) Count() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}

	return count
}

// Clone копирует снапшот вместе со слайсом позиций
func (s Snapshot) Clone() Snapshot {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	return Snapshot{Items: items, Total: s.Total}
}

// AddItemForm - тело запросов POST /api/cart/add и PUT /api/cart/update
type AddItemForm struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// WishlistItem - товар в избранном
type WishlistItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
}

// WishlistSnapshot - избранное пользователя
type WishlistSnapshot struct {
	Items []WishlistItem `json:"items"`
}

// EmptyWishlist возвращает пустое избранное
func EmptyWishlist() WishlistSnapshot {
	return WishlistSnapshot{Items: []WishlistItem{}}
}

// Contains проверяет, есть ли товар в избранном
func (s WishlistSnapshot) Contains(productID string) bool {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return true
		}
	}

	return false
}

// Clone копирует избранное вместе со слайсом
func (s WishlistSnapshot) Clone() WishlistSnapshot {
	items := make([]WishlistItem, len(s.Items))
	copy(items, s.Items)

	return WishlistSnapshot{Items: items}
}
