package cartsession

import (
	"context"
	"errors"
)

const (
	// StorageKey - ключ, под которым хранится токен анонимной корзины
	StorageKey = "cart_session_id"
	// Prefix - фиксированный префикс токена
	Prefix = "session_"
	// HeaderName - заголовок, в котором токен уходит на бэкенд
	HeaderName = "X-Cart-Session"
)

// ErrNotFound возвращается хранилищем, если ключа нет
var ErrNotFound = errors.New("key not found")

// Store - долговременное key-value хранилище на стороне клиента
type Store interface {
	// Get возвращает значение по ключу или ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set записывает значение по ключу
	Set(ctx context.Context, key string, value string) error
}

// IDSource отдает токен сессии корзины. Реализуется Provider
type IDSource interface {
	GetOrCreate(ctx context.Context) string
}
