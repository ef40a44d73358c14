package contextutil

import (
	"context"

	"teranga-storefront/internal/middleware"
)

// GetUserIDFromContext извлекает userID из контекста
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.UserID, true
}

// GetSessionIDFromContext извлекает ID авторизованной сессии
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.ID, true
}

// GetCartSessionFromContext извлекает идентификатор гостевой корзины
func GetCartSessionFromContext(ctx context.Context) (string, bool) {
	return middleware.GetCartSessionFromContext(ctx)
}
