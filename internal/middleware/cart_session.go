package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"teranga-storefront/internal/cartsession"
	myErr "teranga-storefront/internal/types/errors"
)

var cartSessKey SessKey = "cartSessionKey"

// CartSession требует заголовок X-Cart-Session. Корзина гостевая,
// поэтому идентификатор клиента и есть ключ корзины.
func CartSession(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(cartsession.HeaderName))
			if id == "" {
				myErr.SendErrorTo(w, myErr.ErrMissingCartSession, http.StatusBadRequest, logger)
				return
			}

			ctx := ContextWithCartSession(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ContextWithCartSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, cartSessKey, id)
}

func GetCartSessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(cartSessKey).(string)
	return id, ok && id != ""
}
