package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teranga-storefront/internal/auth"
	"teranga-storefront/internal/cartsession"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

type staticSession string

func (s staticSession) GetOrCreate(context.Context) string { return string(s) }

func TestCartClient_AttachesSessionHeader(t *testing.T) {
	type seen struct {
		method, path, session string
		body                  types.AddItemForm
	}
	var requests []seen

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := seen{method: r.Method, path: r.URL.Path, session: r.Header.Get(cartsession.HeaderName)}
		if r.Body != nil && r.ContentLength > 0 {
			_ = json.NewDecoder(r.Body).Decode(&s.body)
		}
		requests = append(requests, s)

		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[{"product_id":"P1","quantity":2,"price":1500,"name":"Bissap","image":"/img/p1.jpg"}],"total":3000}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewCartClient(srv.URL, staticSession("session_abc123xyz"), time.Second)
	ctx := context.Background()

	snapshot, err := c.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), snapshot.Total)
	assert.Equal(t, 2, snapshot.Count())

	require.NoError(t, c.AddItem(ctx, "P1", 2))
	require.NoError(t, c.UpdateItem(ctx, "P1", 5))
	require.NoError(t, c.RemoveItem(ctx, "P 1"))
	require.NoError(t, c.Clear(ctx))

	require.Len(t, requests, 5)
	for _, r := range requests {
		assert.Equal(t, "session_abc123xyz", r.session)
	}
	assert.Equal(t, http.MethodPost, requests[1].method)
	assert.Equal(t, "/api/cart/add", requests[1].path)
	assert.Equal(t, types.AddItemForm{ProductID: "P1", Quantity: 2}, requests[1].body)
	assert.Equal(t, http.MethodPut, requests[2].method)
	assert.Equal(t, "/api/cart/update", requests[2].path)
	assert.Equal(t, 5, requests[2].body.Quantity)
	assert.Equal(t, "/api/cart/remove/P 1", requests[3].path)
	assert.Equal(t, "/api/cart/clear", requests[4].path)
}

func TestCartClient_EmptyItemsBecomeEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":null,"total":0}`))
	}))
	defer srv.Close()

	snapshot, err := NewCartClient(srv.URL, staticSession("s"), time.Second).GetCart(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Items)
	assert.Empty(t, snapshot.Items)
}

func TestCartClient_ServerErrors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedDetail string
	}{
		{
			name:           "detail из тела",
			status:         http.StatusConflict,
			body:           `{"detail":"insufficient stock: only 1 left"}`,
			expectedDetail: "insufficient stock: only 1 left",
		},
		{
			name:           "тело не JSON",
			status:         http.StatusBadGateway,
			body:           `<html>bad gateway</html>`,
			expectedDetail: "",
		},
		{
			name:           "пустое тело",
			status:         http.StatusInternalServerError,
			body:           ``,
			expectedDetail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewCartClient(srv.URL, staticSession("s"), time.Second).AddItem(context.Background(), "P1", 1)

			var srvErr *myErr.ServerError
			require.True(t, errors.As(err, &srvErr))
			assert.Equal(t, tt.status, srvErr.Status)
			assert.Equal(t, tt.expectedDetail, srvErr.Detail)
		})
	}
}

func TestCartClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewCartClient(url, staticSession("s"), time.Second).GetCart(context.Background())
	require.Error(t, err)

	var srvErr *myErr.ServerError
	assert.False(t, errors.As(err, &srvErr))
}

func TestWishlistClient_SendsCredentialCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/user/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "storefront_token", Value: "jwt-token", Path: "/", HttpOnly: true})
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/wishlist", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("storefront_token")
		if err != nil || cookie.Value != "jwt-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"authorization required"}`))
			return
		}
		assert.Empty(t, r.Header.Get(cartsession.HeaderName))
		_, _ = w.Write([]byte(`{"items":[{"product_id":"P1","name":"Thiouraye","price":2500}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	jar, err := auth.NewJar()
	require.NoError(t, err)
	wishlist := NewWishlistClient(srv.URL, jar, time.Second)
	account := NewAccountClient(srv.URL, jar, time.Second)
	ctx := context.Background()

	_, err = wishlist.GetWishlist(ctx)
	var srvErr *myErr.ServerError
	require.True(t, errors.As(err, &srvErr))
	assert.Equal(t, http.StatusUnauthorized, srvErr.Status)

	require.NoError(t, account.Login(ctx, "awa@example.sn", "secret"))

	snapshot, err := wishlist.GetWishlist(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.Contains("P1"))
}

func TestWishlistClient_Paths(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewWishlistClient(srv.URL, nil, time.Second)
	require.NoError(t, c.AddItem(context.Background(), "P1"))
	require.NoError(t, c.RemoveItem(context.Background(), "P1"))

	assert.Equal(t, []string{"POST /api/wishlist/add/P1", "DELETE /api/wishlist/remove/P1"}, paths)
}
