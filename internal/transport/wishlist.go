package transport

import (
	"context"
	"net/http"
	"net/url"
	"time"

	types "teranga-storefront/internal/types/cart"
)

// WishlistClient ходит в /api/wishlist/*. Идентичность - cookie из jar,
// никаких собственных заголовков
type WishlistClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewWishlistClient(baseURL string, jar http.CookieJar, timeout time.Duration) *WishlistClient {
	return &WishlistClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// GetWishlist - GET /api/wishlist
func (c *WishlistClient) GetWishlist(ctx context.Context) (types.WishlistSnapshot, error) {
	var snapshot types.WishlistSnapshot
	if err := doJSON(ctx, c.HTTPClient, http.MethodGet, joinURL(c.BaseURL, "/api/wishlist"), nil, &snapshot); err != nil {
		return types.WishlistSnapshot{}, err
	}
	if snapshot.Items == nil {
		snapshot.Items = []types.WishlistItem{}
	}

	return snapshot, nil
}

// AddItem - POST /api/wishlist/add/{product_id}
func (c *WishlistClient) AddItem(ctx context.Context, productID string) error {
	path := "/api/wishlist/add/" + url.PathEscape(productID)
	return doJSON(ctx, c.HTTPClient, http.MethodPost, joinURL(c.BaseURL, path), nil, nil)
}

// RemoveItem - DELETE /api/wishlist/remove/{product_id}
func (c *WishlistClient) RemoveItem(ctx context.Context, productID string) error {
	path := "/api/wishlist/remove/" + url.PathEscape(productID)
	return doJSON(ctx, c.HTTPClient, http.MethodDelete, joinURL(c.BaseURL, path), nil, nil)
}

// AccountClient логинит пользователя; cookie с токеном попадает в общий jar
type AccountClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAccountClient(baseURL string, jar http.CookieJar, timeout time.Duration) *AccountClient {
	return &AccountClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login - POST /api/user/login
func (c *AccountClient) Login(ctx context.Context, email, password string) error {
	form := loginForm{Email: email, Password: password}
	return doJSON(ctx, c.HTTPClient, http.MethodPost, joinURL(c.BaseURL, "/api/user/login"), form, nil)
}

// Logout - POST /api/user/logout
func (c *AccountClient) Logout(ctx context.Context) error {
	return doJSON(ctx, c.HTTPClient, http.MethodPost, joinURL(c.BaseURL, "/api/user/logout"), nil, nil)
}
