package transport

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"teranga-storefront/internal/cartsession"
	types "teranga-storefront/internal/types/cart"
)

// sessionTransport проставляет токен анонимной корзины в каждый исходящий запрос
type sessionTransport struct {
	Base     http.RoundTripper
	Sessions cartsession.IDSource
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper не должен менять исходный запрос
	r := req.Clone(req.Context())
	r.Header.Set(cartsession.HeaderName, t.Sessions.GetOrCreate(req.Context()))

	return t.Base.RoundTrip(r)
}

// CartClient ходит в /api/cart/*, идентифицируясь заголовком X-Cart-Session
type CartClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewCartClient(
	baseURL string,
	sessions cartsession.IDSource,
	timeout time.Duration,
) *CartClient {
	return &CartClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
			Transport: &sessionTransport{
				Base:     http.DefaultTransport,
				Sessions: sessions,
			},
		},
	}
}

// GetCart - GET /api/cart
func (c *CartClient) GetCart(ctx context.Context) (types.Snapshot, error) {
	var snapshot types.Snapshot
	if err := doJSON(ctx, c.HTTPClient, http.MethodGet, joinURL(c.BaseURL, "/api/cart"), nil, &snapshot); err != nil {
		return types.Snapshot{}, err
	}
	if snapshot.Items == nil {
		snapshot.Items = []types.LineItem{}
	}

	return snapshot, nil
}

// AddItem - POST /api/cart/add
func (c *CartClient) AddItem(ctx context.Context, productID string, quantity int) error {
	form := types.AddItemForm{ProductID: productID, Quantity: quantity}
	return doJSON(ctx, c.HTTPClient, http.MethodPost, joinURL(c.BaseURL, "/api/cart/add"), form, nil)
}

// UpdateItem - PUT /api/cart/update
func (c *CartClient) UpdateItem(ctx context.Context, productID string, quantity int) error {
	form := types.AddItemForm{ProductID: productID, Quantity: quantity}
	return doJSON(ctx, c.HTTPClient, http.MethodPut, joinURL(c.BaseURL, "/api/cart/update"), form, nil)
}

// RemoveItem - DELETE /api/cart/remove/{product_id}
func (c *CartClient) RemoveItem(ctx context.Context, productID string) error {
	path := "/api/cart/remove/" + url.PathEscape(productID)
	return doJSON(ctx, c.HTTPClient, http.MethodDelete, joinURL(c.BaseURL, path), nil, nil)
}

// Clear - DELETE /api/cart/clear
func (c *CartClient) Clear(ctx context.Context) error {
	return doJSON(ctx, c.HTTPClient, http.MethodDelete, joinURL(c.BaseURL, "/api/cart/clear"), nil, nil)
}
