package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap/zaptest"

	"teranga-storefront/internal/kafka"
	"teranga-storefront/internal/middleware"
	"teranga-storefront/internal/mocks"
	"teranga-storefront/internal/product"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

const testSession = "session_k3j9x0a1b"

type handlerMocks struct {
	cart     *mocks.MockShoppingCartRepo
	products *mocks.MockProductRepo
	events   *mocks.MockEventProducer
}

func setupHandler(t *testing.T) (*ShoppingCartHandler, handlerMocks) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		cart:     mocks.NewMockShoppingCartRepo(ctrl),
		products: mocks.NewMockProductRepo(ctrl),
		events:   mocks.NewMockEventProducer(ctrl),
	}
	logger := zaptest.NewLogger(t).Sugar()

	return NewShoppingCartHandler(logger, m.cart, m.products, m.events), m
}

func newRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(middleware.ContextWithCartSession(req.Context(), testSession))
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	var body myErr.ErrorServer
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Detail
}

func TestShoppingCartHandler_GetCart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := setupHandler(t)
		m.cart.EXPECT().GetBySessionID(gomock.Any(), testSession).Return([]types.LineItem{
			{ProductID: "P1", Quantity: 2, Price: 1500, Name: "Bissap 1L"},
			{ProductID: "P2", Quantity: 3, Price: 1000, Name: "Thiakry"},
		}, nil)

		w := httptest.NewRecorder()
		h.GetCart(w, newRequest(http.MethodGet, "/api/cart", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		var got types.Snapshot
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		assert.Equal(t, int64(6000), got.Total)
		assert.Equal(t, 5, got.Count())
	})

	t.Run("empty cart is items [] not null", func(t *testing.T) {
		h, m := setupHandler(t)
		m.cart.EXPECT().GetBySessionID(gomock.Any(), testSession).Return([]types.LineItem{}, nil)

		w := httptest.NewRecorder()
		h.GetCart(w, newRequest(http.MethodGet, "/api/cart", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"items":[],"total":0}`, strings.TrimSpace(w.Body.String()))
	})

	t.Run("repo error", func(t *testing.T) {
		h, m := setupHandler(t)
		m.cart.EXPECT().GetBySessionID(gomock.Any(), testSession).Return(nil, myErr.ErrDBInternal)

		w := httptest.NewRecorder()
		h.GetCart(w, newRequest(http.MethodGet, "/api/cart", ""))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no session in context", func(t *testing.T) {
		h, _ := setupHandler(t)

		w := httptest.NewRecorder()
		h.GetCart(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShoppingCartHandler_AddItem(t *testing.T) {
	bissap := &product.Product{ID: "P1", Name: "Bissap 1L", Price: 1500, Stock: 5}

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(m handlerMocks)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "success",
			body: `{"product_id":"P1","quantity":2}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
				m.cart.EXPECT().AddItem(gomock.Any(), testSession, "P1", 2).Return(nil)
				m.events.EXPECT().SendEvent(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, e kafka.Event) error {
						if e.Type != kafka.AddToCart || e.SessionID != testSession || e.Quantity != 2 {
							t.Errorf("unexpected event %+v", e)
						}
						return nil
					})
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "kafka failure does not fail the request",
			body: `{"product_id":"P1","quantity":1}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
				m.cart.EXPECT().AddItem(gomock.Any(), testSession, "P1", 1).Return(nil)
				m.events.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "insufficient stock",
			body: `{"product_id":"P1","quantity":3}`,
			mockBehavior: func(m handlerMocks) {
				// в корзине уже 4, запрос к БД не обновил строку
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
				m.cart.EXPECT().AddItem(gomock.Any(), testSession, "P1", 3).Return(myErr.ErrInsufficientStock)
				m.events.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedStatus: http.StatusConflict,
			expectedDetail: "insufficient stock: only 5 left",
		},
		{
			name: "unknown product",
			body: `{"product_id":"P404","quantity":1}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P404").Return(nil, myErr.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: myErr.ErrProductNotFound.Error(),
		},
		{
			name:           "zero quantity",
			body:           `{"product_id":"P1","quantity":0}`,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: myErr.ErrInvalidQuantity.Error(),
		},
		{
			name:           "missing product id",
			body:           `{"quantity":1}`,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           `{invalid-json}`,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: myErr.ErrInvalidJSONPayload.Error(),
		},
		{
			name: "repo error",
			body: `{"product_id":"P1","quantity":1}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
				m.cart.EXPECT().AddItem(gomock.Any(), testSession, "P1", 1).Return(myErr.ErrDBInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := setupHandler(t)
			tt.mockBehavior(m)

			w := httptest.NewRecorder()
			h.AddItem(w, newRequest(http.MethodPost, "/api/cart/add", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, decodeDetail(t, w))
			}
		})
	}
}

func TestShoppingCartHandler_UpdateItem(t *testing.T) {
	bissap := &product.Product{ID: "P1", Name: "Bissap 1L", Price: 1500, Stock: 5}

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(m handlerMocks)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"product_id":"P1","quantity":4}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
				m.cart.EXPECT().UpdateQuantity(gomock.Any(), testSession, "P1", 4).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "over stock",
			body: `{"product_id":"P1","quantity":6}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "not in cart",
			body: `{"product_id":"P1","quantity":2}`,
			mockBehavior: func(m handlerMocks) {
				m.products.EXPECT().GetByID(gomock.Any(), "P1").Return(bissap, nil)
				m.cart.EXPECT().UpdateQuantity(gomock.Any(), testSession, "P1", 2).Return(myErr.ErrItemNotInCart)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "negative quantity",
			body:           `{"product_id":"P1","quantity":-1}`,
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := setupHandler(t)
			tt.mockBehavior(m)

			w := httptest.NewRecorder()
			h.UpdateItem(w, newRequest(http.MethodPut, "/api/cart/update", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestShoppingCartHandler_RemoveItem(t *testing.T) {
	tests := []struct {
		name           string
		productID      string
		mockBehavior   func(m handlerMocks)
		expectedStatus int
	}{
		{
			name:      "success",
			productID: "P1",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().RemoveItem(gomock.Any(), testSession, "P1").Return(nil)
				m.events.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "repo error",
			productID: "P1",
			mockBehavior: func(m handlerMocks) {
				m.cart.EXPECT().RemoveItem(gomock.Any(), testSession, "P1").Return(myErr.ErrDBInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "empty product id",
			productID:      " ",
			mockBehavior:   func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := setupHandler(t)
			tt.mockBehavior(m)

			req := newRequest(http.MethodDelete, "/api/cart/remove/x", "")
			req = mux.SetURLVars(req, map[string]string{"product_id": tt.productID})
			w := httptest.NewRecorder()
			h.RemoveItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestShoppingCartHandler_Clear(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, m := setupHandler(t)
		m.cart.EXPECT().Clear(gomock.Any(), testSession).Return(nil)
		m.events.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		h.Clear(w, newRequest(http.MethodDelete, "/api/cart/clear", ""))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("repo error", func(t *testing.T) {
		h, m := setupHandler(t)
		m.cart.EXPECT().Clear(gomock.Any(), testSession).Return(myErr.ErrDBInternal)

		w := httptest.NewRecorder()
		h.Clear(w, newRequest(http.MethodDelete, "/api/cart/clear", ""))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
