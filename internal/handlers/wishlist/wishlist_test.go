package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap/zaptest"

	"teranga-storefront/internal/middleware"
	"teranga-storefront/internal/mocks"
	"teranga-storefront/internal/product"
	"teranga-storefront/internal/session"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

const testUserID = "5c1f2a8e-7d4b-4f0e-9a51-3b2c6d7e8f90"

func setupHandler(t *testing.T) (*WishlistHandler, *mocks.MockFavoritesRepo, *mocks.MockProductRepo, *mocks.MockEventProducer) {
	ctrl := gomock.NewController(t)
	fr := mocks.NewMockFavoritesRepo(ctrl)
	pr := mocks.NewMockProductRepo(ctrl)
	ep := mocks.NewMockEventProducer(ctrl)

	return NewWishlistHandler(zaptest.NewLogger(t).Sugar(), fr, pr, ep), fr, pr, ep
}

func authed(req *http.Request, productID string) *http.Request {
	ctx := middleware.ContextWithSession(req.Context(), &session.Session{ID: "s-1", UserID: testUserID})
	req = req.WithContext(ctx)
	if productID != "" {
		req = mux.SetURLVars(req, map[string]string{"product_id": productID})
	}
	return req
}

func TestWishlistHandler_GetWishlist(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, fr, _, _ := setupHandler(t)
		fr.EXPECT().GetByUserID(gomock.Any(), testUserID).Return([]types.WishlistItem{
			{ProductID: "P1", Name: "Thiouraye", Price: 2500},
		}, nil)

		w := httptest.NewRecorder()
		h.GetWishlist(w, authed(httptest.NewRequest(http.MethodGet, "/api/wishlist", nil), ""))

		assert.Equal(t, http.StatusOK, w.Code)
		var got types.WishlistSnapshot
		if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		assert.Equal(t, true, got.Contains("P1"))
	})

	t.Run("no session", func(t *testing.T) {
		h, _, _, _ := setupHandler(t)

		w := httptest.NewRecorder()
		h.GetWishlist(w, httptest.NewRequest(http.MethodGet, "/api/wishlist", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("repo error", func(t *testing.T) {
		h, fr, _, _ := setupHandler(t)
		fr.EXPECT().GetByUserID(gomock.Any(), testUserID).Return(nil, myErr.ErrDBInternal)

		w := httptest.NewRecorder()
		h.GetWishlist(w, authed(httptest.NewRequest(http.MethodGet, "/api/wishlist", nil), ""))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestWishlistHandler_AddItem(t *testing.T) {
	tests := []struct {
		name           string
		productID      string
		mockBehavior   func(fr *mocks.MockFavoritesRepo, pr *mocks.MockProductRepo, ep *mocks.MockEventProducer)
		expectedStatus int
	}{
		{
			name:      "success",
			productID: "P1",
			mockBehavior: func(fr *mocks.MockFavoritesRepo, pr *mocks.MockProductRepo, ep *mocks.MockEventProducer) {
				pr.EXPECT().GetByID(gomock.Any(), "P1").Return(&product.Product{ID: "P1"}, nil)
				fr.EXPECT().Add(gomock.Any(), testUserID, "P1").Return(nil)
				ep.EXPECT().SendEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "unknown product",
			productID: "P404",
			mockBehavior: func(fr *mocks.MockFavoritesRepo, pr *mocks.MockProductRepo, ep *mocks.MockEventProducer) {
				pr.EXPECT().GetByID(gomock.Any(), "P404").Return(nil, myErr.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "repo error",
			productID: "P1",
			mockBehavior: func(fr *mocks.MockFavoritesRepo, pr *mocks.MockProductRepo, ep *mocks.MockEventProducer) {
				pr.EXPECT().GetByID(gomock.Any(), "P1").Return(&product.Product{ID: "P1"}, nil)
				fr.EXPECT().Add(gomock.Any(), testUserID, "P1").Return(myErr.ErrDBInternal)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fr, pr, ep := setupHandler(t)
			tt.mockBehavior(fr, pr, ep)

			w := httptest.NewRecorder()
			h.AddItem(w, authed(httptest.NewRequest(http.MethodPost, "/api/wishlist/add/"+tt.productID, nil), tt.productID))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestWishlistHandler_RemoveItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, fr, _, _ := setupHandler(t)
		fr.EXPECT().Remove(gomock.Any(), testUserID, "P1").Return(nil)

		w := httptest.NewRecorder()
		h.RemoveItem(w, authed(httptest.NewRequest(http.MethodDelete, "/api/wishlist/remove/P1", nil), "P1"))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		h, _, _, _ := setupHandler(t)

		w := httptest.NewRecorder()
		h.RemoveItem(w, authed(httptest.NewRequest(http.MethodDelete, "/api/wishlist/remove/", nil), ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
