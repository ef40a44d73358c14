package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"teranga-storefront/internal/contextutil"
	"teranga-storefront/internal/favorites"
	"teranga-storefront/internal/kafka"
	"teranga-storefront/internal/product"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

// WishlistHandler ручки избранного, доступны только после входа
type WishlistHandler struct {
	Logger        *zap.SugaredLogger
	FavoritesRepo favorites.FavoritesRepo
	ProductRepo   product.ProductRepo
	EventProducer kafka.EventProducer
}

func NewWishlistHandler(
	log *zap.SugaredLogger,
	fr favorites.FavoritesRepo,
	pr product.ProductRepo,
	ep kafka.EventProducer,
) *WishlistHandler {
	return &WishlistHandler{
		Logger:        log,
		FavoritesRepo: fr,
		ProductRepo:   pr,
		EventProducer: ep,
	}
}

// GetWishlist - GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	items, err := h.FavoritesRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(types.WishlistSnapshot{Items: items}); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// AddItem - POST /api/wishlist/add/{product_id}
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, productID, ok := h.params(w, r)
	if !ok {
		return
	}

	if _, err := h.ProductRepo.GetByID(r.Context(), productID); err != nil {
		if errors.Is(err, myErr.ErrProductNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	if err := h.FavoritesRepo.Add(r.Context(), userID, productID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	event := kafka.Event{
		UserID:    userID,
		Type:      kafka.AddToWishlist,
		ProductID: productID,
		Timestamp: time.Now(),
	}
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send addToWishlist event: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("user %s added %s to wishlist", userID, productID)
}

// RemoveItem - DELETE /api/wishlist/remove/{product_id}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, productID, ok := h.params(w, r)
	if !ok {
		return
	}

	if err := h.FavoritesRepo.Remove(r.Context(), userID, productID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("user %s removed %s from wishlist", userID, productID)
}

func (h *WishlistHandler) params(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return "", "", false
	}

	productID := strings.TrimSpace(mux.Vars(r)["product_id"])
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return "", "", false
	}

	return userID, productID, true
}
