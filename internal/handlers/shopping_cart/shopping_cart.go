package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"teranga-storefront/internal/contextutil"
	"teranga-storefront/internal/kafka"
	"teranga-storefront/internal/product"
	"teranga-storefront/internal/shopping_cart"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

// ShoppingCartHandler ручки гостевой корзины. Корзина привязана
// к заголовку X-Cart-Session, его проверяет middleware.CartSession
type ShoppingCartHandler struct {
	Logger        *zap.SugaredLogger
	CartRepo      shopping_cart.ShoppingCartRepo
	ProductRepo   product.ProductRepo
	EventProducer kafka.EventProducer
}

// NewShoppingCartHandler конструктор
func NewShoppingCartHandler(
	log *zap.SugaredLogger,
	cr shopping_cart.ShoppingCartRepo,
	pr product.ProductRepo,
	ep kafka.EventProducer,
) *ShoppingCartHandler {
	return &ShoppingCartHandler{
		Logger:        log,
		CartRepo:      cr,
		ProductRepo:   pr,
		EventProducer: ep,
	}
}

// GetCart - GET /api/cart
func (h *ShoppingCartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := contextutil.GetCartSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrMissingCartSession, http.StatusBadRequest, h.Logger)
		return
	}

	items, err := h.CartRepo.GetBySessionID(r.Context(), sessionID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	snapshot := types.Snapshot{Items: items}
	for _, item := range items {
		snapshot.Total += item.Price * int64(item.Quantity)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}
}

// AddItem - POST /api/cart/add {product_id, quantity}
func (h *ShoppingCartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, form, ok := h.readForm(w, r)
	if !ok {
		return
	}

	p, ok := h.getProduct(r.Context(), w, form.ProductID)
	if !ok {
		return
	}

	// остаток проверяется в том же запросе, что и запись
	if err := h.CartRepo.AddItem(r.Context(), sessionID, form.ProductID, form.Quantity); err != nil {
		if errors.Is(err, myErr.ErrInsufficientStock) {
			myErr.SendErrorTo(w, insufficientStock(p.Stock), http.StatusConflict, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendEvent(r.Context(), kafka.Event{
		SessionID: sessionID,
		Type:      kafka.AddToCart,
		ProductID: form.ProductID,
		Quantity:  form.Quantity,
	})

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("added %d x %s to cart %s", form.Quantity, form.ProductID, sessionID)
}

// UpdateItem - PUT /api/cart/update {product_id, quantity}
func (h *ShoppingCartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, form, ok := h.readForm(w, r)
	if !ok {
		return
	}

	p, ok := h.getProduct(r.Context(), w, form.ProductID)
	if !ok {
		return
	}
	if form.Quantity > p.Stock {
		myErr.SendErrorTo(w, insufficientStock(p.Stock), http.StatusConflict, h.Logger)
		return
	}

	err := h.CartRepo.UpdateQuantity(r.Context(), sessionID, form.ProductID, form.Quantity)
	if err != nil {
		if errors.Is(err, myErr.ErrItemNotInCart) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("set %s quantity to %d in cart %s", form.ProductID, form.Quantity, sessionID)
}

// RemoveItem - DELETE /api/cart/remove/{product_id}
func (h *ShoppingCartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := contextutil.GetCartSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrMissingCartSession, http.StatusBadRequest, h.Logger)
		return
	}

	productID := strings.TrimSpace(mux.Vars(r)["product_id"])
	if productID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.CartRepo.RemoveItem(r.Context(), sessionID, productID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendEvent(r.Context(), kafka.Event{
		SessionID: sessionID,
		Type:      kafka.RemoveFromCart,
		ProductID: productID,
	})

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("removed %s from cart %s", productID, sessionID)
}

// Clear - DELETE /api/cart/clear
func (h *ShoppingCartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := contextutil.GetCartSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrMissingCartSession, http.StatusBadRequest, h.Logger)
		return
	}

	if err := h.CartRepo.Clear(r.Context(), sessionID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.sendEvent(r.Context(), kafka.Event{
		SessionID: sessionID,
		Type:      kafka.ClearCart,
	})

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("cleared cart %s", sessionID)
}

// readForm достает сессию и тело add/update, проверяя товар и количество
func (h *ShoppingCartHandler) readForm(w http.ResponseWriter, r *http.Request) (string, types.AddItemForm, bool) {
	var form types.AddItemForm

	sessionID, ok := contextutil.GetCartSessionFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrMissingCartSession, http.StatusBadRequest, h.Logger)
		return "", form, false
	}

	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return "", form, false
	}

	form.ProductID = strings.TrimSpace(form.ProductID)
	if form.ProductID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return "", form, false
	}
	if form.Quantity < 1 {
		myErr.SendErrorTo(w, myErr.ErrInvalidQuantity, http.StatusBadRequest, h.Logger)
		return "", form, false
	}

	return sessionID, form, true
}

func (h *ShoppingCartHandler) getProduct(ctx context.Context, w http.ResponseWriter, productID string) (*product.Product, bool) {
	p, err := h.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, myErr.ErrProductNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return nil, false
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return nil, false
	}

	return p, true
}

// sendEvent - аналитика не должна ломать корзину, ошибки только логируем
func (h *ShoppingCartHandler) sendEvent(ctx context.Context, event kafka.Event) {
	event.Timestamp = time.Now()
	if err := h.EventProducer.SendEvent(ctx, event); err != nil {
		h.Logger.Warnf("failed to send %s event: %v", event.Type, err)
	}
}

func insufficientStock(stock int) error {
	return fmt.Errorf("%w: only %d left", myErr.ErrInsufficientStock, stock)
}
