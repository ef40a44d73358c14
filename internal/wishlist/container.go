package wishlist

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"teranga-storefront/internal/notify"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

// Container - избранное авторизованного пользователя.
// Пока пользователь не вошел, избранное пустое и в сеть не ходим
type Container struct {
	API      API
	Auth     Authenticator
	Notifier notify.Notifier
	Logger   *zap.SugaredLogger

	mu        sync.RWMutex
	snapshot  types.WishlistSnapshot
	pending   int
	issued    uint64
	applied   uint64
	listeners []func(types.WishlistSnapshot)

	inflight singleflight.Group
}

func NewContainer(api API, auth Authenticator, notifier notify.Notifier, logger *zap.SugaredLogger) *Container {
	return &Container{
		API:      api,
		Auth:     auth,
		Notifier: notifier,
		Logger:   logger,
		snapshot: types.EmptyWishlist(),
	}
}

func (c *Container) Snapshot() types.WishlistSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot.Clone()
}

// Contains - есть ли товар в текущем снапшоте, без сетевых вызовов
func (c *Container) Contains(productID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot.Contains(productID)
}

func (c *Container) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pending > 0
}

// OnChange регистрирует функцию, которая вызывается после каждой замены снапшота
func (c *Container) OnChange(fn func(types.WishlistSnapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, fn)
}

// Fetch перечитывает избранное. Без авторизации сбрасывает его в пустое
func (c *Container) Fetch(ctx context.Context) (types.WishlistSnapshot, error) {
	c.begin()
	defer c.end()

	return c.fetch(ctx)
}

// Watch перечитывает избранное на каждое изменение авторизации,
// пока не закроется канал или контекст
func (c *Container) Watch(ctx context.Context, changes <-chan bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case authenticated, ok := <-changes:
			if !ok {
				return
			}
			c.Logger.Debugw("auth state changed, reloading wishlist", "authenticated", authenticated)
			// ошибка уже залогирована в fetch
			_, _ = c.Fetch(ctx)
		}
	}
}

// Add требует авторизации: без нее сетевого вызова нет
func (c *Container) Add(ctx context.Context, productID string) (types.WishlistSnapshot, error) {
	if !c.Auth.IsAuthenticated() {
		return c.reject(OpAdd, MsgSignIn, myErr.ErrNoAuth)
	}

	return c.mutate(ctx, OpAdd, productID, MsgAdded, MsgAddFailed, func(ctx context.Context) error {
		return c.API.AddItem(ctx, productID)
	})
}

// Remove не проверяет авторизацию: без нее избранное пустое и удалять нечего
func (c *Container) Remove(ctx context.Context, productID string) (types.WishlistSnapshot, error) {
	return c.mutate(ctx, OpRemove, productID, MsgRemoved, MsgRemoveFailed, func(ctx context.Context) error {
		return c.API.RemoveItem(ctx, productID)
	})
}

// Toggle удаляет товар, если он в избранном, иначе добавляет.
// Решение принимается по текущему снапшоту
func (c *Container) Toggle(ctx context.Context, productID string) (types.WishlistSnapshot, error) {
	if c.Contains(productID) {
		return c.Remove(ctx, productID)
	}

	return c.Add(ctx, productID)
}

func (c *Container) mutate(
	ctx context.Context,
	op, productID, okMsg, failMsg string,
	call func(ctx context.Context) error,
) (types.WishlistSnapshot, error) {
	if productID == "" {
		return c.reject(op, MsgMissingProduct, myErr.ErrBadID)
	}

	c.begin()
	defer c.end()

	_, err, _ := c.inflight.Do(op+":"+productID, func() (interface{}, error) {
		// присоединившиеся вызывающие не должны получать чужую отмену
		ctx := context.WithoutCancel(ctx)

		if err := call(ctx); err != nil {
			opErr := myErr.NewOpError(op, err, failMsg)
			c.Logger.Warnw("wishlist operation failed", "op", op, "product_id", productID, "kind", opErr.Kind, "err", err)
			if opErr.Kind != myErr.KindCanceled {
				c.Notifier.Error(opErr.Message)
			}
			return nil, opErr
		}

		if _, err := c.fetch(ctx); err != nil {
			c.Logger.Warnw("wishlist changed but resync failed", "op", op, "product_id", productID, "err", err)
		}
		c.Notifier.Success(okMsg)

		return nil, nil
	})

	return c.Snapshot(), err
}

func (c *Container) fetch(ctx context.Context) (types.WishlistSnapshot, error) {
	seq := c.nextSeq()

	if !c.Auth.IsAuthenticated() {
		c.apply(seq, types.EmptyWishlist())
		return c.Snapshot(), nil
	}

	snapshot, err := c.API.GetWishlist(ctx)
	if err != nil {
		c.Logger.Errorw("failed to fetch wishlist", "err", err)
		return c.Snapshot(), myErr.NewOpError(OpFetch, err, MsgFetchFailed)
	}

	if !c.apply(seq, snapshot) {
		c.Logger.Debugw("dropped out-of-order wishlist response", "seq", seq)
	}

	return c.Snapshot(), nil
}

func (c *Container) apply(seq uint64, snapshot types.WishlistSnapshot) bool {
	c.mu.Lock()
	if seq <= c.applied {
		c.mu.Unlock()
		return false
	}
	c.applied = seq
	c.snapshot = snapshot.Clone()
	current := c.snapshot.Clone()
	listeners := append([]func(types.WishlistSnapshot){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(current.Clone())
	}

	return true
}

func (c *Container) reject(op, msg string, err error) (types.WishlistSnapshot, error) {
	c.Notifier.Error(msg)

	return c.Snapshot(), &myErr.OpError{Op: op, Kind: myErr.KindPrecondition, Message: msg, Err: err}
}

func (c *Container) nextSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	return c.issued
}

func (c *Container) begin() {
	c.mu.Lock()
	c.pending++
	c.mu.Unlock()
}

func (c *Container) end() {
	c.mu.Lock()
	c.pending--
	c.mu.Unlock()
}
