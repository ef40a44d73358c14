package cart

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"teranga-storefront/internal/notify"
	types "teranga-storefront/internal/types/cart"
	myErr "teranga-storefront/internal/types/errors"
)

// Container держит последний снапшот корзины, полученный с сервера.
// Любая успешная мутация (кроме Clear) заканчивается перечитыванием корзины,
// своим догадкам о составе корзины контейнер не доверяет.
// Безопасен для использования из нескольких горутин.
type Container struct {
	API      API
	Notifier notify.Notifier
	Logger   *zap.SugaredLogger

	mu        sync.RWMutex
	snapshot  types.Snapshot
	isOpen    bool
	pending   int
	issued    uint64 // последний выданный номер чтения
	applied   uint64 // номер чтения, которое лежит в snapshot
	listeners []func(types.Snapshot)

	mountOnce sync.Once
	mountErr  error
	inflight  singleflight.Group
}

func NewContainer(api API, notifier notify.Notifier, logger *zap.SugaredLogger) *Container {
	return &Container{
		API:      api,
		Notifier: notifier,
		Logger:   logger,
		snapshot: types.Empty(),
	}
}

// Mount делает первое чтение корзины. Повторные вызовы ничего не делают
func (c *Container) Mount(ctx context.Context) error {
	c.mountOnce.Do(func() {
		_, c.mountErr = c.Fetch(ctx)
	})

	return c.mountErr
}

// Snapshot возвращает копию текущего снапшота
func (c *Container) Snapshot() types.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot.Clone()
}

// Count - количество товаров, считается по снапшоту на каждом вызове
func (c *Container) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot.Count()
}

// Loading - есть ли операция в полете
func (c *Container) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pending > 0
}

func (c *Container) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.isOpen
}

func (c *Container) Open() { c.setOpen(true) }

func (c *Container) Close() { c.setOpen(false) }

// OnChange регистрирует функцию, которая вызывается после каждой замены снапшота
func (c *Container) OnChange(fn func(types.Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners = append(c.listeners, fn)
}

// Fetch перечитывает корзину. При ошибке снапшот не меняется
func (c *Container) Fetch(ctx context.Context) (types.Snapshot, error) {
	c.begin()
	defer c.end()

	return c.fetch(ctx)
}

// Add - добавить товар; quantity < 1 считается за 1.
// После успеха корзина перечитывается и открывается
func (c *Container) Add(ctx context.Context, productID string, quantity int) (types.Snapshot, error) {
	if quantity < 1 {
		quantity = 1
	}

	return c.mutate(ctx, mutation{
		key:     fmt.Sprintf("add:%s:%d", productID, quantity),
		op:      OpAdd,
		product: productID,
		okMsg:   MsgAdded,
		failMsg: MsgAddFailed,
		open:    true,
		call: func(ctx context.Context) error {
			return c.API.AddItem(ctx, productID, quantity)
		},
	})
}

// UpdateQuantity - выставить количество позиции
func (c *Container) UpdateQuantity(ctx context.Context, productID string, quantity int) (types.Snapshot, error) {
	if quantity < 1 {
		return c.reject(OpUpdate, MsgBadQuantity, myErr.ErrInvalidQuantity)
	}

	return c.mutate(ctx, mutation{
		key:     fmt.Sprintf("update:%s:%d", productID, quantity),
		op:      OpUpdate,
		product: productID,
		okMsg:   MsgUpdated,
		failMsg: MsgUpdateFailed,
		call: func(ctx context.Context) error {
			return c.API.UpdateItem(ctx, productID, quantity)
		},
	})
}

// Remove - убрать позицию целиком
func (c *Container) Remove(ctx context.Context, productID string) (types.Snapshot, error) {
	return c.mutate(ctx, mutation{
		key:     "remove:" + productID,
		op:      OpRemove,
		product: productID,
		okMsg:   MsgRemoved,
		failMsg: MsgRemoveFailed,
		call: func(ctx context.Context) error {
			return c.API.RemoveItem(ctx, productID)
		},
	})
}

// Clear очищает корзину. Состояние после очистки известно, поэтому без перечитывания
func (c *Container) Clear(ctx context.Context) (types.Snapshot, error) {
	c.begin()
	defer c.end()

	_, err, _ := c.inflight.Do("clear", func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)

		// номер берется до запроса: чтения, начатые раньше, проиграют очистке,
		// а начатые позже (например, после Add) видят уже очищенную корзину
		seq := c.nextSeq()
		if err := c.API.Clear(ctx); err != nil {
			return nil, c.fail(OpClear, err, MsgClearFailed)
		}

		c.apply(seq, types.Empty())
		c.Notifier.Success(MsgCleared)
		c.Logger.Infow("cart cleared")

		return nil, nil
	})

	return c.Snapshot(), err
}

type mutation struct {
	key     string
	op      string
	product string
	okMsg   string
	failMsg string
	open    bool
	call    func(ctx context.Context) error
}

// mutate выполняет запрос и перечитывает корзину.
// Одинаковые мутации, пока первая в полете, присоединяются к ней,
// второго запроса не будет. Общий вызов не наследует отмену первого
// вызывающего, его время ограничивает таймаут http-клиента
func (c *Container) mutate(ctx context.Context, m mutation) (types.Snapshot, error) {
	if m.product == "" {
		return c.reject(m.op, MsgMissingProduct, myErr.ErrBadID)
	}

	c.begin()
	defer c.end()

	_, err, shared := c.inflight.Do(m.key, func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)

		if err := m.call(ctx); err != nil {
			return nil, c.fail(m.op, err, m.failMsg)
		}

		if _, err := c.fetch(ctx); err != nil {
			// сама мутация прошла, пользователь увидит старую корзину до следующего чтения
			c.Logger.Warnw("cart changed but resync failed", "op", m.op, "product_id", m.product, "err", err)
		}
		if m.open {
			c.setOpen(true)
		}
		c.Notifier.Success(m.okMsg)

		return nil, nil
	})
	if shared {
		c.Logger.Debugw("joined in-flight cart mutation", "key", m.key)
	}

	return c.Snapshot(), err
}

func (c *Container) fetch(ctx context.Context) (types.Snapshot, error) {
	seq := c.nextSeq()

	snapshot, err := c.API.GetCart(ctx)
	if err != nil {
		c.Logger.Errorw("failed to fetch cart", "err", err)
		return c.Snapshot(), myErr.NewOpError(OpFetch, err, MsgFetchFailed)
	}

	if !c.apply(seq, snapshot) {
		c.Logger.Debugw("dropped out-of-order cart response", "seq", seq)
	}

	return c.Snapshot(), nil
}

// apply заменяет снапшот, если ответ не старее уже примененного
func (c *Container) apply(seq uint64, snapshot types.Snapshot) bool {
	c.mu.Lock()
	if seq <= c.applied {
		c.mu.Unlock()
		return false
	}
	c.applied = seq
	c.snapshot = snapshot.Clone()
	current := c.snapshot.Clone()
	listeners := append([]func(types.Snapshot){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(current.Clone())
	}

	return true
}

func (c *Container) fail(op string, err error, fallback string) *myErr.OpError {
	opErr := myErr.NewOpError(op, err, fallback)
	c.Logger.Warnw("cart operation failed", "op", op, "kind", opErr.Kind, "err", err)
	if opErr.Kind != myErr.KindCanceled {
		c.Notifier.Error(opErr.Message)
	}

	return opErr
}

// reject - отказ без сетевого вызова
func (c *Container) reject(op, msg string, err error) (types.Snapshot, error) {
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

func (c *Container) setOpen(open bool) {
	c.mu.Lock()
	c.isOpen = open
	c.mu.Unlock()
}
