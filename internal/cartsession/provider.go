package cartsession

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenLength = 9

type Provider struct {
	Store  Store
	Logger *zap.SugaredLogger

	mu sync.Mutex
}

func NewProvider(store Store, logger *zap.SugaredLogger) *Provider {
	return &Provider{
		Store:  store,
		Logger: logger,
	}
}

// GetOrCreate возвращает токен анонимной сессии, создавая его при первом вызове.
// Ошибок не возвращает: при сбое хранилища отдает свежий токен только для этого вызова.
func (p *Provider) GetOrCreate(ctx context.Context) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, err := p.Store.Get(ctx, StorageKey)
	switch {
	case err == nil && id != "":
		return id
	case err != nil && !errors.Is(err, ErrNotFound):
		p.Logger.Warnw("failed to read cart session id, using a one-off token", "err", err)
		return NewID()
	}

	id = NewID()
	if err := p.Store.Set(ctx, StorageKey, id); err != nil {
		p.Logger.Warnw("failed to persist cart session id", "err", err)
		return id
	}

	p.Logger.Infow("created cart session", "session_id", id)
	return id
}

// NewID генерирует токен вида session_xxxxxxxxx
func NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return Prefix + raw[:tokenLength]
}
