package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Account - вход/выход на бэкенде, реализуется transport.AccountClient
type Account interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
}

type Manager struct {
	State   *State
	Jar     *Jar
	Account Account
	Logger  *zap.SugaredLogger
}

func NewManager(state *State, jar *Jar, account Account, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		State:   state,
		Jar:     jar,
		Account: account,
		Logger:  logger,
	}
}

// Login получает cookie с токеном и переводит State в "вошел"
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.Account.Login(ctx, email, password); err != nil {
		m.Logger.Warnw("login failed", "email", email, "err", err)
		return fmt.Errorf("login: %w", err)
	}

	m.State.Set(true)
	m.Logger.Infow("signed in", "email", email)
	return nil
}

// Logout всегда очищает локальные cookie, даже если бэкенд недоступен
func (m *Manager) Logout(ctx context.Context) error {
	remoteErr := m.Account.Logout(ctx)
	if remoteErr != nil {
		m.Logger.Warnw("remote logout failed, dropping local credentials anyway", "err", remoteErr)
	}

	if err := m.Jar.Reset(); err != nil {
		return fmt.Errorf("reset cookie jar: %w", err)
	}
	m.State.Set(false)

	return nil
}
