package session

import (
	"context"
	"net/http"
	"time"
)

// CookieName - имя cookie, в которой клиент получает JWT сессии
const CookieName = "storefront_token"

// Session - структура сессии
type Session struct {
	ID        string
	UserID    string
	StartTime time.Time
	EndTime   time.Time
}

// SessionRepo - репозиторий для работы с сессиями
//
//go:generate mockgen -source=session.go -destination=../mocks/mock_session_repo.go -package=mocks
type SessionRepo interface {
	// CreateSession - создает новую сессию для уникального пользователя и кладет ее в Redis.
	// JWT уходит клиенту в cookie storefront_token
	CreateSession(ctx context.Context, w http.ResponseWriter, userID string, email string) (*Session, error)
	// CheckSession - проверяет существование сессии в Redis и не истекла ли она
	// Возвращает *Session в случае успеха, иначе nil
	CheckSession(r *http.Request) (*Session, error)

	// ExtendSession - продлевает сессию на baseDuration, если пользователь активно пользуется сервисом
	// Возвращает error
	ExtendSession(ctx context.Context, sessionID string) error

	// DestroySession - удаляет сессию из Redis и стирает cookie у клиента
	DestroySession(ctx context.Context, w http.ResponseWriter, sessionID string) error
}
