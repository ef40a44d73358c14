package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	errorspkg "teranga-storefront/internal/types/errors"
)

const keyPrefix = "session:"

type SessionRepository struct {
	RedisClient  *redis.Client
	Logger       *zap.SugaredLogger
	tokenSecret  string
	baseDuration time.Duration
	secureCookie bool
}

func NewSessionRepository(
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
	tokenSecret string,
	baseDuration time.Duration,
	secureCookie bool,
) *SessionRepository {
	return &SessionRepository{
		RedisClient:  redisClient,
		Logger:       logger,
		tokenSecret:  tokenSecret,
		baseDuration: baseDuration,
		secureCookie: secureCookie,
	}
}

func (sessionRepository *SessionRepository) CreateSession(
	ctx context.Context,
	w http.ResponseWriter,
	userID string,
	email string,
) (*Session, error) {
	now := time.Now()

	// Создаём новую сессию
	sessionID := uuid.New().String()
	session := &Session{
		ID:        sessionID,
		UserID:    userID,
		StartTime: now,
		EndTime:   now.Add(sessionRepository.baseDuration),
	}

	// Сохраняем сессию в Redis
	if err := sessionRepository.saveSessionToRedis(ctx, session); err != nil {
		// Логируется внутри saveSessionToRedis
		return nil, err
	}

	// Генерируем JWT токен
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":      email,
		"id":         userID,
		"iat":        session.StartTime.Unix(),
		"exp":        session.EndTime.Unix(),
		"session_id": session.ID,
	})

	tokenStr, err := token.SignedString([]byte(sessionRepository.tokenSecret))
	if err != nil {
		sessionRepository.Logger.Error("Failed to sign JWT token", zap.Error(err))
		return nil, fmt.Errorf("error signing token: %w", err)
	}

	http.SetCookie(w, sessionRepository.cookie(tokenStr, session.EndTime))

	sessionRepository.Logger.Infof("Session %s created and JWT cookie set for user: %s", session.ID, email)
	return session, nil
}

func (sessionRepository *SessionRepository) CheckSession(r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, errorspkg.ErrNoAuth
	}

	// Разбор токена
	token, err := jwt.Parse(c.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			sessionRepository.Logger.Warnf("Unexpected signing method: %v", token.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(sessionRepository.tokenSecret), nil
	})
	if err != nil || !token.Valid {
		sessionRepository.Logger.Warnf("Invalid JWT token: %v", err)
		return nil, errorspkg.ErrNoAuth
	}

	// Извлечение claims
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		sessionRepository.Logger.Warn("Unexpected JWT claims type")
		return nil, errorspkg.ErrNoAuth
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		sessionRepository.Logger.Warn("session_id claim is missing or not a string")
		return nil, errorspkg.ErrNoAuth
	}

	// Поиск сессии по ID
	ctx := r.Context()
	session, err := sessionRepository.getSessionFromRedis(ctx, sessionID)
	if err != nil {
		return nil, err // уже логируется внутри
	}

	if time.Now().After(session.EndTime) {
		_ = sessionRepository.RedisClient.Del(ctx, keyPrefix+sessionID).Err() // nolint:errcheck
		return nil, errorspkg.ErrSessionIsExpired
	}

	return session, nil
}

func (sessionRepository *SessionRepository) ExtendSession(
	ctx context.Context,
	sessionID string,
) error {
	session, err := sessionRepository.getSessionFromRedis(ctx, sessionID)
	if err != nil {
		// Все логирование происходит внутри getSessionFromRedis
		return err
	}

	session.EndTime = time.Now().Add(sessionRepository.baseDuration)

	if err = sessionRepository.saveSessionToRedis(ctx, session); err != nil {
		sessionRepository.Logger.Error(
			"Failed update session end time",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return err
	}

	return nil
}

func (sessionRepository *SessionRepository) DestroySession(
	ctx context.Context,
	w http.ResponseWriter,
	sessionID string,
) error {
	// Cookie стираем в любом случае, даже если Redis недоступен
	expired := sessionRepository.cookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	if err := sessionRepository.RedisClient.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		sessionRepository.Logger.Error(
			"Failed delete session from Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return err
	}

	sessionRepository.Logger.Infof("Session %s destroyed", sessionID)
	return nil
}

func (sessionRepository *SessionRepository) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   sessionRepository.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (sessionRepository *SessionRepository) saveSessionToRedis(
	ctx context.Context,
	session *Session,
) error {
	sessionDataJSON, err := json.Marshal(session)
	if err != nil {
		sessionRepository.Logger.Error(
			"Failed encode session to JSON",
			zap.Error(err),
			zap.String("sessionID", session.ID),
		)

		return err
	}

	err = sessionRepository.RedisClient.Set(ctx, keyPrefix+session.ID, sessionDataJSON, sessionRepository.baseDuration).Err()
	if err != nil {
		sessionRepository.Logger.Error(
			"Failed save session to Redis",
			zap.Error(err),
			zap.String("sessionID", session.ID),
		)

		return err
	}
	sessionRepository.Logger.Debugf("Session %s saved to Redis successfully", session.ID)

	return nil
}

func (sessionRepository *SessionRepository) getSessionFromRedis(
	ctx context.Context,
	sessionID string,
) (*Session, error) {
	sessionDataJSON, err := sessionRepository.RedisClient.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			sessionRepository.Logger.Warnf("Session %s not found in Redis", sessionID)

			return nil, errorspkg.ErrSessionNotFound
		}

		sessionRepository.Logger.Error(
			"Failed get session from Redis",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return nil, err
	}

	var session Session
	if err = json.Unmarshal(sessionDataJSON, &session); err != nil {
		sessionRepository.Logger.Error(
			"Failed decode session from JSON",
			zap.Error(err),
			zap.String("sessionID", sessionID),
		)

		return nil, err
	}

	return &session, nil
}
