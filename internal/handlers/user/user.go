package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"go.uber.org/zap"

	"teranga-storefront/internal/contextutil"
	"teranga-storefront/internal/session"
	myErr "teranga-storefront/internal/types/errors"
	"teranga-storefront/internal/user"
)

type UserHandler struct {
	Logger         *zap.SugaredLogger
	UserRepository user.UserRepo
	SessionManger  session.SessionRepo
}

func NewUserHandler(l *zap.SugaredLogger, ur user.UserRepo, sr session.SessionRepo) *UserHandler {
	return &UserHandler{
		Logger:         l,
		UserRepository: ur,
		SessionManger:  sr,
	}
}

type RequestLoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login - POST /api/user/login. Токен уходит в cookie storefront_token
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form RequestLoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}
	// Проверим на валидность переданной почты
	if _, err := mail.ParseAddress(form.Email); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	u, err := h.UserRepository.CheckUser(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, myErr.ErrNotFound, http.StatusNotFound, h.Logger)
			return
		}

		if errors.Is(err, myErr.ErrBadPassword) {
			myErr.SendErrorTo(w, err, http.StatusUnauthorized, h.Logger)
			return
		}

		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// Создаем для него сессию
	sess, err := h.SessionManger.CreateSession(r.Context(), w, u.ID, u.Email)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(u); err != nil {
		h.Logger.Warnw("error writing response", "err", err)
	}

	h.Logger.Infof("created session for %v", sess.ID)
}

// Logout - POST /api/user/logout, только под middleware.Auth
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := contextutil.GetSessionIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	if err := h.SessionManger.DestroySession(r.Context(), w, sessionID); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("destroyed session %v", sessionID)
}
