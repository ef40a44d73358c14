package user

import "context"

// User покупатель витрины. Избранное привязано к ID
type User struct {
	ID           string `json:"user_id"` // uuid
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// UserRepo интерфейс удовлетворяющий методам сущности пользователя
//
//go:generate mockgen -source=user.go -destination=../mocks/mock_user_repo.go -package=mocks
type UserRepo interface {
	// CheckUser - проверяет пользователя по почте и паролю
	CheckUser(ctx context.Context, email, password string) (*User, error)
}
