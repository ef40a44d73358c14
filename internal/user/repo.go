package user

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	myErr "teranga-storefront/internal/types/errors"
)

type UserDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewUserDBRepository(db *sql.DB, l *zap.SugaredLogger) *UserDBRepository {
	return &UserDBRepository{
		DB:     db,
		Logger: l,
	}
}

func (ur *UserDBRepository) CheckUser(ctx context.Context, email, password string) (*User, error) {
	query := `
	SELECT user_id,
		   name,
		   email,
		   password_hash
	FROM users
	WHERE email = $1
	`
	u := &User{}
	err := ur.DB.QueryRowContext(ctx, query, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Ошибка при поиске пользователя по почте: %v", err)
		return nil, myErr.ErrDBInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, myErr.ErrBadPassword
	}

	return u, nil
}
