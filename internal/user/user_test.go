package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	myErr "teranga-storefront/internal/types/errors"
)

func TestUserDBRepository_CheckUser(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	logger := zaptest.NewLogger(t).Sugar()
	repository := NewUserDBRepository(db, logger)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost) // nolint:errcheck
	columns := []string{"user_id", "name", "email", "password_hash"}

	tests := []struct {
		name        string
		email       string
		password    string
		mockQuery   func()
		expectUser  bool
		expectError error
	}{
		{
			name:     "valid credentials",
			email:    "awa@example.sn",
			password: "correct_password",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT user_id,.*FROM users WHERE email = \$1`).
					WithArgs("awa@example.sn").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("123", "Awa", "awa@example.sn", string(hashedPassword)))
			},
			expectUser:  true,
			expectError: nil,
		},
		{
			name:     "user not found",
			email:    "notfound@example.sn",
			password: "whatever",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT user_id,.*FROM users WHERE email = \$1`).
					WithArgs("notfound@example.sn").
					WillReturnError(sql.ErrNoRows)
			},
			expectUser:  false,
			expectError: myErr.ErrNotFound,
		},
		{
			name:     "wrong password",
			email:    "awa@example.sn",
			password: "wrong_password",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT user_id,.*FROM users WHERE email = \$1`).
					WithArgs("awa@example.sn").
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("123", "Awa", "awa@example.sn", string(hashedPassword)))
			},
			expectUser:  false,
			expectError: myErr.ErrBadPassword,
		},
		{
			name:     "db error",
			email:    "awa@example.sn",
			password: "correct_password",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT user_id,.*FROM users WHERE email = \$1`).
					WithArgs("awa@example.sn").
					WillReturnError(errors.New("connection reset"))
			},
			expectUser:  false,
			expectError: myErr.ErrDBInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockQuery()

			u, err := repository.CheckUser(context.Background(), tt.email, tt.password)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectUser, u != nil)
			if u != nil {
				assert.Equal(t, "123", u.ID)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
