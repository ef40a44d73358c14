package product

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	myErr "teranga-storefront/internal/types/errors"
)

const selectProduct = "SELECT product_id, name, price, image, stock FROM products WHERE product_id = $1 AND is_active = true"

func TestGetByID(t *testing.T) {
	tests := []struct {
		name          string
		mockBehavior  func(mock sqlmock.Sqlmock)
		expected      *Product
		expectedError error
	}{
		{
			name: "товар найден",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"product_id", "name", "price", "image", "stock"}).
					AddRow("P1", "Bissap 1L", 1500, "/img/p1.jpg", 12)
				mock.ExpectQuery(regexp.QuoteMeta(selectProduct)).WithArgs("P1").WillReturnRows(rows)
			},
			expected: &Product{ID: "P1", Name: "Bissap 1L", Price: 1500, Image: "/img/p1.jpg", Stock: 12},
		},
		{
			name: "нет такого товара",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectProduct)).WithArgs("P1").WillReturnError(sql.ErrNoRows)
			},
			expectedError: myErr.ErrProductNotFound,
		},
		{
			name: "ошибка БД",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectProduct)).WithArgs("P1").WillReturnError(errors.New("conn reset"))
			},
			expectedError: myErr.ErrDBInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("ошибка при создании mock db: %s", err)
			}
			defer db.Close()

			repo := NewProductDBRepository(db, zaptest.NewLogger(t).Sugar())
			tt.mockBehavior(mock)

			p, err := repo.GetByID(context.Background(), "P1")
			if tt.expectedError != nil {
				assert.True(t, errors.Is(err, tt.expectedError))
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, p)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
