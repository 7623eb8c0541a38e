package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-golang/internal/storage"
)

func TestSaveConfiguration(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_configurations (product_id, material_id, coating_id) VALUES (?, ?, ?)`)).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := s.SaveConfiguration(context.Background(), storage.ProductConfiguration{
		ProductID:  1,
		MaterialID: 2,
		CoatingID:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestSaveConfiguration_UnknownCatalogID(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_configurations (product_id, material_id, coating_id) VALUES (?, ?, ?)`)).
		WithArgs(int64(1), int64(99), int64(3)).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

	_, err := s.SaveConfiguration(context.Background(), storage.ProductConfiguration{
		ProductID:  1,
		MaterialID: 99,
		CoatingID:  3,
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetConfiguration(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT config_id, product_id, material_id, coating_id FROM product_configurations WHERE config_id = ?`)).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"config_id", "product_id", "material_id", "coating_id"}).AddRow(11, 1, 2, 3))

	cfg, err := s.GetConfiguration(context.Background(), 11)
	require.NoError(t, err)

	assert.Equal(t, int64(1), cfg.ProductID)
	assert.Equal(t, int64(2), cfg.MaterialID)
	assert.Equal(t, int64(3), cfg.CoatingID)
}
