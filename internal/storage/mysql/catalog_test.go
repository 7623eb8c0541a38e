package mysql

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-golang/internal/storage"
)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Storage{db: db}, mock
}

func TestGetMaterial(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT material_id, name, cost_per_mm FROM materials WHERE material_id = ?`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"material_id", "name", "cost_per_mm"}).AddRow(2, "Steel", 2.0))

	material, err := s.GetMaterial(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), material.ID)
	assert.Equal(t, "Steel", material.Name)
	assert.InDelta(t, 2.0, material.CostPerMM, 1e-9)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMaterial_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT material_id, name, cost_per_mm FROM materials WHERE material_id = ?`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"material_id", "name", "cost_per_mm"}))

	_, err := s.GetMaterial(context.Background(), 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetProduct_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM products WHERE id = ?`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := s.GetProduct(context.Background(), 5)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetCoating(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT coating_id, name, cost_per_mm FROM coatings WHERE coating_id = ?`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"coating_id", "name", "cost_per_mm"}).AddRow(3, "Powder", 1.0))

	coating, err := s.GetCoating(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Powder", coating.Name)
	assert.InDelta(t, 1.0, coating.CostPerMM, 1e-9)
}

func TestListOperationsForProduct(t *testing.T) {
	s, mock := newMockStorage(t)

	rows := sqlmock.NewRows([]string{"product_id", "operation_id", "name", "base_labor_cost", "cost_multiplier"}).
		AddRow(1, 7, "welding", 10.0, 1.5).
		AddRow(1, 8, "deburring", 4.0, 1.0)

	mock.ExpectQuery("SELECT po.product_id, po.operation_id, o.name, o.base_labor_cost, po.cost_multiplier").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	operations, err := s.ListOperationsForProduct(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, operations, 2)
	assert.Equal(t, "welding", operations[0].Name)
	assert.InDelta(t, 1.5, operations[0].CostMultiplier, 1e-9)
	assert.Equal(t, int64(8), operations[1].OperationID)
}

func TestListOperationsForProduct_Empty(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT po.product_id, po.operation_id, o.name, o.base_labor_cost, po.cost_multiplier").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "operation_id", "name", "base_labor_cost", "cost_multiplier"}))

	// a product without assigned operations is valid, not an error
	operations, err := s.ListOperationsForProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, operations)
}
