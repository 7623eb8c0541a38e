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

func TestEnsureDefaultCostParameters_InsertsWhenMissing(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM cost_parameters WHERE parameter_id = ?)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO cost_parameters (parameter_id, labor_rate, overhead_rate) VALUES (?, ?, ?)`)).
		WithArgs(1, 50.00, 0.20).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.EnsureDefaultCostParameters(context.Background())
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureDefaultCostParameters_SkipsWhenSeeded(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM cost_parameters WHERE parameter_id = ?)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	// no insert expected: seeding must never overwrite an existing row
	err := s.EnsureDefaultCostParameters(context.Background())
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureDefaultCostParameters_DuplicateKeyRace(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM cost_parameters WHERE parameter_id = ?)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	// another instance inserted between the check and our insert
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO cost_parameters (parameter_id, labor_rate, overhead_rate) VALUES (?, ?, ?)`)).
		WithArgs(1, 50.00, 0.20).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"})

	err := s.EnsureDefaultCostParameters(context.Background())
	assert.NoError(t, err)
}

func TestGetCostParameters(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT labor_rate, overhead_rate FROM cost_parameters WHERE parameter_id = ?`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"labor_rate", "overhead_rate"}).AddRow(50.0, 0.20))

	params, err := s.GetCostParameters(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 50.0, params.LaborRate, 1e-9)
	assert.InDelta(t, 0.20, params.OverheadRate, 1e-9)
}

func TestGetCostParameters_Missing(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT labor_rate, overhead_rate FROM cost_parameters WHERE parameter_id = ?`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"labor_rate", "overhead_rate"}))

	_, err := s.GetCostParameters(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
