package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"quotation-golang/internal/storage"
)

// The singleton cost_parameters row always has this id.
const costParametersID = 1

// Documented startup defaults. Seeding never overwrites an existing row.
const (
	defaultLaborRate    = 50.00
	defaultOverheadRate = 0.20
)

// EnsureDefaultCostParameters inserts the default cost_parameters row if it is
// missing. A duplicate-key error from a concurrent first start means another
// instance won the seed, which is fine.
func (s *Storage) EnsureDefaultCostParameters(ctx context.Context) error {
	const op = "storage.mysql.EnsureDefaultCostParameters"

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM cost_parameters WHERE parameter_id = ?)`, costParametersID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%s: check existence: %w", op, err)
	}
	if exists {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO cost_parameters (parameter_id, labor_rate, overhead_rate) VALUES (?, ?, ?)`,
		costParametersID, defaultLaborRate, defaultOverheadRate,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			// already seeded by a concurrent start
			return nil
		}
		return fmt.Errorf("%s: insert defaults: %w", op, err)
	}

	return nil
}

func (s *Storage) GetCostParameters(ctx context.Context) (*storage.CostParameters, error) {
	const op = "storage.mysql.GetCostParameters"

	query := `SELECT labor_rate, overhead_rate FROM cost_parameters WHERE parameter_id = ?`

	params := &storage.CostParameters{}

	err := s.db.QueryRowContext(ctx, query, costParametersID).Scan(&params.LaborRate, &params.OverheadRate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: cost parameters row: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return params, nil
}

func (s *Storage) UpdateCostParameters(ctx context.Context, params storage.CostParameters) error {
	const op = "storage.mysql.UpdateCostParameters"

	stmt := `UPDATE cost_parameters SET labor_rate = ?, overhead_rate = ? WHERE parameter_id = ?`

	_, err := s.db.ExecContext(ctx, stmt, params.LaborRate, params.OverheadRate, costParametersID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
