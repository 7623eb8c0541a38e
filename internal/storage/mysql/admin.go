package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"quotation-golang/internal/storage"
)

func (s *Storage) CreateProduct(ctx context.Context, product storage.Product) (int64, error) {
	const op = "storage.mysql.CreateProduct"

	res, err := s.db.ExecContext(ctx, `INSERT INTO products (name) VALUES (?)`, product.Name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) CreateMaterial(ctx context.Context, material storage.Material) (int64, error) {
	const op = "storage.mysql.CreateMaterial"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO materials (name, cost_per_mm) VALUES (?, ?)`,
		material.Name, material.CostPerMM,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) CreateCoating(ctx context.Context, coating storage.Coating) (int64, error) {
	const op = "storage.mysql.CreateCoating"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO coatings (name, cost_per_mm) VALUES (?, ?)`,
		coating.Name, coating.CostPerMM,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) CreateOperation(ctx context.Context, operation storage.Operation) (int64, error) {
	const op = "storage.mysql.CreateOperation"

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (name, base_labor_cost) VALUES (?, ?)`,
		operation.Name, operation.BaseLaborCost,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

// SetProductOperations replaces the operation assignments of a product with
// the given multipliers in one transaction.
func (s *Storage) SetProductOperations(ctx context.Context, productID int64, assignments []storage.ProductOperation) error {
	const op = "storage.mysql.SetProductOperations"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_operations WHERE product_id = ?`, productID); err != nil {
		return fmt.Errorf("%s: clear assignments: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO product_operations (product_id, operation_id, cost_multiplier)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare insert: %w", op, err)
	}

	for _, a := range assignments {
		multiplier := a.CostMultiplier
		if multiplier == 0 {
			multiplier = 1.0
		}

		_, err := stmt.ExecContext(ctx, productID, a.OperationID, multiplier)
		if err != nil {
			var mysqlErr *mysql.MySQLError
			if errors.As(err, &mysqlErr) && mysqlErr.Number == 1452 {
				return fmt.Errorf("%s: operation id=%d: %w", op, a.OperationID, storage.ErrNotFound)
			}
			return fmt.Errorf("%s: insert assignment operation_id=%d: %w", op, a.OperationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
