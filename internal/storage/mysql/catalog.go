package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quotation-golang/internal/storage"
)

func (s *Storage) GetProduct(ctx context.Context, id int64) (*storage.Product, error) {
	const op = "storage.mysql.GetProduct"

	query := `SELECT id, name FROM products WHERE id = ?`

	product := &storage.Product{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: product id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return product, nil
}

func (s *Storage) GetMaterial(ctx context.Context, id int64) (*storage.Material, error) {
	const op = "storage.mysql.GetMaterial"

	query := `SELECT material_id, name, cost_per_mm FROM materials WHERE material_id = ?`

	material := &storage.Material{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(&material.ID, &material.Name, &material.CostPerMM)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: material id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return material, nil
}

func (s *Storage) GetCoating(ctx context.Context, id int64) (*storage.Coating, error) {
	const op = "storage.mysql.GetCoating"

	query := `SELECT coating_id, name, cost_per_mm FROM coatings WHERE coating_id = ?`

	coating := &storage.Coating{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(&coating.ID, &coating.Name, &coating.CostPerMM)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: coating id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return coating, nil
}

// ListOperationsForProduct returns the operations assigned to a product joined
// with their per-pair cost multipliers. An empty result is not an error: a
// product with no operations simply has zero labor cost.
func (s *Storage) ListOperationsForProduct(ctx context.Context, productID int64) ([]storage.ProductOperation, error) {
	const op = "storage.mysql.ListOperationsForProduct"

	query := `
		SELECT po.product_id, po.operation_id, o.name, o.base_labor_cost, po.cost_multiplier
		FROM product_operations po
		JOIN operations o ON o.operation_id = po.operation_id
		WHERE po.product_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var operations []storage.ProductOperation

	for rows.Next() {
		row := storage.ProductOperation{}

		err := rows.Scan(&row.ProductID, &row.OperationID, &row.Name, &row.BaseLaborCost, &row.CostMultiplier)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		operations = append(operations, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return operations, nil
}

func (s *Storage) ListProducts(ctx context.Context) ([]*storage.Product, error) {
	const op = "storage.mysql.ListProducts"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM products`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var products []*storage.Product

	for rows.Next() {
		product := &storage.Product{}

		if err := rows.Scan(&product.ID, &product.Name); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return products, nil
}

func (s *Storage) ListMaterials(ctx context.Context) ([]*storage.Material, error) {
	const op = "storage.mysql.ListMaterials"

	rows, err := s.db.QueryContext(ctx, `SELECT material_id, name, cost_per_mm FROM materials`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var materials []*storage.Material

	for rows.Next() {
		material := &storage.Material{}

		if err := rows.Scan(&material.ID, &material.Name, &material.CostPerMM); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		materials = append(materials, material)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return materials, nil
}

func (s *Storage) ListCoatings(ctx context.Context) ([]*storage.Coating, error) {
	const op = "storage.mysql.ListCoatings"

	rows, err := s.db.QueryContext(ctx, `SELECT coating_id, name, cost_per_mm FROM coatings`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var coatings []*storage.Coating

	for rows.Next() {
		coating := &storage.Coating{}

		if err := rows.Scan(&coating.ID, &coating.Name, &coating.CostPerMM); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		coatings = append(coatings, coating)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return coatings, nil
}

func (s *Storage) ListOperations(ctx context.Context) ([]*storage.Operation, error) {
	const op = "storage.mysql.ListOperations"

	rows, err := s.db.QueryContext(ctx, `SELECT operation_id, name, base_labor_cost FROM operations`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var operations []*storage.Operation

	for rows.Next() {
		operation := &storage.Operation{}

		if err := rows.Scan(&operation.ID, &operation.Name, &operation.BaseLaborCost); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		operations = append(operations, operation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate rows: %w", op, err)
	}

	return operations, nil
}
