package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"quotation-golang/internal/storage"
)

func (s *Storage) SaveConfiguration(ctx context.Context, cfg storage.ProductConfiguration) (int64, error) {
	const op = "storage.mysql.SaveConfiguration"

	stmt := `INSERT INTO product_configurations (product_id, material_id, coating_id) VALUES (?, ?, ?)`

	res, err := s.db.ExecContext(ctx, stmt, cfg.ProductID, cfg.MaterialID, cfg.CoatingID)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1452 {
			// foreign key failed: one of the selected catalog ids does not exist
			return 0, fmt.Errorf("%s: referenced catalog row: %w", op, storage.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetConfiguration(ctx context.Context, id int64) (*storage.ProductConfiguration, error) {
	const op = "storage.mysql.GetConfiguration"

	query := `SELECT config_id, product_id, material_id, coating_id FROM product_configurations WHERE config_id = ?`

	cfg := &storage.ProductConfiguration{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(&cfg.ID, &cfg.ProductID, &cfg.MaterialID, &cfg.CoatingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: configuration id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}
