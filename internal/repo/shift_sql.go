package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/models"
)

const shiftColumns = `id, product_id, from_warehouse_id, to_warehouse_id, shifted_at`

type SQLShiftRepository struct {
	db *sqlx.DB
}

func NewSQLShiftRepository(db *sqlx.DB) *SQLShiftRepository {
	return &SQLShiftRepository{db: db}
}

// Log inserts a new warehouse shift
func (r *SQLShiftRepository) Log(ctx context.Context, productID, fromWarehouseID, toWarehouseID int) (models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := insertID(ctx, r.db,
		`INSERT INTO product_shifts (product_id, from_warehouse_id, to_warehouse_id) VALUES (?, ?, ?)`,
		productID, fromWarehouseID, toWarehouseID)
	if err != nil {
		return models.Shift{}, fmt.Errorf("failed to insert shift: %w", err)
	}

	var s models.Shift
	err = r.db.GetContext(ctx, &s, r.db.Rebind(`SELECT `+shiftColumns+` FROM product_shifts WHERE id = ?`), id)
	return s, err
}

func (r *SQLShiftRepository) GetByProductID(ctx context.Context, productID int, sf ShiftFilter) ([]models.Shift, int, error) {
	where := " WHERE product_id = ?"
	args := []any{productID}
	if sf.Since != nil {
		where += " AND shifted_at >= ?"
		args = append(args, *sf.Since)
	}
	if sf.Until != nil {
		where += " AND shifted_at <= ?"
		args = append(args, *sf.Until)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(`SELECT COUNT(*) FROM product_shifts`+where), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	shifts := []models.Shift{}
	if total == 0 || sf.Offset >= total {
		return shifts, total, nil
	}

	query := `SELECT ` + shiftColumns + ` FROM product_shifts` + where + ` ORDER BY shifted_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, sf.Limit, sf.Offset)
	if err := r.db.SelectContext(ctx, &shifts, r.db.Rebind(query), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return shifts, total, nil
}
