package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SQLMetricsRepository struct {
	db *sqlx.DB
}

func NewSQLMetricsRepository(db *sqlx.DB) *SQLMetricsRepository {
	return &SQLMetricsRepository{db: db}
}

func (r *SQLMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowxContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN is_sold THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(CASE WHEN is_sold THEN 0 ELSE product_retail_price * quantity END), 0)
		FROM products
	`).Scan(&m.TotalProducts, &m.SoldProducts, &m.TotalQuantity, &m.StockRetailValue)
	if err != nil {
		return m, fmt.Errorf("product totals: %w", err)
	}

	if err := r.db.GetContext(ctx, &m.TotalShifts, `SELECT COUNT(*) FROM product_shifts`); err != nil {
		return m, fmt.Errorf("shift totals: %w", err)
	}

	m.ProductsPerWarehouse = []WarehouseProductCount{}
	err = r.db.SelectContext(ctx, &m.ProductsPerWarehouse, `
		SELECT w.id AS warehouse_id, w.name, COUNT(p.id) AS count
		FROM warehouses w
		LEFT JOIN products p ON p.warehouse_id = w.id
		GROUP BY w.id, w.name
		ORDER BY w.name
	`)
	if err != nil {
		return m, fmt.Errorf("products per warehouse: %w", err)
	}

	return m, nil
}
