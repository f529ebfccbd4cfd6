package repo

import (
	"context"

	"github.com/shopspring/decimal"
)

type WarehouseProductCount struct {
	WarehouseID int     `db:"warehouse_id" json:"warehouse_id"`
	Name        *string `db:"name" json:"name"`
	Count       int     `db:"count" json:"count"`
}

type Metrics struct {
	TotalProducts int `json:"total_products"`
	SoldProducts  int `json:"sold_products"`
	TotalQuantity int `json:"total_quantity"`
	// StockRetailValue sums retail price times quantity over unsold products.
	StockRetailValue     decimal.Decimal         `json:"stock_retail_value"`
	TotalShifts          int                     `json:"total_shifts"`
	ProductsPerWarehouse []WarehouseProductCount `json:"products_per_warehouse"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
