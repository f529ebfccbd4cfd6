package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a row of the products table.
type Product struct {
	ID          int             `db:"id" json:"id"`
	WarehouseID int             `db:"warehouse_id" json:"warehouse_id"`
	CategoryID  int             `db:"category_id" json:"category_id"`
	BrandID     int             `db:"brand_id" json:"brand_id"`
	Name        string          `db:"product_name" json:"product_name"`
	UniqueCode  *string         `db:"unique_code" json:"unique_code"`
	ScanCode    *string         `db:"scan_code" json:"scan_code"`
	Description *string         `db:"description" json:"description"`
	RetailPrice decimal.Decimal `db:"product_retail_price" json:"product_retail_price"`
	SalePrice   decimal.Decimal `db:"product_sale_price" json:"product_sale_price"`
	Quantity    int             `db:"quantity" json:"quantity"`
	IsSold      bool            `db:"is_sold" json:"is_sold"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type WarehouseRef struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
}

// ProductDetail is a product joined with its master-data names and images.
// Names are nil when the referenced row is gone.
type ProductDetail struct {
	Product
	Warehouse     WarehouseRef   `json:"warehouse"`
	CategoryName  *string        `json:"category_name"`
	BrandName     *string        `json:"brand_name"`
	ProductImages []ProductImage `json:"product_images"`
}

type ProductImage struct {
	ID        int       `db:"id" json:"id"`
	ProductID int       `db:"product_id" json:"product_id"`
	Image     string    `db:"image" json:"image"`
	URL       string    `db:"-" json:"url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Shift records a product moving from one warehouse to another.
type Shift struct {
	ID              int       `db:"id" json:"id"`
	ProductID       int       `db:"product_id" json:"product_id"`
	FromWarehouseID int       `db:"from_warehouse_id" json:"from_warehouse_id"`
	ToWarehouseID   int       `db:"to_warehouse_id" json:"to_warehouse_id"`
	ShiftedAt       time.Time `db:"shifted_at" json:"shifted_at"`
}
