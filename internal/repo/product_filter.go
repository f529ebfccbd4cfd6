package repo

import (
	"github.com/shopspring/decimal"
)

// ProductFilter selects products by exact master-data ids and a
// case-insensitive substring of name, unique code or scan code.
type ProductFilter struct {
	WarehouseID *int
	CategoryID  *int
	BrandID     *int
	Search      string
	Offset      int
	Limit       int
}

// ProductUpdate carries the mutable product fields. Nil fields are left as
// they are; the Clear flags store NULL in the nullable text columns.
type ProductUpdate struct {
	WarehouseID *int
	CategoryID  *int
	BrandID     *int
	Name        *string
	UniqueCode  *string
	ScanCode    *string
	Description *string
	RetailPrice *decimal.Decimal
	SalePrice   *decimal.Decimal
	Quantity    *int
	IsSold      *bool

	ClearUniqueCode  bool
	ClearScanCode    bool
	ClearDescription bool
}

func (pu ProductUpdate) IsEmpty() bool {
	return len(pu.assignments()) == 0
}

type assignment struct {
	column string
	value  any
}

// assignments lists the set fields in a fixed column order.
func (pu ProductUpdate) assignments() []assignment {
	var out []assignment
	add := func(column string, set bool, value any) {
		if set {
			out = append(out, assignment{column, value})
		}
	}
	add("warehouse_id", pu.WarehouseID != nil, derefAny(pu.WarehouseID))
	add("category_id", pu.CategoryID != nil, derefAny(pu.CategoryID))
	add("brand_id", pu.BrandID != nil, derefAny(pu.BrandID))
	add("product_name", pu.Name != nil, derefAny(pu.Name))
	add("unique_code", pu.UniqueCode != nil || pu.ClearUniqueCode, derefAny(pu.UniqueCode))
	add("scan_code", pu.ScanCode != nil || pu.ClearScanCode, derefAny(pu.ScanCode))
	add("description", pu.Description != nil || pu.ClearDescription, derefAny(pu.Description))
	add("product_retail_price", pu.RetailPrice != nil, derefAny(pu.RetailPrice))
	add("product_sale_price", pu.SalePrice != nil, derefAny(pu.SalePrice))
	add("quantity", pu.Quantity != nil, derefAny(pu.Quantity))
	add("is_sold", pu.IsSold != nil, derefAny(pu.IsSold))
	return out
}

func derefAny[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
