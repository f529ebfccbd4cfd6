package handlers

import (
	"strings"

	repo "github.com/rogerio-castellano/inventory-api/internal/repo"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProductCreate(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if p.WarehouseID == nil {
		errs = append(errs, ProductValidationError{Field: "warehouse_id", Description: "Warehouse is required"})
	}
	if p.CategoryID == nil {
		errs = append(errs, ProductValidationError{Field: "category_id", Description: "Category is required"})
	}
	if p.BrandID == nil {
		errs = append(errs, ProductValidationError{Field: "brand_id", Description: "Brand is required"})
	}
	if p.Name == nil {
		errs = append(errs, ProductValidationError{Field: "product_name", Description: "Product name is required"})
	}
	if p.RetailPrice == nil {
		errs = append(errs, ProductValidationError{Field: "product_retail_price", Description: "Retail price is required"})
	}
	if p.SalePrice == nil {
		errs = append(errs, ProductValidationError{Field: "product_sale_price", Description: "Sale price is required"})
	}
	return append(errs, validateProductValues(p)...)
}

// validateProductValues checks the fields that are present.
func validateProductValues(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	ids := []struct {
		field string
		id    *int
	}{{"warehouse_id", p.WarehouseID}, {"category_id", p.CategoryID}, {"brand_id", p.BrandID}}
	for _, ref := range ids {
		if ref.id != nil && *ref.id <= 0 {
			errs = append(errs, ProductValidationError{Field: ref.field, Description: "Id must be a positive integer"})
		}
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "product_name", Description: "Product name cannot be empty"})
	}
	if p.RetailPrice != nil && p.RetailPrice.IsNegative() {
		errs = append(errs, ProductValidationError{Field: "product_retail_price", Description: "Retail price cannot be negative"})
	}
	if p.SalePrice != nil && p.SalePrice.IsNegative() {
		errs = append(errs, ProductValidationError{Field: "product_sale_price", Description: "Sale price cannot be negative"})
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "Quantity cannot be negative"})
	}
	return errs
}

func validateProductUpdate(p ProductRequest) []ProductValidationError {
	errs := validateProductValues(p)
	if p.UniqueCode != nil && strings.TrimSpace(*p.UniqueCode) == "" {
		errs = append(errs, ProductValidationError{Field: "unique_code", Description: "Unique code cannot be empty"})
	}
	return errs
}

// nonEmpty maps "" to nil so optional text columns store NULL.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func (p ProductRequest) toUpdate() repo.ProductUpdate {
	return repo.ProductUpdate{
		WarehouseID: p.WarehouseID,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
		Name:        p.Name,
		UniqueCode:  p.UniqueCode,
		ScanCode:    p.ScanCode,
		Description: p.Description,
		RetailPrice: p.RetailPrice,
		SalePrice:   p.SalePrice,
		Quantity:    p.Quantity,
		IsSold:      p.IsSold,

		ClearUniqueCode:  p.nulls["unique_code"],
		ClearScanCode:    p.nulls["scan_code"],
		ClearDescription: p.nulls["description"],
	}
}
