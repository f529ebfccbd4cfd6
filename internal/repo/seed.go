package repo

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

var defaultMasterData = map[string][]string{
	models.Warehouses.Table: {"Main Warehouse", "Secondary Warehouse", "Distribution Center", "Retail Store A", "Retail Store B"},
	models.Categories.Table: {"Electronics", "Clothing", "Food & Beverages", "Home & Garden", "Sports & Outdoors", "Books & Media", "Toys & Games", "Health & Beauty"},
	models.Brands.Table:     {"Samsung", "Apple", "Nike", "Adidas", "Sony", "LG", "Coca-Cola", "Pepsi", "Generic Brand", "House Brand"},
}

// SeedMasterData fills each empty master-data table with a default set and
// returns how many rows it inserted per table. Tables that already hold rows
// are left alone.
func SeedMasterData(ctx context.Context, r MasterDataRepository) (map[string]int, error) {
	inserted := map[string]int{}
	for _, kind := range models.MasterKinds {
		n, err := r.Count(ctx, kind)
		if err != nil {
			return inserted, fmt.Errorf("count %s: %w", kind.Table, err)
		}
		if n > 0 {
			continue
		}
		for _, name := range defaultMasterData[kind.Table] {
			if _, err := r.Create(ctx, kind, name); err != nil {
				return inserted, fmt.Errorf("seed %s %q: %w", kind.Singular, name, err)
			}
			inserted[kind.Table]++
		}
	}
	return inserted, nil
}
