package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type ShiftFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset int
	Limit  int
}

type ShiftRepository interface {
	Log(ctx context.Context, productID, fromWarehouseID, toWarehouseID int) (models.Shift, error)
	// GetByProductID returns a page of the product's shifts, newest first, and
	// the total number matching the filter.
	GetByProductID(ctx context.Context, productID int, sf ShiftFilter) ([]models.Shift, int, error)
}
