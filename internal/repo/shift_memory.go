package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type InMemoryShiftRepository struct {
	mu     sync.RWMutex
	shifts []models.Shift
	nextID int
}

func NewInMemoryShiftRepository() *InMemoryShiftRepository {
	return &InMemoryShiftRepository{
		shifts: []models.Shift{},
		nextID: 1,
	}
}

// Log inserts a new warehouse shift
func (r *InMemoryShiftRepository) Log(_ context.Context, productID, fromWarehouseID, toWarehouseID int) (models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.Shift{
		ID:              r.nextID,
		ProductID:       productID,
		FromWarehouseID: fromWarehouseID,
		ToWarehouseID:   toWarehouseID,
		ShiftedAt:       time.Now().UTC(),
	}
	r.nextID++
	r.shifts = append(r.shifts, s)
	return s, nil
}

func (r *InMemoryShiftRepository) GetByProductID(_ context.Context, productID int, sf ShiftFilter) ([]models.Shift, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first: walk the log backwards.
	var filtered []models.Shift
	for i := len(r.shifts) - 1; i >= 0; i-- {
		s := r.shifts[i]
		if s.ProductID != productID {
			continue
		}
		if (sf.Since != nil && s.ShiftedAt.Before(*sf.Since)) || (sf.Until != nil && s.ShiftedAt.After(*sf.Until)) {
			continue
		}
		filtered = append(filtered, s)
	}

	start := clamp(sf.Offset, 0, len(filtered))
	end := len(filtered)
	if sf.Limit > 0 {
		end = clamp(start+sf.Limit, start, len(filtered))
	}

	page := make([]models.Shift, end-start)
	copy(page, filtered[start:end])
	return page, len(filtered), nil
}

func (r *InMemoryShiftRepository) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shifts)
}

func (r *InMemoryShiftRepository) deleteByProduct(productID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.shifts[:0]
	for _, s := range r.shifts {
		if s.ProductID != productID {
			kept = append(kept, s)
		}
	}
	r.shifts = kept
}
