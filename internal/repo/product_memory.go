package repo

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. It enforces the same references as the SQL schema:
// master-data ids must exist, unique codes are unique, and deleting a product
// deletes its images.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int

	master *InMemoryMasterDataRepository
	images *InMemoryImageRepository
	shifts *InMemoryShiftRepository
	clock  func() time.Time
}

func NewInMemoryProductRepository(master *InMemoryMasterDataRepository, images *InMemoryImageRepository) *InMemoryProductRepository {
	r := &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
		master:   master,
		images:   images,
		clock:    monotonicClock(),
	}
	master.inUse = r.references
	return r
}

// SetShiftRepository makes Delete also drop the product's shift history.
func (r *InMemoryProductRepository) SetShiftRepository(shifts *InMemoryShiftRepository) {
	r.shifts = shifts
}

// monotonicClock returns strictly increasing timestamps so creation order is
// stable even when products are created within the same clock tick.
func monotonicClock() func() time.Time {
	var mu sync.Mutex
	var last time.Time
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now().UTC()
		if !now.After(last) {
			now = last.Add(time.Microsecond)
		}
		last = now
		return now
	}
}

func (r *InMemoryProductRepository) checkReferences(p models.Product) error {
	if _, ok := r.master.lookup(models.Warehouses, p.WarehouseID); !ok {
		return ErrInvalidReference
	}
	if _, ok := r.master.lookup(models.Categories, p.CategoryID); !ok {
		return ErrInvalidReference
	}
	if _, ok := r.master.lookup(models.Brands, p.BrandID); !ok {
		return ErrInvalidReference
	}
	return nil
}

// uniqueCodeTaken must be called with r.mu held.
func (r *InMemoryProductRepository) uniqueCodeTaken(code *string, exceptID int) bool {
	if code == nil {
		return false
	}
	for _, p := range r.products {
		if p.ID != exceptID && p.UniqueCode != nil && *p.UniqueCode == *code {
			return true
		}
	}
	return false
}

func (r *InMemoryProductRepository) references(kind models.MasterKind, id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		switch kind.Table {
		case models.Warehouses.Table:
			if p.WarehouseID == id {
				return true
			}
		case models.Categories.Table:
			if p.CategoryID == id {
				return true
			}
		case models.Brands.Table:
			if p.BrandID == id {
				return true
			}
		}
	}
	return false
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	if err := r.checkReferences(product); err != nil {
		return models.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.uniqueCodeTaken(product.UniqueCode, 0) {
		return models.Product{}, ErrDuplicatedValueUnique
	}

	now := r.clock()
	product.ID = r.nextID
	product.IsSold = false
	product.CreatedAt, product.UpdatedAt = now, now
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) find(match func(models.Product) bool) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if match(p) {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(_ context.Context, id int) (models.Product, error) {
	return r.find(func(p models.Product) bool { return p.ID == id })
}

func (r *InMemoryProductRepository) GetByUniqueCode(_ context.Context, code string) (models.Product, error) {
	return r.find(func(p models.Product) bool { return p.UniqueCode != nil && *p.UniqueCode == code })
}

func (r *InMemoryProductRepository) detail(p models.Product) models.ProductDetail {
	d := models.ProductDetail{
		Product:       p,
		Warehouse:     models.WarehouseRef{ID: p.WarehouseID},
		ProductImages: []models.ProductImage{},
	}
	if name, ok := r.master.lookup(models.Warehouses, p.WarehouseID); ok {
		d.Warehouse.Name = &name
	}
	if name, ok := r.master.lookup(models.Categories, p.CategoryID); ok {
		d.CategoryName = &name
	}
	if name, ok := r.master.lookup(models.Brands, p.BrandID); ok {
		d.BrandName = &name
	}
	return d
}

func (r *InMemoryProductRepository) GetDetail(ctx context.Context, id int) (models.ProductDetail, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return models.ProductDetail{}, err
	}
	return r.detail(p), nil
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.WarehouseID != nil && p.WarehouseID != *pf.WarehouseID {
		return false
	}
	if pf.CategoryID != nil && p.CategoryID != *pf.CategoryID {
		return false
	}
	if pf.BrandID != nil && p.BrandID != *pf.BrandID {
		return false
	}
	if pf.Search != "" {
		term := strings.ToLower(pf.Search)
		contains := func(s *string) bool { return s != nil && strings.Contains(strings.ToLower(*s), term) }
		if !contains(&p.Name) && !contains(p.UniqueCode) && !contains(p.ScanCode) {
			return false
		}
	}
	return true
}

func (r *InMemoryProductRepository) Filter(_ context.Context, pf ProductFilter) ([]models.ProductDetail, int, error) {
	r.mu.RLock()
	var filtered []models.Product
	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := clamp(pf.Offset, 0, len(filtered))
	end := len(filtered)
	if pf.Limit > 0 {
		end = clamp(start+pf.Limit, start, len(filtered))
	}

	page := make([]models.ProductDetail, 0, end-start)
	for _, p := range filtered[start:end] {
		page = append(page, r.detail(p))
	}
	return page, len(filtered), nil
}

// Update modifies the set fields of an existing product.
func (r *InMemoryProductRepository) Update(_ context.Context, id int, pu ProductUpdate) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID != id {
			continue
		}
		updated := applyUpdate(p, pu)
		if err := r.checkReferences(updated); err != nil {
			return models.Product{}, err
		}
		if r.uniqueCodeTaken(updated.UniqueCode, id) {
			return models.Product{}, ErrDuplicatedValueUnique
		}
		if !pu.IsEmpty() {
			updated.UpdatedAt = time.Now().UTC()
		}
		r.products[i] = updated
		return updated, nil
	}
	return models.Product{}, ErrProductNotFound
}

func applyUpdate(p models.Product, pu ProductUpdate) models.Product {
	if pu.WarehouseID != nil {
		p.WarehouseID = *pu.WarehouseID
	}
	if pu.CategoryID != nil {
		p.CategoryID = *pu.CategoryID
	}
	if pu.BrandID != nil {
		p.BrandID = *pu.BrandID
	}
	if pu.Name != nil {
		p.Name = *pu.Name
	}
	if pu.UniqueCode != nil {
		p.UniqueCode = pu.UniqueCode
	} else if pu.ClearUniqueCode {
		p.UniqueCode = nil
	}
	if pu.ScanCode != nil {
		p.ScanCode = pu.ScanCode
	} else if pu.ClearScanCode {
		p.ScanCode = nil
	}
	if pu.Description != nil {
		p.Description = pu.Description
	} else if pu.ClearDescription {
		p.Description = nil
	}
	if pu.RetailPrice != nil {
		p.RetailPrice = *pu.RetailPrice
	}
	if pu.SalePrice != nil {
		p.SalePrice = *pu.SalePrice
	}
	if pu.Quantity != nil {
		p.Quantity = *pu.Quantity
	}
	if pu.IsSold != nil {
		p.IsSold = *pu.IsSold
	}
	return p
}

// Delete removes a product and, like the ON DELETE CASCADE in the schema,
// its image and shift rows.
func (r *InMemoryProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.images.deleteByProduct(id)
			if r.shifts != nil {
				r.shifts.deleteByProduct(id)
			}
			return nil
		}
	}
	return ErrProductNotFound
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
