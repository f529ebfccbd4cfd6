package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-api/internal/models"
	"github.com/shopspring/decimal"
)

type InMemoryMetricsRepository struct {
	productRepo *InMemoryProductRepository
	masterRepo  *InMemoryMasterDataRepository
	shiftRepo   *InMemoryShiftRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo *InMemoryProductRepository,
	masterRepo *InMemoryMasterDataRepository,
	shiftRepo *InMemoryShiftRepository,
) {
	i.productRepo = productRepo
	i.masterRepo = masterRepo
	i.shiftRepo = shiftRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{StockRetailValue: decimal.Zero, ProductsPerWarehouse: []WarehouseProductCount{}}

	i.productRepo.mu.RLock()
	products := make([]models.Product, len(i.productRepo.products))
	copy(products, i.productRepo.products)
	i.productRepo.mu.RUnlock()

	perWarehouse := map[int]int{}
	for _, p := range products {
		m.TotalProducts++
		m.TotalQuantity += p.Quantity
		perWarehouse[p.WarehouseID]++
		if p.IsSold {
			m.SoldProducts++
			continue
		}
		m.StockRetailValue = m.StockRetailValue.Add(p.RetailPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	m.TotalShifts = i.shiftRepo.count()

	warehouses, err := i.masterRepo.List(ctx, models.Warehouses)
	if err != nil {
		return m, err
	}
	for _, w := range warehouses {
		name := w.Name
		m.ProductsPerWarehouse = append(m.ProductsPerWarehouse, WarehouseProductCount{
			WarehouseID: w.ID,
			Name:        &name,
			Count:       perWarehouse[w.ID],
		})
	}

	return m, nil
}
