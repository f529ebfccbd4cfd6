package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	GetByUniqueCode(ctx context.Context, code string) (models.Product, error)
	// GetDetail returns the product joined with its master-data names. The
	// images slice is left empty; images live in ImageRepository.
	GetDetail(ctx context.Context, id int) (models.ProductDetail, error)
	Filter(ctx context.Context, pf ProductFilter) ([]models.ProductDetail, int, error)
	Update(ctx context.Context, id int, pu ProductUpdate) (models.Product, error)
	Delete(ctx context.Context, id int) error
}
