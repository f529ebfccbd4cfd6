package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type ImageRepository interface {
	Create(ctx context.Context, productID int, filename string) (models.ProductImage, error)
	GetByID(ctx context.Context, id int) (models.ProductImage, error)
	ListByProduct(ctx context.Context, productID int) ([]models.ProductImage, error)
	// ListByProducts groups the images of several products by product id.
	ListByProducts(ctx context.Context, productIDs []int) (map[int][]models.ProductImage, error)
	Delete(ctx context.Context, id int) error
}
