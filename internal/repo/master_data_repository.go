package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

// MasterDataRepository serves warehouses, categories and brands. Update and
// Delete do not report missing ids.
type MasterDataRepository interface {
	List(ctx context.Context, kind models.MasterKind) ([]models.MasterRecord, error)
	Create(ctx context.Context, kind models.MasterKind, name string) (models.MasterRecord, error)
	Update(ctx context.Context, kind models.MasterKind, id int, name string) error
	Delete(ctx context.Context, kind models.MasterKind, id int) error
	Count(ctx context.Context, kind models.MasterKind) (int, error)
}
