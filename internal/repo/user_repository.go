package repo

import (
	"context"

	"github.com/rogerio-castellano/inventory-api/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	// GetByGoogleIDOrEmail returns the first user whose google_id or email matches.
	GetByGoogleIDOrEmail(ctx context.Context, googleID, email string) (models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	LinkGoogleAccount(ctx context.Context, id int, googleID string, profileImage *string) error
	SetRole(ctx context.Context, id int, role string) error
}
