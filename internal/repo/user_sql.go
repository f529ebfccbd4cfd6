package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/models"
)

const userColumns = `id, email, password, google_id, COALESCE(name, '') AS name, profile_image, role, created_at, updated_at`

type SQLUserRepository struct {
	db *sqlx.DB
}

func NewSQLUserRepository(db *sqlx.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) get(ctx context.Context, where string, args ...any) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u models.User
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE ` + where + ` ORDER BY id LIMIT 1`)
	err := r.db.GetContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	return u, err
}

func (r *SQLUserRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	return r.get(ctx, `id = ?`, id)
}

func (r *SQLUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.get(ctx, `email = ?`, email)
}

func (r *SQLUserRepository) GetByGoogleIDOrEmail(ctx context.Context, googleID, email string) (models.User, error) {
	return r.get(ctx, `google_id = ? OR email = ?`, googleID, email)
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := insertID(ctx, r.db,
		`INSERT INTO users (email, password, google_id, name, profile_image, role) VALUES (?, ?, ?, ?, ?, ?)`,
		u.Email, u.PasswordHash, u.GoogleID, u.Name, u.ProfileImage, u.Role)
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SQLUserRepository) LinkGoogleAccount(ctx context.Context, id int, googleID string, profileImage *string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		r.db.Rebind(`UPDATE users SET google_id = ?, profile_image = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`),
		googleID, profileImage, id)
	return translateError(err)
}

func (r *SQLUserRepository) SetRole(ctx context.Context, id int, role string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		r.db.Rebind(`UPDATE users SET role = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`), role, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
