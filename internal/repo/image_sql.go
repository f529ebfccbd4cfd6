package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/models"
)

const imageColumns = `id, product_id, image, created_at, updated_at`

type SQLImageRepository struct {
	db *sqlx.DB
}

func NewSQLImageRepository(db *sqlx.DB) *SQLImageRepository {
	return &SQLImageRepository{db: db}
}

func (r *SQLImageRepository) Create(ctx context.Context, productID int, filename string) (models.ProductImage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := insertID(ctx, r.db, `INSERT INTO product_images (product_id, image) VALUES (?, ?)`, productID, filename)
	if err != nil {
		return models.ProductImage{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SQLImageRepository) GetByID(ctx context.Context, id int) (models.ProductImage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var img models.ProductImage
	err := r.db.GetContext(ctx, &img, r.db.Rebind(`SELECT `+imageColumns+` FROM product_images WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductImage{}, ErrImageNotFound
	}
	return img, err
}

func (r *SQLImageRepository) ListByProduct(ctx context.Context, productID int) ([]models.ProductImage, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	images := []models.ProductImage{}
	err := r.db.SelectContext(ctx, &images,
		r.db.Rebind(`SELECT `+imageColumns+` FROM product_images WHERE product_id = ? ORDER BY id`), productID)
	return images, err
}

func (r *SQLImageRepository) ListByProducts(ctx context.Context, productIDs []int) (map[int][]models.ProductImage, error) {
	grouped := make(map[int][]models.ProductImage, len(productIDs))
	if len(productIDs) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(`SELECT `+imageColumns+` FROM product_images WHERE product_id IN (?) ORDER BY id`, productIDs)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var images []models.ProductImage
	if err := r.db.SelectContext(ctx, &images, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, img := range images {
		grouped[img.ProductID] = append(grouped[img.ProductID], img)
	}
	return grouped, nil
}

func (r *SQLImageRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM product_images WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrImageNotFound
	}
	return nil
}
