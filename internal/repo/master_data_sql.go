package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/models"
)

// Table and column names come from the fixed kinds in the models package,
// never from request input.
type SQLMasterDataRepository struct {
	db *sqlx.DB
}

func NewSQLMasterDataRepository(db *sqlx.DB) *SQLMasterDataRepository {
	return &SQLMasterDataRepository{db: db}
}

func (r *SQLMasterDataRepository) List(ctx context.Context, kind models.MasterKind) ([]models.MasterRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, %[1]s AS name, created_at, updated_at FROM %[2]s ORDER BY %[1]s`, kind.NameColumn, kind.Table)

	records := []models.MasterRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Kind = kind
	}
	return records, nil
}

func (r *SQLMasterDataRepository) Create(ctx context.Context, kind models.MasterKind, name string) (models.MasterRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := insertID(ctx, r.db, fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?)`, kind.Table, kind.NameColumn), name)
	if err != nil {
		return models.MasterRecord{}, err
	}

	rec := models.MasterRecord{Kind: kind}
	query := r.db.Rebind(fmt.Sprintf(`SELECT id, %s AS name, created_at, updated_at FROM %s WHERE id = ?`, kind.NameColumn, kind.Table))
	err = r.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MasterRecord{Kind: kind, ID: id, Name: name}, nil
	}
	return rec, err
}

func (r *SQLMasterDataRepository) Update(ctx context.Context, kind models.MasterKind, id int, name string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`UPDATE %s SET %s = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, kind.Table, kind.NameColumn)
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), name, id)
	return translateError(err)
}

func (r *SQLMasterDataRepository) Delete(ctx context.Context, kind models.MasterKind, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, r.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, kind.Table)), id)
	return translateError(err)
}

func (r *SQLMasterDataRepository) Count(ctx context.Context, kind models.MasterKind) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int
	err := r.db.GetContext(ctx, &n, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, kind.Table))
	return n, err
}
