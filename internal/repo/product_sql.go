package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/models"
)

const productColumns = `p.id, p.warehouse_id, p.category_id, p.brand_id, p.product_name, p.unique_code, p.scan_code,
	p.description, p.product_retail_price, p.product_sale_price, p.quantity, p.is_sold, p.created_at, p.updated_at`

const productDetailSelect = `SELECT ` + productColumns + `,
	w.name AS warehouse_name, c.category_name, b.brand_name
FROM products p
LEFT JOIN warehouses w ON p.warehouse_id = w.id
LEFT JOIN categories c ON p.category_id = c.id
LEFT JOIN brands b ON p.brand_id = b.id`

type productDetailRow struct {
	models.Product
	WarehouseName *string `db:"warehouse_name"`
	CategoryName  *string `db:"category_name"`
	BrandName     *string `db:"brand_name"`
}

func (row productDetailRow) toDetail() models.ProductDetail {
	return models.ProductDetail{
		Product:       row.Product,
		Warehouse:     models.WarehouseRef{ID: row.WarehouseID, Name: row.WarehouseName},
		CategoryName:  row.CategoryName,
		BrandName:     row.BrandName,
		ProductImages: []models.ProductImage{},
	}
}

type SQLProductRepository struct {
	db *sqlx.DB
}

func NewSQLProductRepository(db *sqlx.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db}
}

// Create inserts the product and reads the stored row back so column
// defaults are reflected in the result.
func (r *SQLProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO products
		(warehouse_id, category_id, brand_id, product_name, unique_code, scan_code,
		 description, product_retail_price, product_sale_price, quantity, is_sold)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, FALSE)`

	id, err := insertID(ctx, r.db, query,
		p.WarehouseID, p.CategoryID, p.BrandID, p.Name, p.UniqueCode, p.ScanCode,
		p.Description, p.RetailPrice, p.SalePrice, p.Quantity)
	if err != nil {
		return models.Product{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SQLProductRepository) getOne(ctx context.Context, where string, arg any) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Product
	query := r.db.Rebind(`SELECT ` + productColumns + ` FROM products p WHERE ` + where)
	err := r.db.GetContext(ctx, &p, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *SQLProductRepository) GetByID(ctx context.Context, id int) (models.Product, error) {
	return r.getOne(ctx, `p.id = ?`, id)
}

func (r *SQLProductRepository) GetByUniqueCode(ctx context.Context, code string) (models.Product, error) {
	return r.getOne(ctx, `p.unique_code = ?`, code)
}

func (r *SQLProductRepository) GetDetail(ctx context.Context, id int) (models.ProductDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var row productDetailRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(productDetailSelect+` WHERE p.id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductDetail{}, ErrProductNotFound
	}
	if err != nil {
		return models.ProductDetail{}, err
	}
	return row.toDetail(), nil
}

func (r *SQLProductRepository) Filter(ctx context.Context, pf ProductFilter) ([]models.ProductDetail, int, error) {
	where, args := filterConditions(pf)

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	if err := r.db.GetContext(ctx, &total, r.db.Rebind(`SELECT COUNT(*) FROM products p`+where), args...); err != nil {
		return nil, 0, err
	}

	query := productDetailSelect + where + ` ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?`
	args = append(args, pf.Limit, pf.Offset)

	var rows []productDetailRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, 0, err
	}

	products := make([]models.ProductDetail, len(rows))
	for i, row := range rows {
		products[i] = row.toDetail()
	}
	return products, total, nil
}

func filterConditions(pf ProductFilter) (string, []any) {
	var conds []string
	var args []any

	if pf.WarehouseID != nil {
		conds = append(conds, "p.warehouse_id = ?")
		args = append(args, *pf.WarehouseID)
	}
	if pf.CategoryID != nil {
		conds = append(conds, "p.category_id = ?")
		args = append(args, *pf.CategoryID)
	}
	if pf.BrandID != nil {
		conds = append(conds, "p.brand_id = ?")
		args = append(args, *pf.BrandID)
	}
	if pf.Search != "" {
		term := "%" + strings.ToLower(pf.Search) + "%"
		conds = append(conds, "(LOWER(p.product_name) LIKE ? OR LOWER(p.unique_code) LIKE ? OR LOWER(p.scan_code) LIKE ?)")
		args = append(args, term, term, term)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update writes only the set fields and returns the stored row. Rows affected
// is not used to detect a missing id because MySQL reports 0 for no-op updates.
func (r *SQLProductRepository) Update(ctx context.Context, id int, pu ProductUpdate) (models.Product, error) {
	sets := pu.assignments()
	if len(sets) > 0 {
		clauses := make([]string, 0, len(sets)+1)
		args := make([]any, 0, len(sets)+1)
		for _, a := range sets {
			clauses = append(clauses, a.column+" = ?")
			args = append(args, a.value)
		}
		clauses = append(clauses, "updated_at = CURRENT_TIMESTAMP")
		args = append(args, id)

		ctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()

		query := `UPDATE products SET ` + strings.Join(clauses, ", ") + ` WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
			return models.Product{}, translateError(err)
		}
	}
	return r.GetByID(ctx, id)
}

func (r *SQLProductRepository) Delete(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return translateError(err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
