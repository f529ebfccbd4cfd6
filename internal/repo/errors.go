package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrImageNotFound         = errors.New("image not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
	ErrInvalidReference      = errors.New("foreign key reference violated")
)

const queryTimeout = 3 * time.Second

// translateError maps driver constraint violations onto the package's
// sentinel errors so callers never inspect driver types.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicatedValueUnique, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
		}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062:
			return fmt.Errorf("%w: %s", ErrDuplicatedValueUnique, myErr.Message)
		case 1451, 1452:
			return fmt.Errorf("%w: %s", ErrInvalidReference, myErr.Message)
		}
	}

	return err
}

// insertID runs an INSERT written with ? placeholders and returns the new id,
// using RETURNING on Postgres and LastInsertId on MySQL.
func insertID(ctx context.Context, db *sqlx.DB, query string, args ...any) (int, error) {
	if db.DriverName() == "mysql" {
		res, err := db.ExecContext(ctx, db.Rebind(query), args...)
		if err != nil {
			return 0, translateError(err)
		}
		id, err := res.LastInsertId()
		return int(id), err
	}

	var id int
	err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id)
	return id, translateError(err)
}
