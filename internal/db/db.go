package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-api/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens a pool for the configured driver and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := driverDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func driverDSN(cfg *config.Config) (string, string, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return "pgx", cfg.DatabaseURL, nil
	case config.DriverMySQL:
		// Timestamps must come back as time.Time.
		mc, err := mysql.ParseDSN(cfg.DatabaseURL)
		if err != nil {
			return "", "", fmt.Errorf("invalid mysql DSN: %w", err)
		}
		mc.ParseTime = true
		return "mysql", mc.FormatDSN(), nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}
}
