package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate creates every table that does not exist yet. It is safe to run on
// each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements, err := schemaStatements(db.DriverName())
	if err != nil {
		return err
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed on %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func schemaStatements(driverName string) ([]string, error) {
	file := "schema/postgres.sql"
	if driverName == "mysql" {
		file = "schema/mysql.sql"
	}

	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return splitStatements(string(raw)), nil
}

// splitStatements splits a script on semicolons. The MySQL driver rejects
// multi-statement Exec calls unless multiStatements is enabled.
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
