package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These back the run list's search filter over sop and run_name.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_sop_gin
		ON runs USING gin(to_tsvector('english', sop))`)
	if err != nil {
		return fmt.Errorf("failed to create sop GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_runs_run_name_gin
		ON runs USING gin(to_tsvector('english', COALESCE(run_name, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create run_name GIN index: %w", err)
	}

	return nil
}
