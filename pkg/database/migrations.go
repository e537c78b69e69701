package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search over task text and
// structured audit details.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for task title/description full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_text_gin
		ON tasks USING gin(to_tsvector('english', title || ' ' || description))`)
	if err != nil {
		return fmt.Errorf("failed to create task text GIN index: %w", err)
	}

	// GIN index for audit detail lookups (containment queries on jsonb)
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_audit_logs_details_gin
		ON audit_logs USING gin(details)`)
	if err != nil {
		return fmt.Errorf("failed to create audit details GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema definitions.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one Head agent may exist.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_singleton_head
		ON agents (tier)
		WHERE tier = 'head'`)
	if err != nil {
		return fmt.Errorf("failed to create singleton head index: %w", err)
	}

	// At most one open deliberation per task.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS deliberation_open_per_task
		ON deliberations (task_id)
		WHERE status = 'open' AND task_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create open deliberation index: %w", err)
	}

	return nil
}
