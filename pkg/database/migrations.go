package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These enforce the single-active-loop invariants:
// a (user, thread) pair and a (repo, pr, user) triple each own at most one
// loop that is still in an active state. Terminal rows fall outside the
// predicate, so re-enrollment after termination inserts a fresh row.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS loops_user_thread_active
		ON loops (user_id, thread_id)
		WHERE state NOT IN ('terminated_pr_closed', 'terminated_pr_merged', 'done', 'stopped')`)
	if err != nil {
		return fmt.Errorf("failed to create active user/thread loop index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS loops_repo_pr_user_active
		ON loops (repo_full_name, pr_number, user_id)
		WHERE pr_number IS NOT NULL
		AND state NOT IN ('terminated_pr_closed', 'terminated_pr_merged', 'done', 'stopped')`)
	if err != nil {
		return fmt.Errorf("failed to create active repo/pr loop index: %w", err)
	}

	// Fast path for the inbox poll: unprocessed signals per loop, oldest first.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS inbox_signals_unprocessed
		ON inbox_signals (loop_id, received_at)
		WHERE processed_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create unprocessed signal index: %w", err)
	}

	return nil
}
