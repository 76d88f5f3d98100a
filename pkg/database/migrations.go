package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateCustomIndexes creates PostgreSQL indexes that Ent cannot express.
// Called after migrations on startup and by the test harness after
// Schema.Create, so both paths enforce the same constraints. Statements
// must match the ones in the committed migration files.
func CreateCustomIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one pending job per (thread, key): schedule_job upserts
	// race-free against concurrent webhook and billing paths.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS scheduledjob_thread_id_key_pending
		ON scheduled_jobs (thread_id, key)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending-job unique index: %w", err)
	}

	// Catch-up scans read (channel, id > cursor) in id order.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS event_channel_id
		ON events (channel, id)`)
	if err != nil {
		return fmt.Errorf("failed to create event catch-up index: %w", err)
	}

	return nil
}
