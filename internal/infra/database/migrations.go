package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// schemaSQL creates the three tables. lead_id on actions and processes is a
// soft reference: no foreign key, so deleting a lead orphans its rows. The
// unique index on processes(lead_id) backs the one-process-per-lead
// invariant and the ON CONFLICT upsert in ProcessRepository.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS leads (
    id BIGSERIAL PRIMARY KEY,
    name TEXT,
    email TEXT NOT NULL UNIQUE,
    status TEXT NOT NULL DEFAULT 'new',
    url TEXT
);

CREATE TABLE IF NOT EXISTS actions (
    id BIGSERIAL PRIMARY KEY,
    lead_id BIGINT NOT NULL,
    action_type TEXT,
    details TEXT,
    timestamp TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_actions_lead_id ON actions (lead_id);

CREATE TABLE IF NOT EXISTS processes (
    id BIGSERIAL PRIMARY KEY,
    name TEXT,
    lead_id BIGINT NOT NULL,
    channel TEXT,
    last_action_id BIGINT,
    next_followup_datetime TEXT,
    status TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_processes_lead_id ON processes (lead_id);
`

// Migrate applies the schema. Safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return &entity.StorageError{Op: "apply schema", Err: err}
	}
	return nil
}
