package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ProcessRepository struct {
	DB Querier
}

func NewProcessRepository(db Querier) *ProcessRepository {
	return &ProcessRepository{DB: db}
}

// Upsert creates the lead's process row or refreshes it from the latest
// action. The conflict target is the unique index on lead_id, so two
// concurrent reconciliations for the same lead serialize on the row
// instead of both inserting. Status is only written on insert; an existing
// process keeps whatever status it has.
func (r *ProcessRepository) Upsert(ctx context.Context, q Querier, process *entity.Process) error {
	query := `
		INSERT INTO processes (lead_id, channel, last_action_id, next_followup_datetime, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (lead_id)
		DO UPDATE SET
			channel = EXCLUDED.channel,
			last_action_id = EXCLUDED.last_action_id,
			next_followup_datetime = EXCLUDED.next_followup_datetime
		RETURNING id, name, status
	`

	var name, status sql.NullString
	err := q.QueryRowContext(
		ctx,
		query,
		process.LeadID,
		nullString(process.Channel),
		process.LastActionID,
		process.NextFollowupDatetime,
		nullString(process.Status),
	).Scan(&process.ID, &name, &status)

	if err != nil {
		return &entity.StorageError{Op: "upsert process", Err: err}
	}

	process.Name = name.String
	process.Status = status.String
	return nil
}

func (r *ProcessRepository) GetByID(ctx context.Context, id int64) (*entity.Process, error) {
	query := `
		SELECT id, name, lead_id, channel, last_action_id, next_followup_datetime, status
		FROM processes
		WHERE id = $1
	`

	process, err := scanProcess(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProcessNotFound
	}
	if err != nil {
		return nil, &entity.StorageError{Op: "select process", Err: err}
	}
	return process, nil
}

func (r *ProcessRepository) Search(ctx context.Context, status string) ([]entity.Process, error) {
	query := `
		SELECT id, name, lead_id, channel, last_action_id, next_followup_datetime, status
		FROM processes
	`
	var args []any

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &entity.StorageError{Op: "search processes", Err: err}
	}
	defer rows.Close()

	processes := []entity.Process{}
	for rows.Next() {
		process, err := scanProcess(rows)
		if err != nil {
			return nil, &entity.StorageError{Op: "scan process", Err: err}
		}
		processes = append(processes, *process)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StorageError{Op: "search processes", Err: err}
	}
	return processes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProcess(row rowScanner) (*entity.Process, error) {
	var process entity.Process
	var name, channel, next, status sql.NullString
	var lastActionID sql.NullInt64

	err := row.Scan(
		&process.ID,
		&name,
		&process.LeadID,
		&channel,
		&lastActionID,
		&next,
		&status,
	)
	if err != nil {
		return nil, err
	}

	process.Name = name.String
	process.Channel = channel.String
	process.LastActionID = lastActionID.Int64
	process.NextFollowupDatetime = next.String
	process.Status = status.String
	return &process, nil
}
