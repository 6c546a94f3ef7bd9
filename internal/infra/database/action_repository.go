package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ActionRepository struct {
	DB Querier
}

func NewActionRepository(db Querier) *ActionRepository {
	return &ActionRepository{DB: db}
}

// Create inserts the action on q so it can share the transaction that also
// reconciles the lead's process.
func (r *ActionRepository) Create(ctx context.Context, q Querier, action *entity.Action) error {
	query := `
		INSERT INTO actions (lead_id, action_type, details, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRowContext(
		ctx,
		query,
		action.LeadID,
		nullString(action.ActionType),
		nullString(action.Details),
		action.Timestamp,
	).Scan(&action.ID)

	if err != nil {
		return &entity.StorageError{Op: "insert action", Err: err}
	}
	return nil
}

func (r *ActionRepository) GetByID(ctx context.Context, id int64) (*entity.Action, error) {
	query := `SELECT id, lead_id, action_type, details, timestamp FROM actions WHERE id = $1`

	var action entity.Action
	var actionType, details sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&action.ID,
		&action.LeadID,
		&actionType,
		&details,
		&action.Timestamp,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrActionNotFound
	}
	if err != nil {
		return nil, &entity.StorageError{Op: "select action", Err: err}
	}

	action.ActionType = actionType.String
	action.Details = details.String
	return &action, nil
}

func (r *ActionRepository) Search(ctx context.Context, actionType string) ([]entity.Action, error) {
	query := `SELECT id, lead_id, action_type, details, timestamp FROM actions`
	var args []any

	if actionType != "" {
		query += ` WHERE action_type = $1`
		args = append(args, actionType)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &entity.StorageError{Op: "search actions", Err: err}
	}
	defer rows.Close()

	actions := []entity.Action{}
	for rows.Next() {
		var action entity.Action
		var aType, details sql.NullString
		if err := rows.Scan(&action.ID, &action.LeadID, &aType, &details, &action.Timestamp); err != nil {
			return nil, &entity.StorageError{Op: "scan action", Err: err}
		}
		action.ActionType = aType.String
		action.Details = details.String
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StorageError{Op: "search actions", Err: err}
	}
	return actions, nil
}
