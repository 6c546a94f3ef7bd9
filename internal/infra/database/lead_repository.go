package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type LeadRepository struct {
	DB Querier
}

func NewLeadRepository(db Querier) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (name, email, status, url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		nullString(lead.Name),
		lead.Email,
		lead.Status,
		nullString(lead.URL),
	).Scan(&lead.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return &entity.StorageError{Op: "insert lead", Err: err}
	}
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `SELECT id, name, email, status, url FROM leads WHERE id = $1`

	var lead entity.Lead
	var name, url sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&name,
		&lead.Email,
		&lead.Status,
		&url,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, &entity.StorageError{Op: "select lead", Err: err}
	}

	lead.Name = name.String
	lead.URL = url.String
	return &lead, nil
}

// Update writes the whole row; merging partial input into the current state
// is the usecase's job.
func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `UPDATE leads SET name = $1, email = $2, status = $3, url = $4 WHERE id = $5`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		nullString(lead.Name),
		lead.Email,
		lead.Status,
		nullString(lead.URL),
		lead.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return &entity.StorageError{Op: "update lead", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &entity.StorageError{Op: "update lead", Err: err}
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return &entity.StorageError{Op: "delete lead", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &entity.StorageError{Op: "delete lead", Err: err}
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// Search filters by status and url; empty filters impose no constraint.
// Results come back in insertion order.
func (r *LeadRepository) Search(ctx context.Context, status, url string) ([]entity.Lead, error) {
	query := `SELECT id, name, email, status, url FROM leads`
	var conds []string
	var args []any

	if status != "" {
		args = append(args, status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if url != "" {
		args = append(args, url)
		conds = append(conds, fmt.Sprintf("url = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &entity.StorageError{Op: "search leads", Err: err}
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		var name, leadURL sql.NullString
		if err := rows.Scan(&lead.ID, &name, &lead.Email, &lead.Status, &leadURL); err != nil {
			return nil, &entity.StorageError{Op: "scan lead", Err: err}
		}
		lead.Name = name.String
		lead.URL = leadURL.String
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StorageError{Op: "search leads", Err: err}
	}
	return leads, nil
}

// ExistsByEmail reports whether another lead already owns this email.
// excludeID lets updates skip the lead's own row.
func (r *LeadRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM leads WHERE email = $1 AND id <> $2)`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, &entity.StorageError{Op: "check email", Err: err}
	}
	return exists, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
