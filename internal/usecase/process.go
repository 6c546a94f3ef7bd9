package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
)

// ProcessEngine keeps each lead's single process row in sync with the
// lead's most recent action.
type ProcessEngine struct {
	Processes ProcessRepositoryInterface

	// DefaultStatus is only applied when a process is first created.
	DefaultStatus string
}

func NewProcessEngine(processes ProcessRepositoryInterface, defaultStatus string) *ProcessEngine {
	if defaultStatus == "" {
		defaultStatus = "active"
	}
	return &ProcessEngine{Processes: processes, DefaultStatus: defaultStatus}
}

// Reconcile creates or refreshes the process for action's lead: channel
// mirrors the action type, last_action_id points at the action, and the
// next follow-up lands seven days after the action's timestamp. The
// caller's Querier decides the transaction this runs in.
func (e *ProcessEngine) Reconcile(ctx context.Context, q database.Querier, action *entity.Action) (*entity.Process, error) {
	next, err := entity.FollowUpAfter(action.Timestamp)
	if err != nil {
		return nil, err
	}

	process := &entity.Process{
		LeadID:               action.LeadID,
		Channel:              action.ActionType,
		LastActionID:         action.ID,
		NextFollowupDatetime: next,
		Status:               e.DefaultStatus,
	}
	if err := e.Processes.Upsert(ctx, q, process); err != nil {
		return nil, err
	}
	return process, nil
}
