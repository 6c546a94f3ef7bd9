package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
)

// RecordActionUseCase inserts an action and reconciles the lead's process
// in one transaction. Either both writes commit or neither does.
type RecordActionUseCase struct {
	Store   TransactionalStore
	Actions ActionRepositoryInterface
	Engine  *ProcessEngine
}

func NewRecordActionUseCase(store TransactionalStore, actions ActionRepositoryInterface, engine *ProcessEngine) *RecordActionUseCase {
	return &RecordActionUseCase{
		Store:   store,
		Actions: actions,
		Engine:  engine,
	}
}

func (uc *RecordActionUseCase) Execute(ctx context.Context, input RecordActionInput) (*ActionOutput, error) {
	if input.LeadID == 0 {
		return nil, &entity.ValidationError{Message: "lead_id is required"}
	}

	timestamp := input.Timestamp
	if timestamp == "" {
		timestamp = entity.NowTimestamp()
	}

	action := &entity.Action{
		LeadID:     input.LeadID,
		ActionType: input.ActionType,
		Details:    input.details(),
		Timestamp:  timestamp,
	}

	err := uc.Store.WithinTx(ctx, func(q database.Querier) error {
		if err := uc.Actions.Create(ctx, q, action); err != nil {
			return err
		}
		_, err := uc.Engine.Reconcile(ctx, q, action)
		return err
	})
	if err != nil {
		return nil, err
	}

	return NewActionOutput(action), nil
}
