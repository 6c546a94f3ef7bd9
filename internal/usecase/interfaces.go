package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/database"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id int64) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, status, url string) ([]entity.Lead, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
}

type ActionRepositoryInterface interface {
	Create(ctx context.Context, q database.Querier, action *entity.Action) error
	GetByID(ctx context.Context, id int64) (*entity.Action, error)
	Search(ctx context.Context, actionType string) ([]entity.Action, error)
}

type ProcessRepositoryInterface interface {
	Upsert(ctx context.Context, q database.Querier, process *entity.Process) error
	GetByID(ctx context.Context, id int64) (*entity.Process, error)
	Search(ctx context.Context, status string) ([]entity.Process, error)
}

// TransactionalStore groups writes into one all-or-nothing unit.
type TransactionalStore interface {
	WithinTx(ctx context.Context, fn func(q database.Querier) error) error
}
