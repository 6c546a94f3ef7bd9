package usecase

import (
	"context"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type LeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewLeadUseCase(repo LeadRepositoryInterface) *LeadUseCase {
	return &LeadUseCase{Repo: repo}
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if input.Status.Set && input.Status.Value == nil {
		return nil, entity.ErrNilLeadStatus
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	exists, err := uc.Repo.ExistsByEmail(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, entity.ErrEmailAlreadyExists
	}

	status := entity.DefaultLeadStatus
	if input.Status.Set && *input.Status.Value != "" {
		status = *input.Status.Value
	}

	lead := &entity.Lead{
		Name:   input.Name,
		Email:  email,
		Status: status,
		URL:    input.URL,
	}
	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (uc *LeadUseCase) Get(ctx context.Context, id int64) (*entity.Lead, error) {
	return uc.Repo.GetByID(ctx, id)
}

// Update applies a partial update: only keys present in the request change,
// everything else keeps its current value.
func (uc *LeadUseCase) Update(ctx context.Context, id int64, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status.Set {
		if input.Status.Value == nil {
			return nil, entity.ErrNilLeadStatus
		}
		lead.Status = *input.Status.Value
	}

	if input.Email.Set {
		if input.Email.Value == nil {
			return nil, entity.ErrInvalidEmail
		}
		email, err := NormalizeEmail(*input.Email.Value)
		if err != nil {
			return nil, err
		}
		if email != lead.Email {
			exists, err := uc.Repo.ExistsByEmail(ctx, email, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, entity.ErrEmailAlreadyExists
			}
		}
		lead.Email = email
	}

	if input.Name.Set {
		lead.Name = stringOrEmpty(input.Name.Value)
	}
	if input.URL.Set {
		lead.URL = stringOrEmpty(input.URL.Value)
	}

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id int64) error {
	return uc.Repo.Delete(ctx, id)
}

func (uc *LeadUseCase) Search(ctx context.Context, status, url string) ([]entity.Lead, error) {
	return uc.Repo.Search(ctx, status, url)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
