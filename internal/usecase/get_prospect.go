package usecase

import (
	"context"
	"errors"

	"github.com/weihan-tan/touchpoint/internal/entity"
)

type GetProspectUseCase struct {
	Repo      ProspectRepositoryInterface
	TouchRepo TouchRepositoryInterface
}

func NewGetProspectUseCase(repo ProspectRepositoryInterface, touchRepo TouchRepositoryInterface) *GetProspectUseCase {
	return &GetProspectUseCase{Repo: repo, TouchRepo: touchRepo}
}

func (uc *GetProspectUseCase) ByID(ctx context.Context, id string) (*entity.Prospect, error) {
	p, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrProspectNotFound) {
			return nil, &NotFoundError{Resource: "prospect", ID: id}
		}
		return nil, err
	}

	touches, err := uc.TouchRepo.FindByProspect(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Touches = touches

	return p, nil
}

// List returns every prospect with its touches ordered by index, newest
// prospect first.
func (uc *GetProspectUseCase) List(ctx context.Context) ([]entity.Prospect, error) {
	return uc.Repo.FindAll(ctx)
}
