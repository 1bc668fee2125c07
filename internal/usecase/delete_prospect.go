package usecase

import (
	"context"
	"errors"

	"github.com/weihan-tan/touchpoint/internal/entity"
)

type DeleteProspectUseCase struct {
	Repo      ProspectRepositoryInterface
	TouchRepo TouchRepositoryInterface
}

func NewDeleteProspectUseCase(repo ProspectRepositoryInterface, touchRepo TouchRepositoryInterface) *DeleteProspectUseCase {
	return &DeleteProspectUseCase{Repo: repo, TouchRepo: touchRepo}
}

// Execute removes the prospect and its owned touches. Touches go first; if
// the prospect delete then fails, the snapshot of touches is restored and
// the failure surfaces as an IntegrityError instead of leaving orphans.
func (uc *DeleteProspectUseCase) Execute(ctx context.Context, id string) error {
	if _, err := uc.Repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, entity.ErrProspectNotFound) {
			return &NotFoundError{Resource: "prospect", ID: id}
		}
		return err
	}

	snapshot, err := uc.TouchRepo.FindByProspect(ctx, id)
	if err != nil {
		return err
	}

	txn := NewTransaction()

	txn.AddOperation("delete_touches", func(ctx context.Context) error {
		return uc.TouchRepo.DeleteByProspect(ctx, id)
	})
	txn.AddCompensation("restore_touches", func(ctx context.Context) error {
		if len(snapshot) == 0 {
			return nil
		}
		return uc.TouchRepo.CreateMany(ctx, snapshot)
	})

	txn.AddOperation("delete_prospect", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, id)
	})

	if err := txn.Execute(ctx); err != nil {
		return &IntegrityError{Op: "delete prospect cascade", Err: err}
	}

	return nil
}
