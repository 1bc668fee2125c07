package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/weihan-tan/touchpoint/internal/dates"
	"github.com/weihan-tan/touchpoint/internal/entity"
)

type TouchUseCase struct {
	Repo      ProspectRepositoryInterface
	TouchRepo TouchRepositoryInterface
}

func NewTouchUseCase(repo ProspectRepositoryInterface, touchRepo TouchRepositoryInterface) *TouchUseCase {
	return &TouchUseCase{Repo: repo, TouchRepo: touchRepo}
}

// ReplaceSequence swaps the prospect's follow-up cadence wholesale. Indexes
// are reassigned from input position; there is no partial reorder.
func (uc *TouchUseCase) ReplaceSequence(ctx context.Context, prospectID string, inputs []TouchInput) ([]entity.Touch, error) {
	if _, err := uc.Repo.FindByID(ctx, prospectID); err != nil {
		if errors.Is(err, entity.ErrProspectNotFound) {
			return nil, &NotFoundError{Resource: "prospect", ID: prospectID}
		}
		return nil, err
	}

	touches := make([]entity.Touch, 0, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, ValidationErrors{{Field: "touches", Message: "touch name is required"}}
		}
		due, err := dates.Normalize(in.Due)
		if err != nil {
			return nil, ValidationErrors{{Field: "touches", Message: "touch due date is invalid"}}
		}
		touches = append(touches, entity.NewTouch(prospectID, i, name, due))
	}

	if err := uc.TouchRepo.ReplaceForProspect(ctx, prospectID, touches); err != nil {
		return nil, err
	}

	return touches, nil
}

// Complete marks a pending touch done. The transition is one-way: a touch
// already done cannot be completed again or reopened.
func (uc *TouchUseCase) Complete(ctx context.Context, prospectID, touchID string) error {
	touches, err := uc.TouchRepo.FindByProspect(ctx, prospectID)
	if err != nil {
		return err
	}

	for _, t := range touches {
		if t.ID != touchID {
			continue
		}
		if t.Status != entity.TouchPending {
			return ValidationErrors{{Field: "status", Message: "touch is already done"}}
		}
		return uc.TouchRepo.UpdateStatus(ctx, prospectID, touchID, entity.TouchDone)
	}

	return &NotFoundError{Resource: "touch", ID: touchID}
}
