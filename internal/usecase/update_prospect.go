package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/weihan-tan/touchpoint/internal/dates"
	"github.com/weihan-tan/touchpoint/internal/entity"
)

type UpdateProspectUseCase struct {
	Repo      ProspectRepositoryInterface
	TouchRepo TouchRepositoryInterface
}

func NewUpdateProspectUseCase(repo ProspectRepositoryInterface, touchRepo TouchRepositoryInterface) *UpdateProspectUseCase {
	return &UpdateProspectUseCase{Repo: repo, TouchRepo: touchRepo}
}

// Execute replaces every mutable field of the prospect. ID and CreatedAt are
// immutable; last write wins on concurrent edits.
func (uc *UpdateProspectUseCase) Execute(ctx context.Context, id string, input ProspectInput) (*entity.Prospect, error) {
	p, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrProspectNotFound) {
			return nil, &NotFoundError{Resource: "prospect", ID: id}
		}
		return nil, err
	}

	if errs := ValidateProspectInput(input); len(errs) > 0 {
		return nil, errs
	}

	firstContact, err := dates.Normalize(input.FirstContact)
	if err != nil {
		return nil, ValidationErrors{{Field: "firstContact", Message: "invalid date, use d-m-yyyy"}}
	}

	p.FirstName = strings.TrimSpace(input.FirstName)
	p.LastName = strings.TrimSpace(input.LastName)
	p.Company = strings.TrimSpace(input.Company)
	p.Email = strings.TrimSpace(input.Email)
	p.Phone = strings.TrimSpace(input.Phone)
	p.Notes = input.Notes
	p.FirstContact = firstContact
	if input.Status != "" {
		p.Status = entity.Status(input.Status)
	}

	if err := uc.Repo.Update(ctx, p); err != nil {
		return nil, err
	}

	touches, err := uc.TouchRepo.FindByProspect(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Touches = touches

	return p, nil
}
