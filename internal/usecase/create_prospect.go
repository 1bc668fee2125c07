package usecase

import (
	"context"
	"strings"

	"github.com/weihan-tan/touchpoint/internal/dates"
	"github.com/weihan-tan/touchpoint/internal/entity"
)

type CreateProspectUseCase struct {
	Repo      ProspectRepositoryInterface
	TouchRepo TouchRepositoryInterface
}

func NewCreateProspectUseCase(repo ProspectRepositoryInterface, touchRepo TouchRepositoryInterface) *CreateProspectUseCase {
	return &CreateProspectUseCase{Repo: repo, TouchRepo: touchRepo}
}

// Execute validates, normalizes the first-contact date and persists the new
// prospect together with any initial touches. The stored record, touches
// included, comes back to the caller.
func (uc *CreateProspectUseCase) Execute(ctx context.Context, input ProspectInput) (*entity.Prospect, error) {
	if errs := ValidateProspectInput(input); len(errs) > 0 {
		return nil, errs
	}

	firstContact, err := dates.Normalize(input.FirstContact)
	if err != nil {
		return nil, ValidationErrors{{Field: "firstContact", Message: "invalid date, use d-m-yyyy"}}
	}

	p := entity.NewProspect(strings.TrimSpace(input.FirstName), strings.TrimSpace(input.LastName))
	p.Company = strings.TrimSpace(input.Company)
	p.Email = strings.TrimSpace(input.Email)
	p.Phone = strings.TrimSpace(input.Phone)
	p.Notes = input.Notes
	p.FirstContact = firstContact
	if input.Status != "" {
		p.Status = entity.Status(input.Status)
	}

	for i, t := range input.Touches {
		due, err := dates.Normalize(t.Due)
		if err != nil {
			return nil, ValidationErrors{{Field: "touches", Message: "touch due date is invalid"}}
		}
		p.Touches = append(p.Touches, entity.NewTouch(p.ID, i, strings.TrimSpace(t.Name), due))
	}

	if err := uc.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if len(p.Touches) > 0 {
		if err := uc.TouchRepo.CreateMany(ctx, p.Touches); err != nil {
			// Leave no half-created record behind.
			if delErr := uc.Repo.Delete(ctx, p.ID); delErr != nil {
				return nil, &IntegrityError{Op: "create prospect touches", Err: err}
			}
			return nil, err
		}
	}

	return p, nil
}
