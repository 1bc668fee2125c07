package usecase

import (
	"context"
	"time"

	"github.com/weihan-tan/touchpoint/internal/dates"
	"github.com/weihan-tan/touchpoint/internal/entity"
)

type DashboardUseCase struct {
	Repo ProspectRepositoryInterface
}

func NewDashboardUseCase(repo ProspectRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{Repo: repo}
}

// Build assembles the dashboard for the given reference time: the due list
// (pending touches due on or before the start of that day, overdue included)
// and the zero-filled pipeline counts.
func (uc *DashboardUseCase) Build(ctx context.Context, now time.Time) (*DashboardOutput, error) {
	prospects, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := uc.Repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardOutput{
		DueToday: DueItems(prospects, now),
		Pipeline: FillStatusCounts(counts),
	}, nil
}

// DueItems flattens every pending touch due on or before the start of the
// cutoff day across all prospects, keeping prospect identity with each touch.
func DueItems(prospects []entity.Prospect, now time.Time) []DueItem {
	cutoff := dates.StartOfDay(now)

	items := []DueItem{}
	for _, p := range prospects {
		for _, t := range entity.DueBy(p.Touches, cutoff) {
			items = append(items, DueItem{Prospect: p, Touch: t})
		}
	}
	return items
}

// FillStatusCounts guarantees every pipeline status appears, zero or not.
func FillStatusCounts(counts map[entity.Status]int) map[entity.Status]int {
	filled := make(map[entity.Status]int, len(entity.AllStatuses))
	for _, s := range entity.AllStatuses {
		filled[s] = counts[s]
	}
	return filled
}
