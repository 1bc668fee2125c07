package usecase

import (
	"context"
	"log"
	"time"

	"github.com/weihan-tan/touchpoint/internal/dates"
	"github.com/weihan-tan/touchpoint/internal/infra/queue"
)

type DispatchRemindersUseCase struct {
	Repo  ProspectRepositoryInterface
	Queue QueueProducerInterface
}

func NewDispatchRemindersUseCase(repo ProspectRepositoryInterface, producer QueueProducerInterface) *DispatchRemindersUseCase {
	return &DispatchRemindersUseCase{Repo: repo, Queue: producer}
}

// Execute publishes one reminder message per (prospect, touch) pair due as of
// now. With no queue configured it is a no-op; a publish failure skips that
// pair and moves on.
func (uc *DispatchRemindersUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	if uc.Queue == nil {
		return 0, nil
	}

	prospects, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, item := range DueItems(prospects, now) {
		payload := queue.ReminderPayload{
			ProspectID:   item.Prospect.ID,
			ProspectName: item.Prospect.FullName(),
			TouchID:      item.Touch.ID,
			TouchName:    item.Touch.Name,
			Due:          dates.Format(item.Touch.Due),
		}
		if err := uc.Queue.PublishReminder(ctx, payload); err != nil {
			log.Printf("reminders: publish for prospect %s failed: %v", item.Prospect.ID, err)
			continue
		}
		published++
	}

	return published, nil
}
