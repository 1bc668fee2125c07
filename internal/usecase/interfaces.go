package usecase

import (
	"context"

	"github.com/weihan-tan/touchpoint/internal/entity"
	"github.com/weihan-tan/touchpoint/internal/infra/queue"
)

type ProspectRepositoryInterface interface {
	Create(ctx context.Context, p *entity.Prospect) error
	FindByID(ctx context.Context, id string) (*entity.Prospect, error)
	FindAll(ctx context.Context) ([]entity.Prospect, error)
	Update(ctx context.Context, p *entity.Prospect) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entity.Status]int, error)
}

type TouchRepositoryInterface interface {
	FindByProspect(ctx context.Context, prospectID string) ([]entity.Touch, error)
	CreateMany(ctx context.Context, touches []entity.Touch) error
	ReplaceForProspect(ctx context.Context, prospectID string, touches []entity.Touch) error
	DeleteByProspect(ctx context.Context, prospectID string) error
	UpdateStatus(ctx context.Context, prospectID, touchID, status string) error
}

type QueueProducerInterface interface {
	PublishReminder(ctx context.Context, payload queue.ReminderPayload) error
}
