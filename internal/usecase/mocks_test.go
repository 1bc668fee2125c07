package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/weihan-tan/touchpoint/internal/entity"
	"github.com/weihan-tan/touchpoint/internal/infra/queue"
)

// MockProspectRepository
type MockProspectRepository struct {
	mock.Mock
}

func (m *MockProspectRepository) Create(ctx context.Context, p *entity.Prospect) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProspectRepository) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) FindAll(ctx context.Context) ([]entity.Prospect, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) Update(ctx context.Context, p *entity.Prospect) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProspectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProspectRepository) CountByStatus(ctx context.Context) (map[entity.Status]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.Status]int), args.Error(1)
}

// MockTouchRepository
type MockTouchRepository struct {
	mock.Mock
}

func (m *MockTouchRepository) FindByProspect(ctx context.Context, prospectID string) ([]entity.Touch, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Touch), args.Error(1)
}

func (m *MockTouchRepository) CreateMany(ctx context.Context, touches []entity.Touch) error {
	args := m.Called(ctx, touches)
	return args.Error(0)
}

func (m *MockTouchRepository) ReplaceForProspect(ctx context.Context, prospectID string, touches []entity.Touch) error {
	args := m.Called(ctx, prospectID, touches)
	return args.Error(0)
}

func (m *MockTouchRepository) DeleteByProspect(ctx context.Context, prospectID string) error {
	args := m.Called(ctx, prospectID)
	return args.Error(0)
}

func (m *MockTouchRepository) UpdateStatus(ctx context.Context, prospectID, touchID, status string) error {
	args := m.Called(ctx, prospectID, touchID, status)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishReminder(ctx context.Context, payload queue.ReminderPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
