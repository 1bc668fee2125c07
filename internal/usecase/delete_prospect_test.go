package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/weihan-tan/touchpoint/internal/entity"
)

func TestDeleteProspectCascades(t *testing.T) {
	repo := new(MockProspectRepository)
	touchRepo := new(MockTouchRepository)

	p := entity.NewProspect("Jane", "Doe")
	touches := []entity.Touch{
		entity.NewTouch(p.ID, 0, "Intro call", p.CreatedAt),
		entity.NewTouch(p.ID, 1, "Follow-up", p.CreatedAt),
	}

	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	touchRepo.On("FindByProspect", mock.Anything, p.ID).Return(touches, nil)
	touchRepo.On("DeleteByProspect", mock.Anything, p.ID).Return(nil)
	repo.On("Delete", mock.Anything, p.ID).Return(nil)

	uc := NewDeleteProspectUseCase(repo, touchRepo)
	err := uc.Execute(context.Background(), p.ID)

	assert.NoError(t, err)
	// Touches go before the prospect.
	touchRepo.AssertCalled(t, "DeleteByProspect", mock.Anything, p.ID)
	repo.AssertCalled(t, "Delete", mock.Anything, p.ID)
}

func TestDeleteProspectNotFound(t *testing.T) {
	repo := new(MockProspectRepository)
	touchRepo := new(MockTouchRepository)
	repo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrProspectNotFound)

	uc := NewDeleteProspectUseCase(repo, touchRepo)
	err := uc.Execute(context.Background(), "ghost")

	assert.True(t, IsNotFound(err))
	touchRepo.AssertNotCalled(t, "DeleteByProspect")
}

// In-memory stores so the cascade's end state can be inspected, not just the
// calls that produced it.
type memProspectStore struct {
	byID map[string]*entity.Prospect
}

func (s *memProspectStore) Create(ctx context.Context, p *entity.Prospect) error {
	s.byID[p.ID] = p
	return nil
}

func (s *memProspectStore) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, entity.ErrProspectNotFound
	}
	return p, nil
}

func (s *memProspectStore) FindAll(ctx context.Context) ([]entity.Prospect, error) {
	out := []entity.Prospect{}
	for _, p := range s.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memProspectStore) Update(ctx context.Context, p *entity.Prospect) error {
	s.byID[p.ID] = p
	return nil
}

func (s *memProspectStore) Delete(ctx context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

func (s *memProspectStore) CountByStatus(ctx context.Context) (map[entity.Status]int, error) {
	counts := map[entity.Status]int{}
	for _, p := range s.byID {
		counts[p.Status]++
	}
	return counts, nil
}

type memTouchStore struct {
	byProspect map[string][]entity.Touch
}

func (s *memTouchStore) FindByProspect(ctx context.Context, prospectID string) ([]entity.Touch, error) {
	return append([]entity.Touch{}, s.byProspect[prospectID]...), nil
}

func (s *memTouchStore) CreateMany(ctx context.Context, touches []entity.Touch) error {
	for _, t := range touches {
		s.byProspect[t.ProspectID] = append(s.byProspect[t.ProspectID], t)
	}
	return nil
}

func (s *memTouchStore) ReplaceForProspect(ctx context.Context, prospectID string, touches []entity.Touch) error {
	s.byProspect[prospectID] = append([]entity.Touch{}, touches...)
	return nil
}

func (s *memTouchStore) DeleteByProspect(ctx context.Context, prospectID string) error {
	delete(s.byProspect, prospectID)
	return nil
}

func (s *memTouchStore) UpdateStatus(ctx context.Context, prospectID, touchID, status string) error {
	for i, t := range s.byProspect[prospectID] {
		if t.ID == touchID {
			s.byProspect[prospectID][i].Status = status
			return nil
		}
	}
	return entity.ErrTouchNotFound
}

func TestDeleteProspectLeavesNoOwnedTouches(t *testing.T) {
	p := entity.NewProspect("Jane", "Doe")
	repo := &memProspectStore{byID: map[string]*entity.Prospect{p.ID: p}}
	touchRepo := &memTouchStore{byProspect: map[string][]entity.Touch{}}

	err := touchRepo.CreateMany(context.Background(), []entity.Touch{
		entity.NewTouch(p.ID, 0, "Intro call", p.CreatedAt),
		entity.NewTouch(p.ID, 1, "Follow-up", p.CreatedAt),
	})
	assert.NoError(t, err)

	uc := NewDeleteProspectUseCase(repo, touchRepo)
	assert.NoError(t, uc.Execute(context.Background(), p.ID))

	// The record is gone and a subsequent owned-touch lookup comes back empty.
	_, err = repo.FindByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, entity.ErrProspectNotFound)

	remaining, err := touchRepo.FindByProspect(context.Background(), p.ID)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeleteProspectRestoresTouchesOnFailure(t *testing.T) {
	repo := new(MockProspectRepository)
	touchRepo := new(MockTouchRepository)

	p := entity.NewProspect("Jane", "Doe")
	touches := []entity.Touch{entity.NewTouch(p.ID, 0, "Intro call", p.CreatedAt)}

	repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	touchRepo.On("FindByProspect", mock.Anything, p.ID).Return(touches, nil)
	touchRepo.On("DeleteByProspect", mock.Anything, p.ID).Return(nil)
	repo.On("Delete", mock.Anything, p.ID).Return(errors.New("connection reset"))
	touchRepo.On("CreateMany", mock.Anything, touches).Return(nil)

	uc := NewDeleteProspectUseCase(repo, touchRepo)
	err := uc.Execute(context.Background(), p.ID)

	assert.True(t, IsIntegrityError(err))
	// The snapshot comes back so no orphaned state is left behind.
	touchRepo.AssertCalled(t, "CreateMany", mock.Anything, touches)
}
