package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/showgrid/showgrid/internal/domain"
)

type MockEventRepo struct {
	domain.EventRepository
	CreateFunc   func(ctx context.Context, event *domain.Event) error
	GetByIdFunc  func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetByIdsFunc func(ctx context.Context, ids []uuid.UUID) ([]*domain.Event, error)
	GetAllFunc   func(ctx context.Context) ([]*domain.Event, error)
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	return m.CreateFunc(ctx, event)
}

func (m *MockEventRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockEventRepo) GetByIds(ctx context.Context, ids []uuid.UUID) ([]*domain.Event, error) {
	return m.GetByIdsFunc(ctx, ids)
}

func (m *MockEventRepo) GetAll(ctx context.Context) ([]*domain.Event, error) {
	return m.GetAllFunc(ctx)
}
