package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/showgrid/showgrid/internal/domain"
)

type MockShowRepo struct {
	domain.ShowRepository
	CreateBatchFunc          func(ctx context.Context, shows []*domain.Show) error
	GetByIdFunc              func(ctx context.Context, id uuid.UUID) (*domain.Show, error)
	GetUpcomingByBackingFunc func(ctx context.Context, backing domain.Backing, now time.Time) ([]*domain.Show, error)
	GetUpcomingFunc          func(ctx context.Context, now time.Time) ([]*domain.Show, error)
	GetUpcomingEventsFunc    func(ctx context.Context, now time.Time) ([]*domain.Event, error)
	ReserveSeatsFunc         func(ctx context.Context, showID uuid.UUID, seats []string, holderID uuid.UUID) error
}

func (m *MockShowRepo) CreateBatch(ctx context.Context, shows []*domain.Show) error {
	return m.CreateBatchFunc(ctx, shows)
}

func (m *MockShowRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Show, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowRepo) GetUpcomingByBacking(
	ctx context.Context,
	backing domain.Backing,
	now time.Time) ([]*domain.Show, error) {

	return m.GetUpcomingByBackingFunc(ctx, backing, now)
}

func (m *MockShowRepo) GetUpcoming(ctx context.Context, now time.Time) ([]*domain.Show, error) {
	return m.GetUpcomingFunc(ctx, now)
}

func (m *MockShowRepo) GetUpcomingEvents(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	return m.GetUpcomingEventsFunc(ctx, now)
}

func (m *MockShowRepo) ReserveSeats(
	ctx context.Context,
	showID uuid.UUID,
	seats []string,
	holderID uuid.UUID) error {

	return m.ReserveSeatsFunc(ctx, showID, seats, holderID)
}
