package mocks

import (
	"context"

	"github.com/showgrid/showgrid/internal/domain"
)

type MockBookingRepo struct {
	domain.BookingRepository
	GetPaidStatsFunc func(ctx context.Context) (domain.PaidBookingStats, error)
	GetAllFunc       func(ctx context.Context) ([]*domain.Booking, error)
}

func (m *MockBookingRepo) GetPaidStats(ctx context.Context) (domain.PaidBookingStats, error) {
	return m.GetPaidStatsFunc(ctx)
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return m.GetAllFunc(ctx)
}
