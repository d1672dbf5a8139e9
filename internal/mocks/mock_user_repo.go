package mocks

import (
	"context"

	"github.com/showgrid/showgrid/internal/domain"
)

type MockUserRepo struct {
	domain.UserRepository
	CountFunc func(ctx context.Context) (int, error)
}

func (m *MockUserRepo) Count(ctx context.Context) (int, error) {
	return m.CountFunc(ctx)
}
