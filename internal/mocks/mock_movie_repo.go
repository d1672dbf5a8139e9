package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/showgrid/showgrid/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetByIdFunc func(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}
