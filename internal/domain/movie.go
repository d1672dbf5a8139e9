package domain

import (
	"context"

	"github.com/google/uuid"
)

// Movie is an externally sourced catalogue item. The catalogue
// integration owns its lifecycle; this service only reads it.
type Movie struct {
	ID       uuid.UUID
	Title    string
	Language string
	Genres   []string
}

type MovieRepository interface {
	GetById(ctx context.Context, id uuid.UUID) (*Movie, error)
}
