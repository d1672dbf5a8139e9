package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is an organizer-created item. There is no update path: an
// event is created once and replaced by re-creation if needed.
type Event struct {
	ID          uuid.UUID
	Name        string
	Date        time.Time
	Photo       string
	Organizer   string
	Description string
	Kind        string
	CreatedAt   time.Time
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetById(ctx context.Context, id uuid.UUID) (*Event, error)
	GetByIds(ctx context.Context, ids []uuid.UUID) ([]*Event, error)
	GetAll(ctx context.Context) ([]*Event, error)
}
