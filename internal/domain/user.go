package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is an external identity. The dashboard needs a headcount and
// the bookings listing needs a name to display, nothing more.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

type UserRepository interface {
	Count(ctx context.Context) (int, error)
}
