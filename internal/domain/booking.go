package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is owned by the external booking collaborator; this service
// reads it for reporting only.
type Booking struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ShowID    uuid.UUID
	Amount    decimal.Decimal
	IsPaid    bool
	CreatedAt time.Time

	User *User
	Show *Show
}

// PaidBookingStats aggregates exactly the bookings with IsPaid set.
type PaidBookingStats struct {
	Count   int
	Revenue decimal.Decimal
}

type BookingRepository interface {
	GetPaidStats(ctx context.Context) (PaidBookingStats, error)
	// GetAll returns every booking newest first, with its user and its
	// show (movie populated) joined in.
	GetAll(ctx context.Context) ([]*Booking, error)
}
