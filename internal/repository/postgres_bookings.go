package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showgrid/showgrid/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// GetPaidStats aggregates over exactly the paid bookings. Unpaid
// bookings never contribute to dashboard totals.
func (p *PostgresBookingRepository) GetPaidStats(ctx context.Context) (domain.PaidBookingStats, error) {
	query := `SELECT count(*), coalesce(sum(amount), 0) FROM bookings WHERE is_paid`

	var stats domain.PaidBookingStats

	err := p.db.QueryRow(ctx, query).Scan(&stats.Count, &stats.Revenue)
	if err != nil {
		return domain.PaidBookingStats{}, err
	}

	return stats, nil
}

func (p *PostgresBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `
		SELECT
			b.id, b.user_id, b.show_id, b.amount, b.is_paid, b.created_at,
			u.name, u.email,
			s.starts_at, s.price, s.movie_id, s.event_id,
			m.title, m.language
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN shows s ON b.show_id = s.id
		LEFT JOIN movies m ON s.movie_id = m.id
		ORDER BY b.created_at DESC
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*domain.Booking{}

	for rows.Next() {
		var (
			booking domain.Booking
			user    domain.User
			show    domain.Show

			movieID, eventID          *uuid.UUID
			movieTitle, movieLanguage *string
		)

		err = rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ShowID,
			&booking.Amount,
			&booking.IsPaid,
			&booking.CreatedAt,
			&user.Name,
			&user.Email,
			&show.StartsAt,
			&show.Price,
			&movieID,
			&eventID,
			&movieTitle,
			&movieLanguage,
		)
		if err != nil {
			return nil, err
		}

		user.ID = booking.UserID
		show.ID = booking.ShowID

		show.Backing = backingOf(movieID, eventID)

		if movieID != nil && movieTitle != nil {
			show.Movie = &domain.Movie{
				ID:       *movieID,
				Title:    *movieTitle,
				Language: *movieLanguage,
			}
		}

		booking.User = &user
		booking.Show = &show

		bookings = append(bookings, &booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
