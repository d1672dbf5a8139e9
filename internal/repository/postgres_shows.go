package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showgrid/showgrid/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

// CreateBatch inserts the whole batch inside one transaction. The
// movie-xor-event invariant is checked here before touching the
// database; the shows table carries a matching CHECK constraint as a
// second line of defense.
func (p *PostgresShowRepository) CreateBatch(ctx context.Context, shows []*domain.Show) error {
	for _, show := range shows {
		if !show.Backing.Valid() {
			return domain.ErrShowBackingRequired
		}
	}

	rows := make([][]any, 0, len(shows))
	for _, show := range shows {
		occupied, err := json.Marshal(show.OccupiedSeats)
		if err != nil {
			return fmt.Errorf("marshal occupancy: %w", err)
		}

		var movieID, eventID *uuid.UUID
		switch show.Backing.Kind {
		case domain.BackingMovie:
			movieID = &show.Backing.ID
		case domain.BackingEvent:
			eventID = &show.Backing.ID
		}

		rows = append(rows, []any{
			show.ID,
			movieID,
			eventID,
			show.StartsAt,
			show.Price,
			occupied,
		})
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"shows"},
			[]string{"id", "movie_id", "event_id", "starts_at", "price", "occupied_seats"},
			pgx.CopyFromRows(rows),
		)

		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return domain.ErrShowBackingRequired
		}

		return err
	}

	return nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Show, error) {
	query := `SELECT id, movie_id, event_id, starts_at, price, occupied_seats
		FROM shows
		WHERE id = $1`

	var (
		show             domain.Show
		movieID, eventID *uuid.UUID
	)

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&movieID,
		&eventID,
		&show.StartsAt,
		&show.Price,
		&show.OccupiedSeats,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	show.Backing = backingOf(movieID, eventID)

	return &show, nil
}

func (p *PostgresShowRepository) GetUpcomingByBacking(
	ctx context.Context,
	backing domain.Backing,
	now time.Time) ([]*domain.Show, error) {

	column := "movie_id"
	if backing.Kind == domain.BackingEvent {
		column = "event_id"
	}

	query := fmt.Sprintf(`SELECT id, movie_id, event_id, starts_at, price, occupied_seats
		FROM shows
		WHERE %s = $1 AND starts_at >= $2
		ORDER BY starts_at`, column)

	rows, err := p.db.Query(ctx, query, backing.ID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []*domain.Show{}

	for rows.Next() {
		var (
			show             domain.Show
			movieID, eventID *uuid.UUID
		)

		err = rows.Scan(
			&show.ID,
			&movieID,
			&eventID,
			&show.StartsAt,
			&show.Price,
			&show.OccupiedSeats,
		)
		if err != nil {
			return nil, err
		}

		show.Backing = backingOf(movieID, eventID)
		shows = append(shows, &show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

// GetUpcoming returns every future show ascending by start time, with
// the referenced movie or event joined in.
func (p *PostgresShowRepository) GetUpcoming(ctx context.Context, now time.Time) ([]*domain.Show, error) {
	query := `
		SELECT
			s.id, s.movie_id, s.event_id, s.starts_at, s.price, s.occupied_seats,
			m.title, m.language, m.genres,
			e.name, e.date, e.photo, e.organizer, e.description, e.kind, e.created_at
		FROM shows s
		LEFT JOIN movies m ON s.movie_id = m.id
		LEFT JOIN events e ON s.event_id = e.id
		WHERE s.starts_at >= $1
		ORDER BY s.starts_at
	`

	rows, err := p.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := []*domain.Show{}

	for rows.Next() {
		var (
			show             domain.Show
			movieID, eventID *uuid.UUID

			movieTitle, movieLanguage *string
			movieGenres               []string

			eventName, eventPhoto, eventOrganizer, eventDescription, eventKind *string
			eventDate, eventCreatedAt                                          *time.Time
		)

		err = rows.Scan(
			&show.ID,
			&movieID,
			&eventID,
			&show.StartsAt,
			&show.Price,
			&show.OccupiedSeats,
			&movieTitle,
			&movieLanguage,
			&movieGenres,
			&eventName,
			&eventDate,
			&eventPhoto,
			&eventOrganizer,
			&eventDescription,
			&eventKind,
			&eventCreatedAt,
		)
		if err != nil {
			return nil, err
		}

		show.Backing = backingOf(movieID, eventID)

		if movieID != nil && movieTitle != nil {
			show.Movie = &domain.Movie{
				ID:       *movieID,
				Title:    *movieTitle,
				Language: *movieLanguage,
				Genres:   movieGenres,
			}
		}

		if eventID != nil && eventName != nil {
			show.Event = &domain.Event{
				ID:          *eventID,
				Name:        *eventName,
				Date:        *eventDate,
				Photo:       *eventPhoto,
				Organizer:   *eventOrganizer,
				Description: *eventDescription,
				Kind:        *eventKind,
				CreatedAt:   *eventCreatedAt,
			}
		}

		shows = append(shows, &show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

// GetUpcomingEvents deduplicates future shows by their referenced
// event, ordered by each event's earliest upcoming start time.
func (p *PostgresShowRepository) GetUpcomingEvents(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `
		SELECT e.id, e.name, e.date, e.photo, e.organizer, e.description, e.kind, e.created_at
		FROM events e
		JOIN shows s ON s.event_id = e.id
		WHERE s.starts_at >= $1
		GROUP BY e.id
		ORDER BY min(s.starts_at)
	`

	rows, err := p.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ReserveSeats claims the given seats for holderID with a single
// guarded UPDATE: the merge only happens when none of the labels is
// already a key of the occupancy map, so two concurrent reservations
// of the same seat cannot both succeed.
func (p *PostgresShowRepository) ReserveSeats(
	ctx context.Context,
	showID uuid.UUID,
	seats []string,
	holderID uuid.UUID) error {

	if len(seats) == 0 {
		return nil
	}

	patch := make(domain.Occupancy, len(seats))
	for _, seat := range seats {
		patch[seat] = holderID.String()
	}

	encoded, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal occupancy patch: %w", err)
	}

	query := `
		UPDATE shows
		SET occupied_seats = occupied_seats || $2::jsonb
		WHERE id = $1 AND NOT occupied_seats ?| $3
	`

	tag, err := p.db.Exec(ctx, query, showID, encoded, seats)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM shows WHERE id = $1)`, showID).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrRecordNotFound
	}

	return domain.ErrSeatAlreadyReserved
}

func backingOf(movieID, eventID *uuid.UUID) domain.Backing {
	switch {
	case movieID != nil:
		return domain.MovieBacking(*movieID)
	case eventID != nil:
		return domain.EventBacking(*eventID)
	default:
		return domain.Backing{}
	}
}
