package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/showgrid/showgrid/internal/domain"
)

type PostgresEventRepository struct {
	db *pgxpool.Pool
}

func NewPostgresEventRepository(db *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{
		db: db,
	}
}

func (p *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	event.ID = uuid.New()
	event.CreatedAt = time.Now().UTC()

	query := `INSERT INTO events (id, name, date, photo, organizer, description, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := p.db.Exec(ctx,
		query,
		event.ID,
		event.Name,
		event.Date,
		event.Photo,
		event.Organizer,
		event.Description,
		event.Kind,
		event.CreatedAt,
	)

	return err
}

func (p *PostgresEventRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := `SELECT id, name, date, photo, organizer, description, kind, created_at
		FROM events
		WHERE id = $1`

	var event domain.Event

	err := p.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Photo,
		&event.Organizer,
		&event.Description,
		&event.Kind,
		&event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &event, nil
}

func (p *PostgresEventRepository) GetByIds(ctx context.Context, ids []uuid.UUID) ([]*domain.Event, error) {
	query := `SELECT id, name, date, photo, organizer, description, kind, created_at
		FROM events
		WHERE id = ANY($1)
		ORDER BY date`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (p *PostgresEventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT id, name, date, photo, organizer, description, kind, created_at
		FROM events
		ORDER BY date`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	events := []*domain.Event{}

	for rows.Next() {
		var event domain.Event

		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Photo,
			&event.Organizer,
			&event.Description,
			&event.Kind,
			&event.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
