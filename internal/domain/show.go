package domain

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BackingKind string

const (
	BackingMovie BackingKind = "movie"
	BackingEvent BackingKind = "event"
)

// Backing is the tagged reference from a Show to the single piece of
// content it screens. Modeling it as a variant instead of two nullable
// foreign keys makes "neither" and "both" unrepresentable above the
// storage layer.
type Backing struct {
	Kind BackingKind
	ID   uuid.UUID
}

func MovieBacking(id uuid.UUID) Backing {
	return Backing{Kind: BackingMovie, ID: id}
}

func EventBacking(id uuid.UUID) Backing {
	return Backing{Kind: BackingEvent, ID: id}
}

func (b Backing) Valid() bool {
	return (b.Kind == BackingMovie || b.Kind == BackingEvent) && b.ID != uuid.Nil
}

// Occupancy maps a seat label to the id of whoever holds that seat.
type Occupancy map[string]string

func (o Occupancy) SeatCount() int {
	return len(o)
}

// Show is a scheduled, priced instance of exactly one movie or event.
// Movie and Event carry the populated referenced record when the query
// asked for it; otherwise they are nil.
type Show struct {
	ID            uuid.UUID
	Backing       Backing
	StartsAt      time.Time
	Price         decimal.Decimal
	OccupiedSeats Occupancy

	Movie *Movie
	Event *Event
}

// Revenue derives per-show earnings from the occupancy map, not from
// booking records. The two are deliberately not reconciled; dashboard
// totals use bookings instead.
func (s *Show) Revenue() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.OccupiedSeats.SeatCount())))
}

// ShowDay is one organizer-supplied calendar day with the clock times
// a show should run at. Date must be a midnight UTC instant; only the
// hour and minute of each entry in Times are used.
type ShowDay struct {
	Date  time.Time
	Times []time.Time
}

// ExpandShows turns the organizer's day/time grid into one Show per
// (date, time) pair, each with the given price and an empty occupancy
// map. Expanding n days of m times yields exactly n*m shows.
func ExpandShows(eventID uuid.UUID, price decimal.Decimal, days []ShowDay) []*Show {
	var shows []*Show

	for _, day := range days {
		for _, clock := range day.Times {
			shows = append(shows, &Show{
				ID:            uuid.New(),
				Backing:       EventBacking(eventID),
				StartsAt:      CombineDateTime(day.Date, clock),
				Price:         price,
				OccupiedSeats: Occupancy{},
			})
		}
	}

	return shows
}

// CombineDateTime merges a calendar day with a clock time into a
// single UTC instant.
func CombineDateTime(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}

// DateOf truncates an instant to its UTC calendar day. All date
// bucketing goes through here so the timezone policy lives in one
// place.
func DateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type ShowSlot struct {
	Time   time.Time
	ShowID uuid.UUID
}

type DaySchedule struct {
	Date  time.Time
	Slots []ShowSlot
}

// GroupShowsByDate partitions shows into per-day buckets. Buckets are
// ordered ascending by date and slots ascending by start time, so the
// output is deterministic regardless of input order.
func GroupShowsByDate(shows []*Show) []DaySchedule {
	buckets := make(map[time.Time][]ShowSlot)

	for _, show := range shows {
		day := DateOf(show.StartsAt)
		buckets[day] = append(buckets[day], ShowSlot{Time: show.StartsAt, ShowID: show.ID})
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	schedules := make([]DaySchedule, 0, len(days))
	for _, day := range days {
		slots := buckets[day]
		slices.SortFunc(slots, func(a, b ShowSlot) int { return a.Time.Compare(b.Time) })
		schedules = append(schedules, DaySchedule{Date: day, Slots: slots})
	}

	return schedules
}

type ShowRepository interface {
	// CreateBatch persists the whole batch in one transaction: either
	// every show becomes visible or none does.
	CreateBatch(ctx context.Context, shows []*Show) error
	GetById(ctx context.Context, id uuid.UUID) (*Show, error)
	// GetUpcomingByBacking returns the shows of one movie or event
	// starting at or after now, ascending by start time.
	GetUpcomingByBacking(ctx context.Context, backing Backing, now time.Time) ([]*Show, error)
	// GetUpcoming returns every future show with its movie or event
	// populated, ascending by start time.
	GetUpcoming(ctx context.Context, now time.Time) ([]*Show, error)
	// GetUpcomingEvents returns each event that still has a future
	// show, once, ordered by its earliest upcoming start time.
	GetUpcomingEvents(ctx context.Context, now time.Time) ([]*Event, error)
	// ReserveSeats claims the given seat labels for holderID in a
	// single guarded write. It fails with ErrSeatAlreadyReserved if
	// any label is already present, leaving the map untouched.
	ReserveSeats(ctx context.Context, showID uuid.UUID, seats []string, holderID uuid.UUID) error
}
