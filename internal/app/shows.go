package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/showgrid/showgrid/internal/domain"
	appvalidator "github.com/showgrid/showgrid/internal/validator"
)

type ShowInput struct {
	Date  string   `json:"date" validate:"required,calendar_date"`
	Times []string `json:"time" validate:"required,min=1,dive,time_of_day"`
}

type AddShowRequest struct {
	EventId    string          `json:"eventId" validate:"required,uuid"`
	ShowsInput []ShowInput     `json:"showsInput" validate:"required,min=1,dive"`
	ShowPrice  decimal.Decimal `json:"showPrice" validate:"required,positive_amount"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MovieResponse struct {
	Id       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Language string    `json:"language"`
	Genres   []string  `json:"genres"`
}

type ShowSlotResponse struct {
	Time   time.Time `json:"time"`
	ShowId uuid.UUID `json:"showId"`
}

// ShowScheduleResponse answers GET /show/{id}: exactly one of Movie
// and Event is set, mirroring the backing invariant.
type ShowScheduleResponse struct {
	Success  bool                          `json:"success"`
	Movie    *MovieResponse                `json:"movie,omitempty"`
	Event    *EventResponse                `json:"event,omitempty"`
	DateTime map[string][]ShowSlotResponse `json:"dateTime"`
}

type UpcomingShowsResponse struct {
	Success bool            `json:"success"`
	Shows   []EventResponse `json:"shows"`
}

// AddShow expands the organizer's date/time grid into one show per
// pair and persists the whole batch atomically.
func (app *Application) AddShow(w http.ResponseWriter, r *http.Request) {
	var req AddShowRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	eventID, err := uuid.Parse(req.EventId)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid event id: %w", err))
		return
	}

	event, err := app.eventRepo.GetById(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.failureResponse(w, r, "Event not found.")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	days, err := toShowDays(req.ShowsInput)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shows := domain.ExpandShows(event.ID, req.ShowPrice, days)

	err = app.showRepo.CreateBatch(r.Context(), shows)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// One notification per successful batch. The batch is already
	// durable, so a notifier hiccup does not fail the request.
	err = app.notifier.ShowAdded(r.Context(), event.Name)
	if err != nil {
		app.logger.Warn("failed to publish show added notification", "event", event.Name, "error", err)
	}

	resp := MessageResponse{
		Success: true,
		Message: "Show added successfully.",
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetShows lists upcoming shows deduplicated by their referenced
// event.
func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	events, err := app.showRepo.GetUpcomingEvents(r.Context(), app.now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := UpcomingShowsResponse{
		Success: true,
		Shows:   toEventResponses(events),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetShow resolves an opaque id as a movie first, then as an event,
// and returns the matching upcoming shows grouped by calendar date.
// The two branches are mutually exclusive; an id matching neither is a
// 404.
func (app *Application) GetShow(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		app.errorResponse(w, r, http.StatusNotFound, "Invalid id.")
		return
	}

	now := app.now()

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	if movie != nil {
		shows, err := app.showRepo.GetUpcomingByBacking(r.Context(), domain.MovieBacking(id), now)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		resp := ShowScheduleResponse{
			Success: true,
			Movie: &MovieResponse{
				Id:       movie.ID,
				Title:    movie.Title,
				Language: movie.Language,
				Genres:   movie.Genres,
			},
			DateTime: toDateTimeMap(shows),
		}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	event, err := app.eventRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, "Show not found.")
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	shows, err := app.showRepo.GetUpcomingByBacking(r.Context(), domain.EventBacking(id), now)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	eventResp := toEventResponse(event)
	resp := ShowScheduleResponse{
		Success:  true,
		Event:    &eventResp,
		DateTime: toDateTimeMap(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowDays(inputs []ShowInput) ([]domain.ShowDay, error) {
	days := make([]domain.ShowDay, 0, len(inputs))

	for _, input := range inputs {
		date, err := time.Parse(appvalidator.CalendarDateLayout, input.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid show date %q: %w", input.Date, err)
		}

		day := domain.ShowDay{Date: date}
		for _, value := range input.Times {
			clock, err := time.Parse(appvalidator.TimeOfDayLayout, value)
			if err != nil {
				return nil, fmt.Errorf("invalid show time %q: %w", value, err)
			}

			day.Times = append(day.Times, clock)
		}

		days = append(days, day)
	}

	return days, nil
}

func toDateTimeMap(shows []*domain.Show) map[string][]ShowSlotResponse {
	dateTime := make(map[string][]ShowSlotResponse)

	for _, schedule := range domain.GroupShowsByDate(shows) {
		key := schedule.Date.Format(appvalidator.CalendarDateLayout)

		slots := make([]ShowSlotResponse, len(schedule.Slots))
		for i, slot := range schedule.Slots {
			slots[i] = ShowSlotResponse{Time: slot.Time, ShowId: slot.ShowID}
		}

		dateTime[key] = slots
	}

	return dateTime
}
