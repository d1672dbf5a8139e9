package app

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/showgrid/showgrid/internal/domain"
	appvalidator "github.com/showgrid/showgrid/internal/validator"
)

type AddEventRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Date        string `json:"date" validate:"required,calendar_date"`
	Photo       string `json:"photo" validate:"required,url"`
	Organizer   string `json:"organizer" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Kind        string `json:"kind" validate:"required,max=100"`
}

type EventResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Photo       string    `json:"photo"`
	Organizer   string    `json:"organizer"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddEventResponse struct {
	Success bool          `json:"success"`
	Event   EventResponse `json:"event"`
}

type EventListResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Events  []EventResponse `json:"events"`
}

func (app *Application) AddEvent(w http.ResponseWriter, r *http.Request) {
	var req AddEventRequest

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

	date, err := time.Parse(appvalidator.CalendarDateLayout, req.Date)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid event date: %w", err))
		return
	}

	event := &domain.Event{
		Name:        req.Name,
		Date:        date,
		Photo:       req.Photo,
		Organizer:   req.Organizer,
		Description: req.Description,
		Kind:        req.Kind,
	}

	err = app.eventRepo.Create(r.Context(), event)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := AddEventResponse{
		Success: true,
		Event:   toEventResponse(event),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetEventsByIds serves GET /event?ids=<csv>. An empty or absent ids
// parameter is an operation failure with an empty events list, not a
// transport error.
func (app *Application) GetEventsByIds(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := uuid.Parse(part)
		if err != nil {
			app.writeJSON(w, http.StatusOK, EventListResponse{
				Success: false,
				Message: fmt.Sprintf("invalid event id: %s", part),
				Events:  []EventResponse{},
			}, nil)
			return
		}

		ids = append(ids, id)
	}

	if len(ids) == 0 {
		app.writeJSON(w, http.StatusOK, EventListResponse{
			Success: false,
			Message: "No event ids provided",
			Events:  []EventResponse{},
		}, nil)
		return
	}

	events, err := app.eventRepo.GetByIds(r.Context(), ids)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := EventListResponse{
		Success: true,
		Events:  toEventResponses(events),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := app.eventRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := EventListResponse{
		Success: true,
		Events:  toEventResponses(events),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		Id:          event.ID,
		Name:        event.Name,
		Date:        event.Date.UTC().Format(appvalidator.CalendarDateLayout),
		Photo:       event.Photo,
		Organizer:   event.Organizer,
		Description: event.Description,
		Kind:        event.Kind,
		CreatedAt:   event.CreatedAt,
	}
}

func toEventResponses(events []*domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, event := range events {
		responses[i] = toEventResponse(event)
	}

	return responses
}
