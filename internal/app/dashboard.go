package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/showgrid/showgrid/internal/domain"
)

type ShowResponse struct {
	Id            uuid.UUID        `json:"id"`
	Movie         *MovieResponse   `json:"movie,omitempty"`
	Event         *EventResponse   `json:"event,omitempty"`
	ShowDateTime  time.Time        `json:"showDateTime"`
	ShowPrice     decimal.Decimal  `json:"showPrice"`
	OccupiedSeats domain.Occupancy `json:"occupiedSeats"`
}

type DashboardData struct {
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	ActiveShows   []ShowResponse  `json:"activeShows"`
	TotalUser     int             `json:"totalUser"`
}

type DashboardResponse struct {
	Success       bool          `json:"success"`
	DashboardData DashboardData `json:"dashboardData"`
}

// AdminShowResponse tags each listing entry with the backing kind so
// the presentation layer can branch without inspecting foreign keys.
// TotalBookings and Earnings are occupancy-map projections, not
// booking-collection aggregates.
type AdminShowResponse struct {
	ShowResponse
	Type          domain.BackingKind `json:"type"`
	TotalBookings int                `json:"totalBookings"`
	Earnings      decimal.Decimal    `json:"earnings"`
}

type AdminShowsResponse struct {
	Success bool                `json:"success"`
	Shows   []AdminShowResponse `json:"shows"`
}

type UserResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingResponse struct {
	Id        uuid.UUID       `json:"id"`
	User      *UserResponse   `json:"user,omitempty"`
	Show      *ShowResponse   `json:"show,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	IsPaid    bool            `json:"isPaid"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AdminBookingsResponse struct {
	Success  bool              `json:"success"`
	Bookings []BookingResponse `json:"bookings"`
}

type IsAdminResponse struct {
	Success bool `json:"success"`
	IsAdmin bool `json:"isAdmin"`
}

// IsAdmin only confirms that the request made it through the admin
// auth collaborator in front of this service.
func (app *Application) IsAdmin(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, IsAdminResponse{Success: true, IsAdmin: true}, nil)
}

func (app *Application) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	stats, err := app.bookingRepo.GetPaidStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	activeShows, err := app.showRepo.GetUpcoming(r.Context(), app.now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	totalUsers, err := app.userRepo.Count(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := DashboardResponse{
		Success: true,
		DashboardData: DashboardData{
			TotalBookings: stats.Count,
			TotalRevenue:  stats.Revenue,
			ActiveShows:   toShowResponses(activeShows),
			TotalUser:     totalUsers,
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAllShows(w http.ResponseWriter, r *http.Request) {
	shows, err := app.showRepo.GetUpcoming(r.Context(), app.now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	listing := make([]AdminShowResponse, len(shows))
	for i, show := range shows {
		listing[i] = AdminShowResponse{
			ShowResponse:  toShowResponse(show),
			Type:          show.Backing.Kind,
			TotalBookings: show.OccupiedSeats.SeatCount(),
			Earnings:      show.Revenue(),
		}
	}

	resp := AdminShowsResponse{
		Success: true,
		Shows:   listing,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	listing := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		listing[i] = toBookingResponse(booking)
	}

	resp := AdminBookingsResponse{
		Success:  true,
		Bookings: listing,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowResponse(show *domain.Show) ShowResponse {
	resp := ShowResponse{
		Id:            show.ID,
		ShowDateTime:  show.StartsAt,
		ShowPrice:     show.Price,
		OccupiedSeats: show.OccupiedSeats,
	}

	if show.Movie != nil {
		resp.Movie = &MovieResponse{
			Id:       show.Movie.ID,
			Title:    show.Movie.Title,
			Language: show.Movie.Language,
			Genres:   show.Movie.Genres,
		}
	}

	if show.Event != nil {
		event := toEventResponse(show.Event)
		resp.Event = &event
	}

	return resp
}

func toShowResponses(shows []*domain.Show) []ShowResponse {
	responses := make([]ShowResponse, len(shows))
	for i, show := range shows {
		responses[i] = toShowResponse(show)
	}

	return responses
}

func toBookingResponse(booking *domain.Booking) BookingResponse {
	resp := BookingResponse{
		Id:        booking.ID,
		Amount:    booking.Amount,
		IsPaid:    booking.IsPaid,
		CreatedAt: booking.CreatedAt,
	}

	if booking.User != nil {
		resp.User = &UserResponse{
			Id:    booking.User.ID,
			Name:  booking.User.Name,
			Email: booking.User.Email,
		}
	}

	if booking.Show != nil {
		show := toShowResponse(booking.Show)
		resp.Show = &show
	}

	return resp
}
