package integration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/showgrid/showgrid/internal/domain"
	"github.com/showgrid/showgrid/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventEnvelope struct {
	Success bool `json:"success"`
	Event   struct {
		Id   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	} `json:"event"`
}

type scheduleEnvelope struct {
	Success bool `json:"success"`
	Movie   *struct {
		Id    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	} `json:"movie"`
	Event *struct {
		Id   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	} `json:"event"`
	DateTime map[string][]struct {
		Time   time.Time `json:"time"`
		ShowId uuid.UUID `json:"showId"`
	} `json:"dateTime"`
}

func (s *BaseSuite) TestEventShowLifecycle() {
	t := s.T()
	ctx := context.Background()

	// listen for the domain notification before triggering it
	sub := redis.NewClient(&redis.Options{Addr: s.cacheContainer.ConnectionString})
	defer sub.Close()

	pubsub := sub.Subscribe(ctx, notifyChannel)
	defer pubsub.Close()

	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)

	resp := s.doRequest(http.MethodPost, "/event", map[string]any{
		"name":      "Summer Jazz Night",
		"date":      "2099-07-15",
		"photo":     "https://example.com/jazz.jpg",
		"organizer": "Blue Note",
		"kind":      "concert",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created eventEnvelope
	s.decodeBody(resp, &created)
	require.True(t, created.Success)
	require.NotEqual(t, uuid.Nil, created.Event.Id)

	resp = s.doRequest(http.MethodPost, "/show", map[string]any{
		"eventId": created.Event.Id.String(),
		"showsInput": []map[string]any{
			{"date": "2099-06-01", "time": []string{"14:00", "10:00"}},
			{"date": "2099-06-02", "time": []string{"18:30"}},
		},
		"showPrice": 500,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var added struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	s.decodeBody(resp, &added)
	require.True(t, added.Success)

	// exactly one notification per successful batch
	select {
	case msg := <-pubsub.Channel():
		var notification struct {
			Name string `json:"name"`
			Data struct {
				EventName string `json:"eventName"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &notification))
		assert.Equal(t, "show.added", notification.Name)
		assert.Equal(t, "Summer Jazz Night", notification.Data.EventName)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for show added notification")
	}

	// the upcoming listing dedupes three shows into one event
	resp = s.doRequest(http.MethodGet, "/show", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Success bool `json:"success"`
		Shows   []struct {
			Id uuid.UUID `json:"id"`
		} `json:"shows"`
	}
	s.decodeBody(resp, &listing)
	require.True(t, listing.Success)
	require.Len(t, listing.Shows, 1)
	assert.Equal(t, created.Event.Id, listing.Shows[0].Id)

	// the resolver takes the event branch and buckets by date
	resp = s.doRequest(http.MethodGet, "/show/"+created.Event.Id.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var schedule scheduleEnvelope
	s.decodeBody(resp, &schedule)
	require.True(t, schedule.Success)
	require.Nil(t, schedule.Movie)
	require.NotNil(t, schedule.Event)
	assert.Equal(t, created.Event.Id, schedule.Event.Id)

	require.Len(t, schedule.DateTime, 2)
	require.Len(t, schedule.DateTime["2099-06-01"], 2)
	require.Len(t, schedule.DateTime["2099-06-02"], 1)

	firstDay := schedule.DateTime["2099-06-01"]
	assert.True(t, firstDay[0].Time.Before(firstDay[1].Time), "slots within a bucket must ascend")

	// the admin listing tags the shows with the event discriminant
	resp = s.doRequest(http.MethodGet, "/admin/all-shows", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var adminListing struct {
		Success bool `json:"success"`
		Shows   []struct {
			Type         string    `json:"type"`
			ShowDateTime time.Time `json:"showDateTime"`
		} `json:"shows"`
	}
	s.decodeBody(resp, &adminListing)
	require.True(t, adminListing.Success)
	require.Len(t, adminListing.Shows, 3)

	for i, show := range adminListing.Shows {
		assert.Equal(t, "event", show.Type)
		if i > 0 {
			assert.False(t, show.ShowDateTime.Before(adminListing.Shows[i-1].ShowDateTime),
				"admin listing must ascend by start time")
		}
	}
}

func (s *BaseSuite) TestMovieShowResolution() {
	t := s.T()

	movieID := s.seedMovie("Arrival", "English", []string{"sci-fi", "drama"})
	price := decimal.NewFromInt(300)

	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Minute)
	s.seedShow(movieID, future, price)
	s.seedShow(movieID, future.Add(4*time.Hour), price)
	s.seedShow(movieID, time.Now().UTC().Add(-48*time.Hour), price) // already played

	resp := s.doRequest(http.MethodGet, "/show/"+movieID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var schedule scheduleEnvelope
	s.decodeBody(resp, &schedule)
	require.True(t, schedule.Success)
	require.NotNil(t, schedule.Movie)
	require.Nil(t, schedule.Event)
	assert.Equal(t, "Arrival", schedule.Movie.Title)

	total := 0
	for _, slots := range schedule.DateTime {
		total += len(slots)
	}
	assert.Equal(t, 2, total, "past shows must not be resolved")

	// unknown and malformed ids both answer 404
	resp = s.doRequest(http.MethodGet, "/show/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(http.MethodGet, "/show/not-an-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *BaseSuite) TestDashboardTotals() {
	t := s.T()

	movieID := s.seedMovie("Arrival", "English", []string{"sci-fi"})
	showID := s.seedShow(movieID, time.Now().UTC().Add(24*time.Hour), decimal.NewFromInt(300))

	alice := s.seedUser("Alice")
	bob := s.seedUser("Bob")

	s.seedBooking(alice, showID, decimal.NewFromInt(600), true)
	s.seedBooking(bob, showID, decimal.NewFromInt(300), true)
	s.seedBooking(bob, showID, decimal.NewFromInt(900), false) // unpaid, must not count

	resp := s.doRequest(http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard struct {
		Success       bool `json:"success"`
		DashboardData struct {
			TotalBookings int             `json:"totalBookings"`
			TotalRevenue  decimal.Decimal `json:"totalRevenue"`
			ActiveShows   []struct {
				Id uuid.UUID `json:"id"`
			} `json:"activeShows"`
			TotalUser int `json:"totalUser"`
		} `json:"dashboardData"`
	}
	s.decodeBody(resp, &dashboard)

	require.True(t, dashboard.Success)
	assert.Equal(t, 2, dashboard.DashboardData.TotalBookings)
	assert.True(t, dashboard.DashboardData.TotalRevenue.Equal(decimal.NewFromInt(900)),
		"totalRevenue = %v, want 900", dashboard.DashboardData.TotalRevenue)
	assert.Equal(t, 2, dashboard.DashboardData.TotalUser)
	require.Len(t, dashboard.DashboardData.ActiveShows, 1)
	assert.Equal(t, showID, dashboard.DashboardData.ActiveShows[0].Id)
}

func (s *BaseSuite) TestShowBackingInvariant() {
	t := s.T()
	ctx := context.Background()

	movieID := s.seedMovie("Arrival", "English", nil)

	resp := s.doRequest(http.MethodPost, "/event", map[string]any{
		"name":      "Jazz Night",
		"date":      "2099-07-15",
		"photo":     "https://example.com/j.jpg",
		"organizer": "Blue Note",
		"kind":      "concert",
	})
	var created eventEnvelope
	s.decodeBody(resp, &created)

	// neither backing
	_, err := s.db.Exec(ctx,
		`INSERT INTO shows (id, starts_at, price) VALUES ($1, now(), 100)`,
		uuid.New())
	require.Error(t, err, "a show with no backing must be rejected")

	// both backings
	_, err = s.db.Exec(ctx,
		`INSERT INTO shows (id, movie_id, event_id, starts_at, price) VALUES ($1, $2, $3, now(), 100)`,
		uuid.New(), movieID, created.Event.Id)
	require.Error(t, err, "a show with both backings must be rejected")
}

func (s *BaseSuite) TestReserveSeats() {
	t := s.T()
	ctx := context.Background()

	movieID := s.seedMovie("Arrival", "English", nil)
	price := decimal.NewFromInt(250)
	showID := s.seedShow(movieID, time.Now().UTC().Add(24*time.Hour), price)

	showRepo := repository.NewPostgresShowRepository(s.db)
	holder := uuid.New()
	rival := uuid.New()

	err := showRepo.ReserveSeats(ctx, showID, []string{"A1", "A2"}, holder)
	require.NoError(t, err)

	// the guard rejects overlapping claims without touching the map
	err = showRepo.ReserveSeats(ctx, showID, []string{"A2", "A3"}, rival)
	require.ErrorIs(t, err, domain.ErrSeatAlreadyReserved)

	err = showRepo.ReserveSeats(ctx, uuid.New(), []string{"B1"}, rival)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)

	show, err := showRepo.GetById(ctx, showID)
	require.NoError(t, err)

	assert.Equal(t, 2, show.OccupiedSeats.SeatCount())
	assert.Equal(t, holder.String(), show.OccupiedSeats["A1"])
	assert.Equal(t, holder.String(), show.OccupiedSeats["A2"])
	assert.True(t, show.Revenue().Equal(price.Mul(decimal.NewFromInt(2))),
		"revenue = %v, want seatCount * price", show.Revenue())
}
