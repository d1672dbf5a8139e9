package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *BaseSuite) doRequest(method, path string, body any) *http.Response {
	var reader *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.server.Client().Do(req)
	require.NoError(s.T(), err)

	return resp
}

func (s *BaseSuite) decodeBody(resp *http.Response, dst any) {
	defer resp.Body.Close()
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(dst))
}

func (s *BaseSuite) seedMovie(title, language string, genres []string) uuid.UUID {
	id := uuid.New()

	if genres == nil {
		genres = []string{}
	}

	_, err := s.db.Exec(context.Background(),
		`INSERT INTO movies (id, title, language, genres) VALUES ($1, $2, $3, $4)`,
		id, title, language, genres)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedUser(name string) uuid.UUID {
	id := uuid.New()

	_, err := s.db.Exec(context.Background(),
		`INSERT INTO users (id, name, email) VALUES ($1, $2, $3)`,
		id, name, fmt.Sprintf("%s@example.com", id))
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedShow(movieID uuid.UUID, startsAt time.Time, price decimal.Decimal) uuid.UUID {
	id := uuid.New()

	_, err := s.db.Exec(context.Background(),
		`INSERT INTO shows (id, movie_id, starts_at, price) VALUES ($1, $2, $3, $4)`,
		id, movieID, startsAt, price)
	require.NoError(s.T(), err)

	return id
}

func (s *BaseSuite) seedBooking(userID, showID uuid.UUID, amount decimal.Decimal, isPaid bool) uuid.UUID {
	id := uuid.New()

	_, err := s.db.Exec(context.Background(),
		`INSERT INTO bookings (id, user_id, show_id, amount, is_paid) VALUES ($1, $2, $3, $4, $5)`,
		id, userID, showID, amount, isPaid)
	require.NoError(s.T(), err)

	return id
}
