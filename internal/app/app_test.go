package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/config"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	"github.com/m04kA/SMC-DeskBooking/internal/seed"
	"github.com/m04kA/SMC-DeskBooking/internal/testfixtures"
	"github.com/m04kA/SMC-DeskBooking/pkg/metrics"
)

type testServer struct {
	app  *App
	date string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	fixtures, err := seed.Default()
	require.NoError(t, err)

	today := domain.StartOfDay(time.Now().UTC())
	application, err := New(context.Background(), config.Default(), fixtures, today, metrics.New("desk_booking_test"), testfixtures.Logger())
	require.NoError(t, err)

	return &testServer{app: application, date: today.Format(domain.DateFormat)}
}

func (s *testServer) do(t *testing.T, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.app.Handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type floorplanBody struct {
	Resources []struct {
		ID            string  `json:"id"`
		BookedPercent float64 `json:"bookedPercent"`
		BadgeColor    string  `json:"badgeColor"`
		Occupant      *struct {
			ID string `json:"id"`
		} `json:"occupant"`
	} `json:"resources"`
}

type errorBody struct {
	Error string `json:"error"`
}

func TestFloorplan(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/floorplan?date="+s.date+"&time=10:00", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode[floorplanBody](t, rec)
	require.Len(t, body.Resources, 7)

	percents := map[string]float64{}
	occupants := map[string]string{}
	for _, r := range body.Resources {
		percents[r.ID] = r.BookedPercent
		if r.Occupant != nil {
			occupants[r.ID] = r.Occupant.ID
		}
	}

	assert.Equal(t, map[string]float64{"d1": 83.33, "d2": 0, "d3": 0, "d4": 50, "d5": 41.67, "r1": 20.83, "r2": 12.5}, percents)
	assert.Equal(t, map[string]string{"d1": "u2", "d4": "u3"}, occupants)
	assert.Equal(t, "#22c55e", body.Resources[1].BadgeColor)
}

func TestBookingFlow(t *testing.T) {
	s := newTestServer(t)

	// Утренний слот свободного стола
	rec := s.do(t, http.MethodPost, "/api/v1/bookings", "u4",
		`{"resourceId":"d2","date":"`+s.date+`","slot":"morning"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[struct {
		Booking struct {
			ID        string `json:"id"`
			StartTime string `json:"startTime"`
		} `json:"booking"`
	}](t, rec)
	assert.Equal(t, "06:00", created.Booking.StartTime)
	path := "/api/v1/bookings/" + created.Booking.ID

	// Второй стол на пересекающееся время запрещён
	rec = s.do(t, http.MethodPost, "/api/v1/bookings", "u4",
		`{"resourceId":"d3","date":"`+s.date+`","slot":"fullday"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You can only have one desk booking at a time.", decode[errorBody](t, rec).Error)

	// Перенос на вторую половину дня
	rec = s.do(t, http.MethodPut, path, "u4", `{"slot":"afternoon"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Чужое бронирование нельзя менять и отменять
	rec = s.do(t, http.MethodPut, path, "u1", `{"slot":"morning"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.do(t, http.MethodDelete, path, "u1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, path, "u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, path, "u4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodDelete, path, "u4", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, path, "u4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoomBookingErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/bookings", "",
		`{"resourceId":"r2","date":"`+s.date+`","startTime":"15:00","endTime":"16:00"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Time overlaps with an existing booking on this resource.", decode[errorBody](t, rec).Error)

	rec = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		`{"resourceId":"r2","date":"`+s.date+`","startTime":"16:00","endTime":"16:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "End time must be later than start time.", decode[errorBody](t, rec).Error)

	// Касание интервалов не является пересечением
	rec = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		`{"resourceId":"r2","date":"`+s.date+`","startTime":"15:30","endTime":"16:30"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/bookings", "",
		`{"resourceId":"zz","date":"`+s.date+`","startTime":"15:30","endTime":"16:30"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActingUser(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/users/me/bookings", "zz", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Без заголовка действует пользователь по умолчанию (u1)
	rec = s.do(t, http.MethodGet, "/api/v1/users/me/bookings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		Bookings []struct {
			ID string `json:"id"`
		} `json:"bookings"`
	}](t, rec)
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "b3", body.Bookings[0].ID)
}

func TestResourceAdmin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/admin/resources", "", `{"x":700,"y":400}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Kind string `json:"kind"`
	}](t, rec)
	assert.Equal(t, "New Desk 8", created.Name)
	assert.Equal(t, "desk", created.Kind)

	rec = s.do(t, http.MethodPut, "/api/v1/admin/resources/"+created.ID, "", `{"name":"Window Desk"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/v1/admin/resources/r1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[struct {
		RemovedBookings int `json:"removedBookings"`
	}](t, rec).RemovedBookings)

	rec = s.do(t, http.MethodGet, "/api/v1/resources/r1/bookings?date="+s.date, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/admin/resources", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[struct {
		Resources []json.RawMessage `json:"resources"`
	}](t, rec).Resources, 7)
}

func TestDirectoriesAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Priya Shah")

	rec = s.do(t, http.MethodGet, "/api/v1/desk-slots", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"Half-day Morning"`)

	rec = s.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/v1/desk-slots"`)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", strings.ToLower(middleware.HeaderUserID))

	rec := httptest.NewRecorder()
	s.app.Handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight_UnknownOrigin(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	s.app.Handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFloorplan_SmallBookingKeepsPercent(t *testing.T) {
	s := newTestServer(t)
	tomorrow := domain.StartOfDay(time.Now().UTC()).AddDate(0, 0, 1).Format(domain.DateFormat)

	rec := s.do(t, http.MethodPost, "/api/v1/bookings", "u4",
		`{"resourceId":"r1","date":"`+tomorrow+`","startTime":"06:00","endTime":"06:03"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/floorplan?date="+tomorrow+"&time=10:00", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	for _, r := range decode[floorplanBody](t, rec).Resources {
		if r.ID == "r1" {
			assert.Equal(t, 0.42, r.BookedPercent)
			assert.Equal(t, "#f59e0b", r.BadgeColor)
		}
	}
}
