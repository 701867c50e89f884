package routes_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"concertsapi/db"
	"concertsapi/models"
	"concertsapi/routes"
	"concertsapi/sessions"
)

const testCookie = "eventsid"

// newTestServer wires the full engine against in-memory sqlite and miniredis,
// the same shape main builds.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqldb, err := gdb.DB()
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqldb.Close() })
	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.Migrate(gdb))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := sessions.NewStore(rdb, time.Hour)

	s := gin.New()
	routes.RegisterRoutes(s,
		models.NewUserRepository(gdb),
		models.NewEventRepository(gdb),
		models.NewAttendeeRepository(gdb),
		store, rdb,
		routes.Config{CookieName: testCookie, SessionTTL: time.Hour})
	return s
}

func doReq(s *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	s.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), "body: %s", w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	decode(t, w, &resp)
	return resp.Error
}

type userPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

type eventPayload struct {
	EventID             int64     `json:"event_id"`
	EventName           string    `json:"event_name"`
	VenueName           string    `json:"venue_name"`
	DateTime            time.Time `json:"date_time"`
	Artist              string    `json:"artist"`
	Location            string    `json:"location"`
	SpotifyArtistID     string    `json:"spotify_artist_id"`
	TicketmasterEventID string    `json:"ticketmaster_event_id"`
	Owner               string    `json:"owner"`
}

func signup(t *testing.T, s *gin.Engine, username, email, password string) int64 {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	w := doReq(s, http.MethodPost, "/api/users/create", body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var resp struct {
		Data userPayload `json:"data"`
	}
	decode(t, w, &resp)
	require.NotZero(t, resp.Data.UserID)
	return resp.Data.UserID
}

// login returns the session cookie set by a successful login.
func login(t *testing.T, s *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	w := doReq(s, http.MethodPost, "/api/users/login", body)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func createEvent(t *testing.T, s *gin.Engine, ownerID int64, eventName string) int64 {
	t.Helper()
	body := fmt.Sprintf(`{
		"venue_name":"venue1",
		"event_name":%q,
		"date_time":"2021-10-10T10:00:00Z",
		"artist":"artist1",
		"location":"location1",
		"spotify_artist_id":"sp1",
		"ticketmaster_event_id":"tm1"
	}`, eventName)
	w := doReq(s, http.MethodPost, fmt.Sprintf("/api/users/%d/events/create", ownerID), body)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var resp struct {
		Data eventPayload `json:"data"`
	}
	decode(t, w, &resp)
	require.NotZero(t, resp.Data.EventID)
	return resp.Data.EventID
}
