package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"concertsapi/middlewares"
	"concertsapi/models"
	"concertsapi/sessions"
)

// Config carries the transport-level session settings the handlers need.
type Config struct {
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
}

type deps struct {
	users     models.UserRepository
	events    models.EventRepository
	attendees models.AttendeeRepository
	store     *sessions.Store
	cfg       Config
}

// RegisterRoutes wires the API onto the engine. The URL-supplied user_id is
// the ownership authority for event and attendance endpoints; only logout and
// session introspection consult the session. That mirrors the legacy contract
// and is a known authorization gap.
func RegisterRoutes(
	server *gin.Engine,
	users models.UserRepository,
	events models.EventRepository,
	attendees models.AttendeeRepository,
	store *sessions.Store,
	rdb *redis.Client,
	cfg Config,
) {
	d := &deps{users: users, events: events, attendees: attendees, store: store, cfg: cfg}

	server.HandleMethodNotAllowed = true
	server.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Invalid request method"})
	})

	server.Use(middlewares.LoadSession(store, cfg.CookieName))

	// Daily per-IP usage quota. Degrades open if redis is down.
	server.Use(middlewares.Quota(rdb, middlewares.QuotaRule{
		Limit:  5000,
		Window: 24 * time.Hour,
		KeyFn: func(c *gin.Context) string {
			return fmt.Sprintf("quota:ip:%s:day", c.ClientIP())
		},
	}))

	// Tighter limit on the credential endpoints.
	authLimiter := middlewares.NewRateLimiter(middlewares.LimiterConfig{
		RPS:     5,
		Burst:   20,
		IdleTTL: 10 * time.Minute,
	})

	api := server.Group("/api")

	api.POST("/users/create",
		authLimiter.Middleware(func(c *gin.Context) string { return "signup:" + c.ClientIP() }),
		d.createUser,
	)
	api.POST("/users/login",
		authLimiter.Middleware(func(c *gin.Context) string { return "login:" + c.ClientIP() }),
		d.loginUser,
	)
	api.POST("/users/logout", middlewares.RequireSession(), d.logoutUser)
	api.GET("/users/session", d.currentSession)

	api.POST("/users/:user_id/events/create", d.createEvent)
	api.GET("/users/:user_id/events", d.getUserEvents)
	api.GET("/users/:user_id/events/:event_id", d.getOneEvent)
	api.DELETE("/users/:user_id/events/:event_id/delete", d.deleteEvent)

	api.POST("/users/:user_id/events/:event_id/join", d.joinEvent)
	api.POST("/users/:user_id/events/:event_id/leave", d.leaveEvent)
	api.GET("/events/:event_id/attendees", d.listAttendees)
}

// pathID parses an integer path parameter. A non-numeric id can never match
// a record, so callers treat a false return as not found.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
