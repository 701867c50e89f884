package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concertsapi/sessions"
)

const sessionContextKey = "session"

// LoadSession resolves the session token (cookie first, then a Bearer header)
// and puts the session into the request context. It never rejects a request:
// handlers that need a session use RequireSession or SessionFrom.
func LoadSession(store *sessions.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c, cookieName)
		if token != "" {
			if sess, err := store.Get(c.Request.Context(), token); err == nil {
				c.Set(sessionContextKey, sess)
			}
		}
		c.Next()
	}
}

// RequireSession aborts with 401 when LoadSession found no active session.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session LoadSession stored, if any.
func SessionFrom(c *gin.Context) (sessions.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return sessions.Session{}, false
	}
	sess, ok := v.(sessions.Session)
	return sess, ok
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
