package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"concertsapi/middlewares"
	"concertsapi/models"
)

type userData struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status,omitempty"`
}

func newUserData(u models.User, status string) userData {
	return userData{UserID: u.ID, Username: u.Username, Email: u.Email, Status: status}
}

// POST /api/users/create
func (d *deps) createUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if taken, err := d.users.UsernameTaken(req.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save user"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}
	if taken, err := d.users.EmailTaken(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save user"})
		return
	} else if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	u := models.User{Username: req.Username, Email: req.Email}
	if err := d.users.Create(&u, req.Password); err != nil {
		// Lost a race against a concurrent create; the unique index caught it.
		if errors.Is(err, models.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": newUserData(u, "")})
}

// POST /api/users/login
func (d *deps) loginUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	user, err := d.users.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not authenticate user"})
		return
	}

	sess, err := d.store.Create(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not establish session"})
		return
	}
	c.SetCookie(d.cfg.CookieName, sess.Token, int(d.cfg.SessionTTL.Seconds()), "/", "", d.cfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"data": newUserData(user, "Logged in")})
}

// POST /api/users/logout (RequireSession guards this route)
func (d *deps) logoutUser(c *gin.Context) {
	sess, ok := middlewares.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := d.users.GetByID(sess.UserID)
	if err != nil {
		// The session points at a user that no longer exists.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := d.store.Destroy(c.Request.Context(), sess.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not destroy session"})
		return
	}
	c.SetCookie(d.cfg.CookieName, "", -1, "/", "", d.cfg.CookieSecure, true)

	c.JSON(http.StatusOK, gin.H{"data": newUserData(user, "Logged out")})
}

// GET /api/users/session
func (d *deps) currentSession(c *gin.Context) {
	sess, ok := middlewares.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No Users Logged in"})
		return
	}

	user, err := d.users.GetByID(sess.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No Users Logged in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newUserData(user, "Logged in")})
}
