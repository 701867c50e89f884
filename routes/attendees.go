package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"concertsapi/models"
)

// POST /api/users/:user_id/events/:event_id/join
func (d *deps) joinEvent(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user, err := d.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	eventID, ok := pathID(c, "event_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	event, err := d.events.GetByID(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := d.attendees.Join(user.ID, event.ID); err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is already attending this event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not join event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"user_id":  user.ID,
		"event_id": event.ID,
		"username": user.Username,
	}})
}

// POST /api/users/:user_id/events/:event_id/leave
func (d *deps) leaveEvent(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user, err := d.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	eventID, ok := pathID(c, "event_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	event, err := d.events.GetByID(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if err := d.attendees.Leave(user.ID, event.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User is not attending this event"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not leave event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User has left the event"})
}

// GET /api/events/:event_id/attendees
func (d *deps) listAttendees(c *gin.Context) {
	eventID, ok := pathID(c, "event_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	event, err := d.events.GetByID(eventID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	attendees, err := d.attendees.ListByEvent(event.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch attendees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attendees": attendees})
}
