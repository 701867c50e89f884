package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"concertsapi/models"
)

type eventData struct {
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

func newEventData(e models.Event, owner string) eventData {
	return eventData{
		EventID:             e.ID,
		EventName:           e.EventName,
		VenueName:           e.VenueName,
		DateTime:            e.DateTime,
		Artist:              e.Artist,
		Location:            e.Location,
		SpotifyArtistID:     e.SpotifyArtistID,
		TicketmasterEventID: e.TicketmasterEventID,
		Owner:               owner,
	}
}

// POST /api/users/:user_id/events/create
func (d *deps) createEvent(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	owner, err := d.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req struct {
		VenueName           string    `json:"venue_name"`
		EventName           string    `json:"event_name"`
		DateTime            time.Time `json:"date_time"`
		Artist              string    `json:"artist"`
		Location            string    `json:"location"`
		SpotifyArtistID     string    `json:"spotify_artist_id"`
		TicketmasterEventID string    `json:"ticketmaster_event_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.VenueName == "" || req.EventName == "" || req.Artist == "" ||
		req.Location == "" || req.DateTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	event := models.Event{
		VenueName:           req.VenueName,
		EventName:           req.EventName,
		DateTime:            req.DateTime,
		Artist:              req.Artist,
		Location:            req.Location,
		SpotifyArtistID:     req.SpotifyArtistID,
		TicketmasterEventID: req.TicketmasterEventID,
		OwnerID:             owner.ID,
	}
	if err := d.events.Create(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": newEventData(event, owner.Username)})
}

// GET /api/users/:user_id/events
func (d *deps) getUserEvents(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	owner, err := d.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	events, err := d.events.ListByOwner(owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch events"})
		return
	}

	list := make([]eventData, 0, len(events))
	for _, e := range events {
		list = append(list, newEventData(e, owner.Username))
	}
	c.JSON(http.StatusOK, gin.H{"events": list})
}

// GET /api/users/:user_id/events/:event_id
func (d *deps) getOneEvent(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	owner, err := d.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	eventID, ok := pathID(c, "event_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	event, err := d.events.GetOwned(owner.ID, eventID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": newEventData(event, owner.Username)})
}

// DELETE /api/users/:user_id/events/:event_id/delete
func (d *deps) deleteEvent(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	owner, err := d.users.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	eventID, ok := pathID(c, "event_id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	if err := d.events.DeleteOwned(owner.ID, eventID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully",
		"data": gin.H{
			"user_id":          owner.ID,
			"username":         owner.Username,
			"deleted_event_id": eventID,
		},
	})
}
