package models

import (
	"errors"
	"time"
)

// Sentinel errors the repositories translate store failures into.
// Handlers map these to HTTP statuses at the boundary.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate record")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           int64     `gorm:"primaryKey" json:"user_id"`
	Username     string    `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:320;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type Event struct {
	ID                  int64     `gorm:"primaryKey" json:"event_id"`
	VenueName           string    `gorm:"size:100;not null" json:"venue_name"`
	EventName           string    `gorm:"size:100;not null" json:"event_name"`
	DateTime            time.Time `gorm:"not null" json:"date_time"`
	Artist              string    `gorm:"size:100;not null" json:"artist"`
	Location            string    `gorm:"size:100;not null" json:"location"`
	SpotifyArtistID     string    `gorm:"size:100" json:"spotify_artist_id"`
	TicketmasterEventID string    `gorm:"size:100" json:"ticketmaster_event_id"`
	OwnerID             int64     `gorm:"index;not null" json:"-"`
	Owner               User      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}

// Attendee relates one user to one event. The composite unique index is the
// sole arbiter of duplicate joins; concurrent inserts for the same pair
// cannot both succeed.
type Attendee struct {
	ID        int64     `gorm:"primaryKey"`
	EventID   int64     `gorm:"not null;uniqueIndex:idx_attendees_event_user"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_attendees_event_user"`
	Event     Event     `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// EventAttendee is the projection returned when listing who attends an event.
type EventAttendee struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type UserRepository interface {
	// Create hashes the plaintext password and persists the user,
	// filling in the generated id.
	Create(u *User, password string) error
	GetByID(id int64) (User, error)
	UsernameTaken(username string) (bool, error)
	EmailTaken(email string) (bool, error)
	// ValidateCredentials returns ErrInvalidCredentials for an unknown
	// username and for a wrong password alike.
	ValidateCredentials(username, plain string) (User, error)
}

type EventRepository interface {
	Create(e *Event) error
	GetByID(id int64) (Event, error)
	ListByOwner(ownerID int64) ([]Event, error)
	// GetOwned and DeleteOwned are ownership-scoped: an event that exists
	// under a different owner is ErrNotFound.
	GetOwned(ownerID, eventID int64) (Event, error)
	DeleteOwned(ownerID, eventID int64) error
}

type AttendeeRepository interface {
	Join(userID, eventID int64) error
	Leave(userID, eventID int64) error
	ListByEvent(eventID int64) ([]EventAttendee, error)
}
