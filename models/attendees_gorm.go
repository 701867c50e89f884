package models

import (
	"errors"

	"gorm.io/gorm"
)

type gormAttendeeRepo struct{ db *gorm.DB }

func NewAttendeeRepository(db *gorm.DB) AttendeeRepository { return &gormAttendeeRepo{db} }

// Join inserts the attendance row. No check-then-insert: the unique index on
// (event_id, user_id) decides the winner under concurrent duplicate joins.
func (r *gormAttendeeRepo) Join(userID, eventID int64) error {
	a := Attendee{UserID: userID, EventID: eventID}
	if err := r.db.Create(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *gormAttendeeRepo) Leave(userID, eventID int64) error {
	res := r.db.Where("user_id = ? AND event_id = ?", userID, eventID).Delete(&Attendee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormAttendeeRepo) ListByEvent(eventID int64) ([]EventAttendee, error) {
	attendees := []EventAttendee{}
	err := r.db.Model(&Attendee{}).
		Select("users.id AS user_id, users.username").
		Joins("JOIN users ON users.id = attendees.user_id").
		Where("attendees.event_id = ?", eventID).
		Order("attendees.id").
		Scan(&attendees).Error
	return attendees, err
}
