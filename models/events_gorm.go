package models

import (
	"errors"

	"gorm.io/gorm"
)

type gormEventRepo struct{ db *gorm.DB }

func NewEventRepository(db *gorm.DB) EventRepository { return &gormEventRepo{db} }

func (r *gormEventRepo) Create(e *Event) error {
	return r.db.Create(e).Error
}

func (r *gormEventRepo) GetByID(id int64) (Event, error) {
	var e Event
	if err := r.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, ErrNotFound
		}
		return Event{}, err
	}
	return e, nil
}

func (r *gormEventRepo) ListByOwner(ownerID int64) ([]Event, error) {
	events := []Event{}
	err := r.db.Where("owner_id = ?", ownerID).Order("id").Find(&events).Error
	return events, err
}

func (r *gormEventRepo) GetOwned(ownerID, eventID int64) (Event, error) {
	var e Event
	err := r.db.Where("id = ? AND owner_id = ?", eventID, ownerID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, ErrNotFound
		}
		return Event{}, err
	}
	return e, nil
}

func (r *gormEventRepo) DeleteOwned(ownerID, eventID int64) error {
	res := r.db.Where("id = ? AND owner_id = ?", eventID, ownerID).Delete(&Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
