package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"concertsapi/models"
)

// Open connects to Postgres. TranslateError turns driver unique-violation
// errors into gorm.ErrDuplicatedKey so the repositories can map them.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates the schema. Unique indexes and ON DELETE CASCADE foreign
// keys come from the model tags: deleting a user removes their events and
// attendance, deleting an event removes its attendee rows.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Attendee{},
	)
}
