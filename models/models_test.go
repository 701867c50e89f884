package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"concertsapi/db"
	"concertsapi/models"
)

// newTestDB opens an in-memory sqlite store with the real schema. One open
// conn, or each pooled conn would get its own empty :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return gdb
}

func createTestUser(t *testing.T, repo models.UserRepository, username, email string) models.User {
	t.Helper()
	u := models.User{Username: username, Email: email}
	require.NoError(t, repo.Create(&u, "testpass"))
	require.NotZero(t, u.ID)
	return u
}

func createTestEvent(t *testing.T, repo models.EventRepository, ownerID int64, name string) models.Event {
	t.Helper()
	e := models.Event{
		VenueName: "venue",
		EventName: name,
		DateTime:  time.Date(2021, 10, 10, 10, 0, 0, 0, time.UTC),
		Artist:    "artist",
		Location:  "location",
		OwnerID:   ownerID,
	}
	require.NoError(t, repo.Create(&e))
	require.NotZero(t, e.ID)
	return e
}
