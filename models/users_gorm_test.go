package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"concertsapi/models"
	"concertsapi/utils"
)

func TestUserCreateAndGet(t *testing.T) {
	gdb := newTestDB(t)
	repo := models.NewUserRepository(gdb)

	u := createTestUser(t, repo, "alice", "a@x.com")

	got, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "a@x.com", got.Email)
	// The digest is stored, never the plaintext.
	require.NotEqual(t, "testpass", got.PasswordHash)
	require.True(t, utils.CheckPasswordHash("testpass", got.PasswordHash))
}

func TestUserCreateDuplicate(t *testing.T) {
	gdb := newTestDB(t)
	repo := models.NewUserRepository(gdb)

	createTestUser(t, repo, "alice", "a@x.com")

	dup := models.User{Username: "alice", Email: "other@x.com"}
	err := repo.Create(&dup, "pw")
	require.ErrorIs(t, err, models.ErrDuplicate)

	dup = models.User{Username: "bob", Email: "a@x.com"}
	err = repo.Create(&dup, "pw")
	require.ErrorIs(t, err, models.ErrDuplicate)
}

func TestUserTakenChecks(t *testing.T) {
	gdb := newTestDB(t)
	repo := models.NewUserRepository(gdb)

	createTestUser(t, repo, "alice", "a@x.com")

	taken, err := repo.UsernameTaken("alice")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.UsernameTaken("bob")
	require.NoError(t, err)
	require.False(t, taken)

	taken, err = repo.EmailTaken("a@x.com")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = repo.EmailTaken("b@x.com")
	require.NoError(t, err)
	require.False(t, taken)
}

func TestValidateCredentials(t *testing.T) {
	gdb := newTestDB(t)
	repo := models.NewUserRepository(gdb)

	u := createTestUser(t, repo, "alice", "a@x.com")

	got, err := repo.ValidateCredentials("alice", "testpass")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = repo.ValidateCredentials("alice", "wrong")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	// Unknown username reports the same error as a wrong password.
	_, err = repo.ValidateCredentials("nobody", "testpass")
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUserGetByIDMissing(t *testing.T) {
	gdb := newTestDB(t)
	repo := models.NewUserRepository(gdb)

	_, err := repo.GetByID(42)
	require.ErrorIs(t, err, models.ErrNotFound)
}
