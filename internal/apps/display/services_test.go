package display

import (
	"testing"
	"time"

	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &Display{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{ID: uuid.New(), Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestDisplayService(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, services.NewUserService(db))

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	t.Run("create uses default type and resolves owner", func(t *testing.T) {
		d, err := svc.Create(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, TypeDefault, d.DisplayType)
		assert.Equal(t, "alice", d.Author.Username)
		assert.False(t, d.DateModified.IsZero())
	})

	t.Run("find by author username is case-insensitive", func(t *testing.T) {
		d, err := svc.FindByAuthorUsername("ALICE")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, alice.ID, d.AuthorID)
	})

	t.Run("find by unknown username returns nil", func(t *testing.T) {
		d, err := svc.FindByAuthorUsername("ghost")
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("find for user without display returns nil", func(t *testing.T) {
		d, err := svc.FindByAuthorUsername("bob")
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("update lower-cases the type and re-stamps", func(t *testing.T) {
		existing, err := svc.FindByAuthorUsername("alice")
		require.NoError(t, err)
		before := existing.DateModified

		time.Sleep(10 * time.Millisecond)
		updated, err := svc.UpdateType(existing.ID, "DARK")
		require.NoError(t, err)
		assert.Equal(t, "dark", updated.DisplayType)
		assert.True(t, updated.DateModified.After(before))
	})

	t.Run("list all sorts by last modified", func(t *testing.T) {
		time.Sleep(10 * time.Millisecond)
		_, err := svc.Create(bob.ID)
		require.NoError(t, err)

		list, err := svc.ListAll()
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, bob.ID, list[0].AuthorID)
		assert.Equal(t, alice.ID, list[1].AuthorID)
	})

	t.Run("delete all by owner leaves other owners alone", func(t *testing.T) {
		require.NoError(t, svc.DeleteAllByOwner(alice.ID))

		gone, err := svc.FindByAuthorUsername("alice")
		require.NoError(t, err)
		assert.Nil(t, gone)

		kept, err := svc.FindByAuthorUsername("bob")
		require.NoError(t, err)
		assert.NotNil(t, kept)
	})
}

func TestValidType(t *testing.T) {
	for _, ok := range []string{"default", "dark", "accessible"} {
		assert.True(t, ValidType(ok), ok)
	}
	for _, bad := range []string{"", "light", "DARK", "solarized"} {
		assert.False(t, ValidType(bad), bad)
	}
}
