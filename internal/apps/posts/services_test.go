package posts

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &Post{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{ID: uuid.New(), Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestPostService(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, services.NewUserService(db))

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	t.Run("create resolves the author", func(t *testing.T) {
		post, err := svc.Create(alice.ID, "hello world")
		require.NoError(t, err)
		assert.Equal(t, "alice", post.Author.Username)
		assert.Equal(t, "hello world", post.Content)
	})

	t.Run("find by id returns nil when absent", func(t *testing.T) {
		post, err := svc.FindByID(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("update replaces content and re-stamps", func(t *testing.T) {
		list, err := svc.ListByAuthorUsername("alice")
		require.NoError(t, err)
		require.Len(t, list, 1)
		before := list[0].DateModified

		time.Sleep(10 * time.Millisecond)
		updated, err := svc.Update(list[0].ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
		assert.True(t, updated.DateModified.After(before))
	})

	t.Run("list by unknown author is empty", func(t *testing.T) {
		list, err := svc.ListByAuthorUsername("ghost")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("list all sorts by last modified", func(t *testing.T) {
		time.Sleep(10 * time.Millisecond)
		latest, err := svc.Create(bob.ID, "newer")
		require.NoError(t, err)

		list, err := svc.ListAll()
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, latest.ID, list[0].ID)
	})

	t.Run("delete reports whether a row went away", func(t *testing.T) {
		list, err := svc.ListByAuthorUsername("bob")
		require.NoError(t, err)
		require.Len(t, list, 1)

		removed, err := svc.Delete(list[0].ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = svc.Delete(list[0].ID)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("delete all by owner", func(t *testing.T) {
		require.NoError(t, svc.DeleteAllByOwner(alice.ID))
		list, err := svc.ListAll()
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
