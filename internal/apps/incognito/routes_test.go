package incognito

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, db *gorm.DB, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	api := app.Group("/api")
	New(NewService(db)).RegisterRoutes(api, db, cfg)
	return app
}

func tokenFor(t *testing.T, cfg *config.Config, u *models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      u.ID.String(),
		"username": u.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func request(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestIncognitoRoutes(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newTestApp(t, db, cfg)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	aliceToken := tokenFor(t, cfg, alice)
	bobToken := tokenFor(t, cfg, bob)

	t.Run("listing requires a login", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodGet, "/api/incognitos", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("delete with no open sessions is a 404", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodDelete, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	var first string
	t.Run("create returns the session with the owner's username", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodPost, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		session := body["incognito"].(map[string]interface{})
		assert.Equal(t, "alice", session["userId"])
		first = session["_id"].(string)
	})

	t.Run("owner sees only their sessions", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodPost, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = app.Test(request(http.MethodGet, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Len(t, list, 2)
	})

	t.Run("delete by id rejects a foreign owner", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodPost, "/api/incognitos", bobToken))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, err = app.Test(request(http.MethodDelete, "/api/incognitos?id="+first, bobToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("delete by unknown id is a 404", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodDelete, "/api/incognitos?id="+uuid.NewString(), aliceToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete by id removes just that session", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodDelete, "/api/incognitos?id="+first, aliceToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(request(http.MethodGet, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Len(t, list, 1)
	})

	t.Run("bulk delete clears the rest", func(t *testing.T) {
		resp, err := app.Test(request(http.MethodDelete, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(request(http.MethodGet, "/api/incognitos", aliceToken))
		require.NoError(t, err)
		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		assert.Empty(t, list)
	})
}
