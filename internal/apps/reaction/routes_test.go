package reaction

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chatterhq/chatter-backend/internal/apps/posts"
	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, db *gorm.DB, cfg *config.Config) *fiber.App {
	t.Helper()
	users := services.NewUserService(db)
	app := fiber.New()
	api := app.Group("/api")
	New(NewService(db, users), posts.NewService(db, users)).RegisterRoutes(api, db, cfg)
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

func jsonRequest(method, target, token string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestReactionRoutes(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newTestApp(t, db, cfg)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	post := seedPost(t, db, bob.ID)
	aliceToken := tokenFor(t, cfg, alice)

	target := "/api/reactions/" + post.ID.String()

	t.Run("create requires a login", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, target, "", map[string]string{"symbol": "heart"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("create requires the post to exist", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/reactions/"+uuid.NewString(), aliceToken,
			map[string]string{"symbol": "heart"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("create rejects an unknown symbol", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, target, aliceToken,
			map[string]string{"symbol": "love"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	})

	t.Run("create succeeds and normalizes the symbol", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, target, aliceToken,
			map[string]string{"symbol": "HEART"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		reaction := body["reaction"].(map[string]interface{})
		assert.Equal(t, "heart", reaction["symbol"])
		assert.Equal(t, "alice", reaction["user"])
	})

	t.Run("a second reaction on the same post is refused", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, target, aliceToken,
			map[string]string{"symbol": "like"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("update replaces the symbol", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, target, aliceToken,
			map[string]string{"symbol": "dislike"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		reaction := body["reaction"].(map[string]interface{})
		assert.Equal(t, "dislike", reaction["symbol"])
	})

	t.Run("list by post requires the post to exist", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/reactions?postId="+uuid.NewString(), "", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list by post returns its reactions", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/reactions?postId="+post.ID.String(), "", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, post.ID.String(), list[0]["postId"])
	})

	t.Run("delete then create again succeeds", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodDelete, target, aliceToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(jsonRequest(http.MethodPost, target, aliceToken,
			map[string]string{"symbol": "like"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("update without an own reaction is a 404", func(t *testing.T) {
		bobToken := tokenFor(t, cfg, bob)
		resp, err := app.Test(jsonRequest(http.MethodPut, target, bobToken,
			map[string]string{"symbol": "like"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
