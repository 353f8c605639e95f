package profile

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chatterhq/chatter-backend/internal/config"
	"github.com/chatterhq/chatter-backend/internal/models"
	"github.com/chatterhq/chatter-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T, db *gorm.DB, cfg *config.Config) *fiber.App {
	t.Helper()
	app := fiber.New()
	api := app.Group("/api")
	New(NewService(db, services.NewUserService(db))).RegisterRoutes(api, db, cfg)
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

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestProfileRoutes(t *testing.T) {
	db := newTestDB(t)
	cfg := &config.Config{JWTSecret: "test-secret"}
	app := newTestApp(t, db, cfg)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	aliceToken := tokenFor(t, cfg, alice)
	bobToken := tokenFor(t, cfg, bob)

	t.Run("create requires a login", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/profiles", "",
			map[string]string{"handle": "traderjoe", "type": "business"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("create rejects an unknown type", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/profiles", aliceToken,
			map[string]string{"handle": "traderjoe", "type": "corporate"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	})

	t.Run("create succeeds and normalizes the type", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/profiles", aliceToken,
			map[string]string{"handle": "traderjoe", "type": "Business", "bio": "I trade things"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		profile := body["profile"].(map[string]interface{})
		assert.Equal(t, "traderjoe", profile["handle"])
		assert.Equal(t, "business", profile["type"])
		assert.Equal(t, "alice", profile["userId"])
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profiles/traderjoe", bobToken,
			map[string]string{"handle": "stolen", "bio": ""}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("blank replacement handle is rejected", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profiles/traderjoe", aliceToken,
			map[string]string{"handle": "   ", "bio": "x"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("owner updates handle and bio, addressed case-insensitively", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profiles/TRADERJOE", aliceToken,
			map[string]string{"handle": "joe_trades", "bio": "new bio"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		profile := body["profile"].(map[string]interface{})
		assert.Equal(t, "joe_trades", profile["handle"])
		assert.Equal(t, "new bio", profile["bio"])
	})

	t.Run("update of a missing handle is a 404", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/profiles/traderjoe", aliceToken,
			map[string]string{"handle": "whatever", "bio": ""}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list by user requires the user to exist", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/profiles?user=ghost", "", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list by user returns their profiles", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/profiles?user=alice", "", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "joe_trades", list[0]["handle"])
	})

	t.Run("delete by a non-owner is refused", func(t *testing.T) {
		p, err := NewService(db, services.NewUserService(db)).FindByHandle("joe_trades")
		require.NoError(t, err)

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/profiles/"+p.ID.String(), bobToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, err = app.Test(jsonRequest(http.MethodDelete, "/api/profiles/"+p.ID.String(), aliceToken, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
