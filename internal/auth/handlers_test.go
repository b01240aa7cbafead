package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"krushi-backend/internal/domain"
	"krushi-backend/internal/middleware"
	"krushi-backend/internal/pkg/constants"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthApp(t *testing.T) (*fiber.App, *Service, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	cfg := middleware.SessionConfig{RedisURL: "redis://" + mr.Addr()}
	sessionHandler, rdb, err := middleware.Session(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	svc := &Service{DB: db}
	h := &Handlers{Service: svc, Rdb: rdb, Config: cfg}

	app := fiber.New()
	app.Use(sessionHandler)
	app.Post("/register", h.Register)
	app.Post("/login", h.Login)
	app.Get("/me", middleware.RequireAuth(), h.Me)
	app.Delete("/logout", middleware.RequireAuth(), h.Logout)
	return app, svc, rdb
}

func TestRegisterHandler_Created(t *testing.T) {
	app, _, _ := setupAuthApp(t)

	body, _ := json.Marshal(map[string]string{
		"name": "Asha", "email": "a@x.com", "password": "password1", "role": constants.RoleFarmer,
	})
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "success", result["status"])
	data := result["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "a@x.com", user["email"])
	// The hash must never be echoed
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash)
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	app, svc, _ := setupAuthApp(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{
		"name": "Asha Two", "email": "A@X.com", "password": "password2", "role": constants.RoleFarmer,
	})
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	app, svc, _ := setupAuthApp(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{
		"email": "a@x.com", "password": "password1", "role": constants.RoleFarmer,
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var sid string
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			sid = c.Value
		}
	}
	require.NotEmpty(t, sid)

	// Cookie grants access to /me
	meReq := httptest.NewRequest("GET", "/me", nil)
	meReq.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sid})
	meResp, err := app.Test(meReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, meResp.StatusCode)
}

func TestLoginHandler_RoleMismatch(t *testing.T) {
	app, svc, _ := setupAuthApp(t)
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Asha", Email: "a@x.com", Password: "password1", Role: constants.RoleFarmer,
	})
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]string{
		"email": "a@x.com", "password": "password1", "role": constants.RoleSeller,
	})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMeHandler_Unauthenticated(t *testing.T) {
	app, _, _ := setupAuthApp(t)
	req := httptest.NewRequest("GET", "/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
