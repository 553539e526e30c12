package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitlog-app/fitlog/internal/tracker"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock pins "now" for deterministic default dates.
var testClock = tracker.FixedClock{Time: time.Date(2024, 3, 7, 16, 45, 0, 0, time.UTC)}

// newTestApp wires the API routes against in-memory stores.
func newTestApp() (*fiber.App, *tracker.MockUserStore, *tracker.MockExerciseStore) {
	users := tracker.NewMockUserStore()
	exercises := tracker.NewMockExerciseStore()

	userHandler := NewUserHandler(users)
	exerciseHandler := NewExerciseHandler(users, exercises, testClock)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users", userHandler.ListUsers)
	api.Post("/users/:id/exercises", exerciseHandler.AddExercise)
	api.Get("/users/:id/logs", exerciseHandler.GetLogs)

	return app, users, exercises
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateUser(t *testing.T) {
	app, _, _ := newTestApp()

	resp, body := doJSON(t, app, "POST", "/api/users", `{"username":"alice"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["username"])
	assert.NotEmpty(t, body["id"])
}

func TestCreateUser_TrimsUsername(t *testing.T) {
	app, _, _ := newTestApp()

	resp, body := doJSON(t, app, "POST", "/api/users", `{"username":"  alice  "}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body["username"])
}

func TestCreateUser_MissingUsername(t *testing.T) {
	app, _, _ := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: `{}`},
		{name: "empty username", body: `{"username":""}`},
		{name: "whitespace username", body: `{"username":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, "POST", "/api/users", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "username required", body["error"])
		})
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	app, _, _ := newTestApp()

	resp, _ := doJSON(t, app, "POST", "/api/users", `{"username":"alice"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, "POST", "/api/users", `{"username":"alice"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "username already exists", body["error"])
}

func TestCreateUser_CaseSensitiveUsernames(t *testing.T) {
	app, _, _ := newTestApp()

	resp, _ := doJSON(t, app, "POST", "/api/users", `{"username":"alice"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Stored case-sensitively, so a different casing is a different user.
	resp, _ = doJSON(t, app, "POST", "/api/users", `{"username":"Alice"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListUsers_Empty(t *testing.T) {
	app, _, _ := newTestApp()

	req := httptest.NewRequest("GET", "/api/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &users))
	assert.Empty(t, users)
}

func TestListUsers(t *testing.T) {
	app, _, _ := newTestApp()

	for _, name := range []string{"alice", "bob"} {
		resp, _ := doJSON(t, app, "POST", "/api/users", `{"username":"`+name+`"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0]["username"])
	assert.Equal(t, "bob", users[1]["username"])
	assert.NotEmpty(t, users[0]["id"])
}
