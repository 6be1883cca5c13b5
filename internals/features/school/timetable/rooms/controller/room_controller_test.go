// file: internals/features/school/timetable/rooms/controller/room_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomRoutes "schoolku_backend/internals/features/school/timetable/rooms/route"
	"schoolku_backend/internals/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := fiber.New()
	api := app.Group("/api")
	roomRoutes.RoomAdminRoutes(api, db, validator.New())
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestRoomCreateAndPatch(t *testing.T) {
	app := newApp(t)
	branchID := uuid.New()

	status, env := do(t, app, http.MethodPost, "/api/rooms/", fiber.Map{
		"room_branch_id":  branchID,
		"room_number":     "R-101",
		"room_name":       "Lab IPA",
		"room_kind":       "lab",
		"room_capacity":   32,
		"room_facilities": []string{"projector", "ac"},
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Room created", env.Message)

	var row map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, "R-101", row["room_number"])
	assert.Equal(t, "lab", row["room_kind"])
	assert.Equal(t, []any{"projector", "ac"}, row["room_facilities"])
	id := row["room_id"].(string)

	t.Run("patch replaces facilities wholesale", func(t *testing.T) {
		status, env := do(t, app, http.MethodPatch, "/api/rooms/"+id, fiber.Map{
			"room_facilities": []string{"whiteboard"},
			"room_capacity":   36,
		})
		require.Equal(t, http.StatusOK, status)
		require.NoError(t, json.Unmarshal(env.Data, &row))
		assert.Equal(t, []any{"whiteboard"}, row["room_facilities"])
		assert.Equal(t, float64(36), row["room_capacity"])
		assert.Equal(t, "R-101", row["room_number"]) // tidak ikut berubah
	})

	t.Run("facilities omitted stays as is", func(t *testing.T) {
		status, env := do(t, app, http.MethodPatch, "/api/rooms/"+id, fiber.Map{
			"room_name": "Lab IPA Terpadu",
		})
		require.Equal(t, http.StatusOK, status)
		require.NoError(t, json.Unmarshal(env.Data, &row))
		assert.Equal(t, []any{"whiteboard"}, row["room_facilities"])
	})

	t.Run("bad kind", func(t *testing.T) {
		status, _ := do(t, app, http.MethodPost, "/api/rooms/", fiber.Map{
			"room_branch_id": branchID,
			"room_number":    "R-102",
			"room_kind":      "gym",
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestRoomListOrdering(t *testing.T) {
	app := newApp(t)
	branchID := uuid.New()

	for _, number := range []string{"R-203", "R-101", "R-115"} {
		status, _ := do(t, app, http.MethodPost, "/api/rooms/", fiber.Map{
			"room_branch_id": branchID,
			"room_number":    number,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := do(t, app, http.MethodGet, "/api/rooms/?branch_id="+branchID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "R-101", rows[0]["room_number"])
	assert.Equal(t, "R-115", rows[1]["room_number"])
	assert.Equal(t, "R-203", rows[2]["room_number"])
}

func TestRoomDeactivateIdempotent(t *testing.T) {
	app := newApp(t)

	status, env := do(t, app, http.MethodPost, "/api/rooms/", fiber.Map{
		"room_branch_id": uuid.New(),
		"room_number":    "R-301",
	})
	require.Equal(t, http.StatusCreated, status)
	var row map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &row))
	id := row["room_id"].(string)

	status, env = do(t, app, http.MethodDelete, "/api/rooms/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Room deactivated", env.Message)

	status, env = do(t, app, http.MethodDelete, "/api/rooms/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Room already inactive", env.Message)
}
