// file: internals/features/school/timetable/working_days/controller/working_days_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wdRoutes "schoolku_backend/internals/features/school/timetable/working_days/route"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/testutil"
)

type envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Data       json.RawMessage    `json:"data"`
	Pagination *helper.Pagination `json:"pagination"`
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.OpenTestDB(t)
	app := fiber.New()
	api := app.Group("/api")
	wdRoutes.WorkingDaysRoutes(api, db, validator.New())
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

func TestWorkingDaysCalculate(t *testing.T) {
	app := newApp(t)
	branchID := uuid.New()

	calc := func(branch, start, end string) (int, envelope) {
		return do(t, app, http.MethodGet,
			fmt.Sprintf("/api/working-days/calculate?branch_id=%s&start=%s&end=%s", branch, start, end), nil)
	}

	t.Run("counts weekdays inclusive", func(t *testing.T) {
		// Senin 5 Jan s.d. Minggu 11 Jan 2026
		status, env := calc(branchID.String(), "2026-01-05", "2026-01-11")
		require.Equal(t, http.StatusOK, status)
		var out map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &out))
		assert.Equal(t, float64(5), out["working_days"])
	})

	t.Run("branch_id validated before anything else", func(t *testing.T) {
		status, env := calc("", "2026-01-05", "2026-01-11")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "branch_id is required", env.Message)
	})

	t.Run("bad date format", func(t *testing.T) {
		status, _ := calc(branchID.String(), "05-01-2026", "2026-01-11")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("end before start", func(t *testing.T) {
		status, env := calc(branchID.String(), "2026-01-11", "2026-01-05")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "end must not be before start", env.Message)
	})
}

func upsertBody(branchID uuid.UUID, yearID *uuid.UUID, totalDays int) fiber.Map {
	body := fiber.Map{
		"working_days_config_branch_id":  branchID,
		"working_days_config_total_days": totalDays,
		"working_days_config_start_date": "2026-01-05",
		"working_days_config_end_date":   "2026-06-30",
	}
	if yearID != nil {
		body["working_days_config_academic_year_id"] = *yearID
	}
	return body
}

func TestWorkingDaysConfigUpsert(t *testing.T) {
	app := newApp(t)
	branchID := uuid.New()
	yearID := uuid.New()

	// pertama: create
	status, env := do(t, app, http.MethodPut, "/api/working-days/config", upsertBody(branchID, &yearID, 120))
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Working days config created", env.Message)

	var row map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &row))
	firstID := row["working_days_config_id"].(string)
	assert.Equal(t, float64(120), row["working_days_config_total_days"])

	// kedua, natural key sama: update in place, bukan baris baru
	status, env = do(t, app, http.MethodPut, "/api/working-days/config", upsertBody(branchID, &yearID, 118))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Working days config updated", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, firstID, row["working_days_config_id"])
	assert.Equal(t, float64(118), row["working_days_config_total_days"])

	// year NULL = natural key berbeda → baris baru
	status, env = do(t, app, http.MethodPut, "/api/working-days/config", upsertBody(branchID, nil, 90))
	require.Equal(t, http.StatusCreated, status)
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.NotEqual(t, firstID, row["working_days_config_id"])

	t.Run("list per branch", func(t *testing.T) {
		status, env := do(t, app, http.MethodGet, "/api/working-days/configs?branch_id="+branchID.String(), nil)
		require.Equal(t, http.StatusOK, status)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 2)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, int64(2), env.Pagination.Total)
	})

	t.Run("get by natural key", func(t *testing.T) {
		path := fmt.Sprintf("/api/working-days/config?branch_id=%s&academic_year_id=%s", branchID, yearID)
		status, env := do(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status)
		var got map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, firstID, got["working_days_config_id"])
		assert.Equal(t, "2026-01-05", got["working_days_config_start_date"])
	})

	t.Run("get unknown natural key", func(t *testing.T) {
		path := fmt.Sprintf("/api/working-days/config?branch_id=%s&academic_year_id=%s", branchID, uuid.New())
		status, _ := do(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("total days required", func(t *testing.T) {
		body := upsertBody(branchID, &yearID, 0)
		delete(body, "working_days_config_total_days")
		status, _ := do(t, app, http.MethodPut, "/api/working-days/config", body)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		body := upsertBody(branchID, &yearID, 10)
		body["working_days_config_end_date"] = "2025-12-01"
		status, env := do(t, app, http.MethodPut, "/api/working-days/config", body)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "end must not be before start", env.Message)
	})
}

func TestWorkingDaysConfigDelete(t *testing.T) {
	app := newApp(t)
	branchID := uuid.New()

	status, env := do(t, app, http.MethodPut, "/api/working-days/config", upsertBody(branchID, nil, 100))
	require.Equal(t, http.StatusCreated, status)
	var row map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &row))
	id := row["working_days_config_id"].(string)

	status, env = do(t, app, http.MethodDelete, "/api/working-days/config/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Working days config deleted", env.Message)

	// hard delete: get by natural key sudah kosong
	status, _ = do(t, app, http.MethodGet, "/api/working-days/config?branch_id="+branchID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	t.Run("unknown id", func(t *testing.T) {
		status, _ := do(t, app, http.MethodDelete, "/api/working-days/config/"+uuid.NewString(), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
