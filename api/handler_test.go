package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/config"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

func newTestApp() *fiber.App {
	handler := NewSchedulerHandlerImpl(&config.SchedulerConfig{Port: 9095})
	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/sjf", handler.ShortestJobFirst)
	v1.Post("/all", handler.AllAlgorithms)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestFirstComeFirstServeHandler(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/fcfs", map[string]any{
		"processes": []map[string]int{
			{"process_id": 1, "arrival_time": 0, "burst_time": 2},
			{"process_id": 2, "arrival_time": 1, "burst_time": 2},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, schedulers.AlgorithmFCFS, response.Algorithm)
	assert.Equal(t, 4, response.TotalTime)
	require.Len(t, response.Details, 2)
	assert.Equal(t, 0, response.Details[0].WaitingTime)
	assert.Equal(t, 1, response.Details[1].WaitingTime)
}

func TestShortestJobFirstHandlerModes(t *testing.T) {
	app := newTestApp()

	body := map[string]any{
		"processes": []map[string]int{
			{"process_id": 1, "arrival_time": 0, "burst_time": 8},
			{"process_id": 2, "arrival_time": 1, "burst_time": 4},
			{"process_id": 3, "arrival_time": 2, "burst_time": 2},
		},
		"mode": 1,
	}
	resp := postJSON(t, app, "/api/v1/sjf", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var nonPreemptive responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&nonPreemptive))
	assert.Equal(t, schedulers.AlgorithmSJF, nonPreemptive.Algorithm)
	assert.InDelta(t, 5.0, nonPreemptive.AverageWaitingTime, 1e-9)

	body["mode"] = 2
	resp = postJSON(t, app, "/api/v1/sjf", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var preemptive responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&preemptive))
	assert.Equal(t, schedulers.AlgorithmSRTF, preemptive.Algorithm)
	require.Len(t, preemptive.Details, 3)
	assert.Equal(t, 4, preemptive.Details[2].CompletionTime)
}

func TestShortestJobFirstHandlerInvalidMode(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/sjf", map[string]any{
		"processes": []map[string]int{{"process_id": 1, "arrival_time": 0, "burst_time": 1}},
		"mode":      3,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlersRejectMalformedBody(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/v1/fcfs", "/api/v1/sjf", "/api/v1/all"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestHandlersRejectEmptyProcessList(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/fcfs", map[string]any{
		"processes": []map[string]int{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllAlgorithmsHandler(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/all", map[string]any{
		"processes": []map[string]int{
			{"process_id": 1, "arrival_time": 0, "burst_time": 8},
			{"process_id": 2, "arrival_time": 1, "burst_time": 4},
			{"process_id": 3, "arrival_time": 2, "burst_time": 2},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results map[string]responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))
	require.Len(t, results, 3)
	assert.Contains(t, results, schedulers.AlgorithmFCFS)
	assert.Contains(t, results, schedulers.AlgorithmSJF)
	assert.Contains(t, results, schedulers.AlgorithmSRTF)

	// every algorithm drains the same total work
	assert.Equal(t, results[schedulers.AlgorithmFCFS].BusyTime,
		results[schedulers.AlgorithmSRTF].BusyTime)
}
