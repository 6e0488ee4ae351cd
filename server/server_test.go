package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
	"github.com/promptly-social/activity-analyzer/pkg/llm"
	"github.com/promptly-social/activity-analyzer/server/mocks"
)

func testServer(t *testing.T, runner *mocks.RunnerMock, tracking *mocks.TrackingMock) *httptest.Server {
	t.Helper()

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	health := &mocks.HealthMock{
		StatusAllFunc: func() map[string]llm.ProviderHealth {
			return map[string]llm.ProviderHealth{"openai": {Status: llm.StatusHealthy}}
		},
	}
	if runner == nil {
		runner = &mocks.RunnerMock{}
	}
	if runner.MetricsFunc == nil {
		runner.MetricsFunc = func() domain.BatchMetrics { return domain.BatchMetrics{BatchSize: 50} }
	}
	if tracking == nil {
		tracking = &mocks.TrackingMock{}
	}

	srv := New(cfg, runner, tracking, health, "test", false)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func successfulRun() *domain.BatchAnalysisResult {
	start := time.Now().Add(-2 * time.Second)
	res := &domain.BatchAnalysisResult{
		TotalUsers:   10,
		Successful:   7,
		Failed:       1,
		Skipped:      1,
		TimedOut:     1,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Second),
		ErrorSummary: map[string]int{"ai_service_error": 1, "timeout_error": 1},
	}
	for i := 0; i < 10; i++ {
		res.Results = append(res.Results, domain.UserAnalysisResult{UserID: fmt.Sprintf("u%d", i)})
	}
	return res
}

func TestServer_RunAnalysis(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (*domain.BatchAnalysisResult, error) { return successfulRun(), nil },
	}
	ts := testServer(t, runner, nil)

	resp, err := http.Post(ts.URL+"/api/v1/analysis/run", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	var body struct {
		Success   bool      `json:"success"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
		Summary   struct {
			TotalUsersProcessed        int            `json:"total_users_processed"`
			SuccessfulAnalyses         int            `json:"successful_analyses"`
			FailedAnalyses             int            `json:"failed_analyses"`
			SkippedAnalyses            int            `json:"skipped_analyses"`
			TotalProcessingTimeSeconds float64        `json:"total_processing_time_seconds"`
			StartTime                  time.Time      `json:"start_time"`
			EndTime                    time.Time      `json:"end_time"`
			ErrorSummary               map[string]int `json:"error_summary"`
			UserResultsCount           int            `json:"user_results_count"`
		} `json:"analysis_summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "user analysis completed", body.Message)
	assert.False(t, body.Timestamp.IsZero())
	assert.Equal(t, 10, body.Summary.TotalUsersProcessed)
	assert.Equal(t, 7, body.Summary.SuccessfulAnalyses)
	assert.Equal(t, 1, body.Summary.FailedAnalyses)
	assert.Equal(t, 1, body.Summary.SkippedAnalyses)
	assert.InDelta(t, 2.0, body.Summary.TotalProcessingTimeSeconds, 0.1)
	assert.False(t, body.Summary.StartTime.IsZero())
	assert.False(t, body.Summary.EndTime.IsZero())
	assert.Equal(t, 1, body.Summary.ErrorSummary["ai_service_error"])
	assert.Equal(t, 1, body.Summary.ErrorSummary["timeout_error"])
	assert.Equal(t, 10, body.Summary.UserResultsCount)
	assert.Len(t, runner.RunCalls(), 1)
}

func TestServer_RunAnalysisForUsers(t *testing.T) {
	runner := &mocks.RunnerMock{
		RunForUsersFunc: func(ctx context.Context, userIDs []string) (*domain.BatchAnalysisResult, error) {
			return successfulRun(), nil
		},
	}
	ts := testServer(t, runner, nil)

	resp, err := http.Post(ts.URL+"/api/v1/analysis/run", "application/json",
		strings.NewReader(`{"user_ids": ["u1", "u2"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, runner.RunForUsersCalls(), 1)
	assert.Equal(t, []string{"u1", "u2"}, runner.RunForUsersCalls()[0].UserIDs)
}

func TestServer_RunAnalysisValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"user_ids": [`},
		{"empty user id", `{"user_ids": [""]}`},
		{"wrong type", `{"user_ids": "u1"}`},
		{"negative threshold", `{"post_threshold": -1, "message_threshold": 10}`},
		{"zero threshold", `{"post_threshold": 5, "message_threshold": 0}`},
		{"zero batch timeout", `{"batch_timeout_minutes": 0}`},
		{"negative user cap", `{"max_users_per_batch": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.RunnerMock{
				RunFunc: func(ctx context.Context) (*domain.BatchAnalysisResult, error) {
					t.Fatal("run must not be reached on invalid input")
					return nil, nil
				},
			}
			ts := testServer(t, runner, nil)

			resp, err := http.Post(ts.URL+"/api/v1/analysis/run", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "validation_error", body["error_type"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestServer_RunAnalysisOverrides(t *testing.T) {
	runner := &mocks.RunnerMock{
		SetThresholdsFunc: func(post, msg int) error { return nil },
		SetRunLimitsFunc:  func(timeoutMinutes, maxUsers int) error { return nil },
		RunFunc:           func(ctx context.Context) (*domain.BatchAnalysisResult, error) { return successfulRun(), nil },
	}
	ts := testServer(t, runner, nil)

	resp, err := http.Post(ts.URL+"/api/v1/analysis/run", "application/json",
		strings.NewReader(`{"post_threshold": 3, "message_threshold": 7, "batch_timeout_minutes": 30, "max_users_per_batch": 25}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, runner.SetThresholdsCalls(), 1)
	assert.Equal(t, 3, runner.SetThresholdsCalls()[0].PostThreshold)
	assert.Equal(t, 7, runner.SetThresholdsCalls()[0].MessageThreshold)
	require.Len(t, runner.SetRunLimitsCalls(), 1)
	assert.Equal(t, 30, runner.SetRunLimitsCalls()[0].TimeoutMinutes)
	assert.Equal(t, 25, runner.SetRunLimitsCalls()[0].MaxUsers)
}

func TestServer_RunAnalysisPartialThresholdOverride(t *testing.T) {
	runner := &mocks.RunnerMock{
		SetThresholdsFunc: func(post, msg int) error { return nil },
		RunFunc:           func(ctx context.Context) (*domain.BatchAnalysisResult, error) { return successfulRun(), nil },
	}
	ts := testServer(t, runner, nil)

	resp, err := http.Post(ts.URL+"/api/v1/analysis/run", "application/json",
		strings.NewReader(`{"post_threshold": 3}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, runner.SetThresholdsCalls(), 1)
	assert.Equal(t, 3, runner.SetThresholdsCalls()[0].PostThreshold)
	assert.Equal(t, 0, runner.SetThresholdsCalls()[0].MessageThreshold, "absent threshold passes zero, meaning keep current")
}

func TestServer_RunAnalysisErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"deadline", context.DeadlineExceeded, http.StatusRequestTimeout, "timeout_error"},
		{"run timed out", errors.New("analysis run timed out"), http.StatusRequestTimeout, "timeout_error"},
		{"config", errors.New("config not loaded"), http.StatusInternalServerError, "config_error"},
		{"database", errors.New("select users for analysis: database is locked"), http.StatusInternalServerError, "database_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mocks.RunnerMock{
				RunFunc: func(ctx context.Context) (*domain.BatchAnalysisResult, error) { return nil, tt.err },
			}
			ts := testServer(t, runner, nil)

			resp, err := http.Post(ts.URL+"/api/v1/analysis/run", "application/json", nil)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantType, body["error_type"])
		})
	}
}

func TestServer_Preflight(t *testing.T) {
	ts := testServer(t, nil, nil)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/v1/analysis/run", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestServer_Tracking(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	tracking := &mocks.TrackingMock{
		GetTrackingFunc: func(ctx context.Context, userID string) (*domain.TrackingRecord, error) {
			if userID != "u1" {
				return nil, nil
			}
			return &domain.TrackingRecord{
				UserID:         "u1",
				LastAnalysisAt: &now,
				Scope:          domain.AnalysisScope{Version: 1, AnalysisTypes: []domain.AnalysisType{domain.AnalysisWritingStyle}},
				UpdatedAt:      now,
			}, nil
		},
	}
	ts := testServer(t, nil, tracking)

	resp, err := http.Get(ts.URL + "/api/v1/analysis/tracking/u1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body trackingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u1", body.UserID)
	require.NotNil(t, body.Scope)
	assert.Equal(t, 1, body.Scope.Version)

	// unknown user
	resp2, err := http.Get(ts.URL + "/api/v1/analysis/tracking/nobody")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestServer_Recover(t *testing.T) {
	runner := &mocks.RunnerMock{
		RecoverInterruptedFunc: func(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error) {
			return &domain.RecoveryResult{Detected: 3, Recovered: 3}, nil
		},
	}
	ts := testServer(t, runner, nil)

	resp, err := http.Post(ts.URL+"/api/v1/analysis/recover", "application/json",
		strings.NewReader(`{"timeout_minutes": 30, "max_recoveries": 10}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, runner.RecoverInterruptedCalls(), 1)
	assert.Equal(t, 30, runner.RecoverInterruptedCalls()[0].TimeoutMinutes)

	var body domain.RecoveryResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Detected)

	// invalid body
	resp2, err := http.Post(ts.URL+"/api/v1/analysis/recover", "application/json",
		strings.NewReader(`{"timeout_minutes": -1, "max_recoveries": 10}`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestServer_Status(t *testing.T) {
	ts := testServer(t, nil, nil)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
	assert.Contains(t, body, "providers")
	assert.Contains(t, body, "batch")
}

func TestServer_Validate(t *testing.T) {
	runner := &mocks.RunnerMock{
		ValidateUserStateFunc: func(ctx context.Context, userID string) (*domain.StateValidation, error) {
			return &domain.StateValidation{IsValid: false, Issues: []string{"scope status is in_progress but no recent update"}}, nil
		},
	}
	ts := testServer(t, runner, nil)

	resp, err := http.Get(ts.URL + "/api/v1/analysis/tracking/u1/validate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.StateValidation
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.IsValid)
	assert.Len(t, body.Issues, 1)
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, nil, nil)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
