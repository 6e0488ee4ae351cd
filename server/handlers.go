package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// runRequest is the optional body of the run trigger. An empty body runs
// the full candidate selection with configured thresholds.
type runRequest struct {
	UserIDs             []string `json:"user_ids,omitempty"`
	PostThreshold       *int     `json:"post_threshold,omitempty"`
	MessageThreshold    *int     `json:"message_threshold,omitempty"`
	BatchTimeoutMinutes *int     `json:"batch_timeout_minutes,omitempty"`
	MaxUsersPerBatch    *int     `json:"max_users_per_batch,omitempty"`
}

// validate checks the request fields, returning the first problem found
func (r *runRequest) validate() error {
	for i, id := range r.UserIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("user_ids[%d] must be a non-empty string", i)
		}
	}
	positive := map[string]*int{
		"post_threshold":        r.PostThreshold,
		"message_threshold":     r.MessageThreshold,
		"batch_timeout_minutes": r.BatchTimeoutMinutes,
		"max_users_per_batch":   r.MaxUsersPerBatch,
	}
	for _, field := range []string{"post_threshold", "message_threshold", "batch_timeout_minutes", "max_users_per_batch"} {
		if v := positive[field]; v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", field, *v)
		}
	}
	return nil
}

// intOrZero unwraps an optional override, zero meaning "keep current"
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// runSummary is the wire shape of a completed run
type runSummary struct {
	TotalUsersProcessed        int            `json:"total_users_processed"`
	SuccessfulAnalyses         int            `json:"successful_analyses"`
	FailedAnalyses             int            `json:"failed_analyses"`
	SkippedAnalyses            int            `json:"skipped_analyses"`
	TotalProcessingTimeSeconds float64        `json:"total_processing_time_seconds"`
	StartTime                  time.Time      `json:"start_time"`
	EndTime                    time.Time      `json:"end_time"`
	ErrorSummary               map[string]int `json:"error_summary"`
	UserResultsCount           int            `json:"user_results_count"`
}

func summarize(res *domain.BatchAnalysisResult) runSummary {
	return runSummary{
		TotalUsersProcessed:        res.TotalUsers,
		SuccessfulAnalyses:         res.Successful,
		FailedAnalyses:             res.Failed,
		SkippedAnalyses:            res.Skipped,
		TotalProcessingTimeSeconds: res.Duration().Seconds(),
		StartTime:                  res.StartTime,
		EndTime:                    res.EndTime,
		ErrorSummary:               res.ErrorSummary,
		UserResultsCount:           len(res.Results),
	}
}

// runAnalysisHandler triggers an analysis run, optionally restricted to
// specific users or with overridden thresholds
func (s *Server) runAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		RenderError(w, r, fmt.Errorf("read request body: %w", err), "validation_error", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			RenderError(w, r, fmt.Errorf("parse request body: %w", err), "validation_error", http.StatusBadRequest)
			return
		}
	}
	if err := req.validate(); err != nil {
		RenderError(w, r, err, "validation_error", http.StatusBadRequest)
		return
	}

	if req.PostThreshold != nil || req.MessageThreshold != nil {
		if err := s.runner.SetThresholds(intOrZero(req.PostThreshold), intOrZero(req.MessageThreshold)); err != nil {
			RenderError(w, r, err, "validation_error", http.StatusBadRequest)
			return
		}
	}
	if req.BatchTimeoutMinutes != nil || req.MaxUsersPerBatch != nil {
		if err := s.runner.SetRunLimits(intOrZero(req.BatchTimeoutMinutes), intOrZero(req.MaxUsersPerBatch)); err != nil {
			RenderError(w, r, err, "validation_error", http.StatusBadRequest)
			return
		}
	}

	var res *domain.BatchAnalysisResult
	if len(req.UserIDs) > 0 {
		res, err = s.runner.RunForUsers(r.Context(), req.UserIDs)
	} else {
		res, err = s.runner.Run(r.Context())
	}
	if err != nil {
		lgr.Printf("[ERROR] analysis run failed: %v", err)
		s.renderRunError(w, r, err)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":          true,
		"message":          "user analysis completed",
		"analysis_summary": summarize(res),
		"timestamp":        time.Now().UTC(),
	})
}

// renderRunError maps a run failure to the proper status and error type
func (s *Server) renderRunError(w http.ResponseWriter, r *http.Request, err error) {
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, "deadline") || strings.Contains(msg, "timed out"):
		RenderError(w, r, err, "timeout_error", http.StatusRequestTimeout)
	case strings.Contains(msg, "config"):
		RenderError(w, r, err, "config_error", http.StatusInternalServerError)
	default:
		RenderError(w, r, err, "database_error", http.StatusInternalServerError)
	}
}

// recoverRequest is the body of the recovery trigger
type recoverRequest struct {
	TimeoutMinutes int `json:"timeout_minutes"`
	MaxRecoveries  int `json:"max_recoveries"`
}

// recoverHandler resets tracking records stuck in progress
func (s *Server) recoverHandler(w http.ResponseWriter, r *http.Request) {
	req := recoverRequest{TimeoutMinutes: 60, MaxRecoveries: 50}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		RenderError(w, r, fmt.Errorf("read request body: %w", err), "validation_error", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			RenderError(w, r, fmt.Errorf("parse request body: %w", err), "validation_error", http.StatusBadRequest)
			return
		}
	}
	if req.TimeoutMinutes <= 0 || req.MaxRecoveries <= 0 {
		RenderError(w, r, errors.New("timeout_minutes and max_recoveries must be positive"), "validation_error", http.StatusBadRequest)
		return
	}

	res, err := s.runner.RecoverInterrupted(r.Context(), req.TimeoutMinutes, req.MaxRecoveries)
	if err != nil {
		RenderError(w, r, err, "database_error", http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// trackingResponse is the wire shape of one user's tracking state
type trackingResponse struct {
	UserID                string                `json:"user_id"`
	LastAnalysisAt        *time.Time            `json:"last_analysis_at,omitempty"`
	LastAnalyzedPostID    *string               `json:"last_analyzed_post_id,omitempty"`
	LastAnalyzedMessageID *string               `json:"last_analyzed_message_id,omitempty"`
	Scope                 *domain.AnalysisScope `json:"analysis_scope,omitempty"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

// trackingHandler returns one user's analysis tracking record
func (s *Server) trackingHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	rec, err := s.tracking.GetTracking(r.Context(), userID)
	if err != nil {
		RenderError(w, r, err, "database_error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		RenderError(w, r, fmt.Errorf("no tracking record for user %s", userID), "not_found", http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, trackingResponse{
		UserID:                rec.UserID,
		LastAnalysisAt:        rec.LastAnalysisAt,
		LastAnalyzedPostID:    rec.LastAnalyzedPostID,
		LastAnalyzedMessageID: rec.LastAnalyzedMessageID,
		Scope:                 &rec.Scope,
		UpdatedAt:             rec.UpdatedAt,
	})
}

// validateHandler checks a user's tracking record for consistency
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	res, err := s.runner.ValidateUserState(r.Context(), userID)
	if err != nil {
		RenderError(w, r, err, "database_error", http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, res)
}

// statusHandler returns server status with provider health and batch metrics
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	metrics := s.runner.Metrics()
	status := map[string]interface{}{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"providers": s.health.StatusAll(),
		"batch": map[string]interface{}{
			"last_batch_size": metrics.BatchSize,
			"throughput":      metrics.Throughput,
			"success_rate":    metrics.SuccessRate,
			"memory_mb":       metrics.MemoryMB,
		},
	}
	RenderJSON(w, r, http.StatusOK, status)
}
