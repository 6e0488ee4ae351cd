package domain

import (
	"fmt"
	"time"
)

// AnalysisType identifies one of the analysis operations performed per user
type AnalysisType string

// analysis types, closed set
const (
	AnalysisWritingStyle     AnalysisType = "writing_style"
	AnalysisTopicsOfInterest AnalysisType = "topics_of_interest"
	AnalysisBioUpdate        AnalysisType = "bio_update"
	AnalysisNegative         AnalysisType = "negative_analysis"
)

// ValidAnalysisType reports whether t belongs to the closed set
func ValidAnalysisType(t AnalysisType) bool {
	switch t {
	case AnalysisWritingStyle, AnalysisTopicsOfInterest, AnalysisBioUpdate, AnalysisNegative:
		return true
	}
	return false
}

// ScopeStatusInProgress marks a scope belonging to a run that has not completed yet
const ScopeStatusInProgress = "in_progress"

// ScopeVersion is the current schema version of persisted analysis scopes
const ScopeVersion = 1

// DateRange bounds the content covered by a scope
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// PostsAnalyzed records post coverage of a completed analysis
type PostsAnalyzed struct {
	ScheduledCount int        `json:"scheduled_count"`
	DismissedCount int        `json:"dismissed_count"`
	PostIDs        []string   `json:"post_ids,omitempty"`
	DateRange      *DateRange `json:"date_range,omitempty"`
}

// MessagesAnalyzed records message coverage of a completed analysis
type MessagesAnalyzed struct {
	TotalCount int        `json:"total_count"`
	MessageIDs []string   `json:"message_ids,omitempty"`
	DateRange  *DateRange `json:"date_range,omitempty"`
}

// Progress tracks an in-flight run inside the scope, removed on completion
type Progress struct {
	Step             int    `json:"step"`
	TotalSteps       int    `json:"total_steps"`
	CurrentOperation string `json:"current_operation"`
}

// AnalysisScope is the structured record of what was analyzed in a run.
// It is persisted as JSON on the tracking record and validated before
// every completed write.
type AnalysisScope struct {
	Version          int              `json:"version"`
	PostsAnalyzed    PostsAnalyzed    `json:"posts_analyzed"`
	MessagesAnalyzed MessagesAnalyzed `json:"messages_analyzed"`
	AnalysisTypes    []AnalysisType   `json:"analysis_types_performed"`
	Progress         *Progress        `json:"progress,omitempty"`
	Status           string           `json:"status,omitempty"`
}

// Validate checks the scope against the completed-scope schema: counts
// non-negative and every analysis type drawn from the closed set
func (s *AnalysisScope) Validate() error {
	if s == nil {
		return fmt.Errorf("scope is nil")
	}
	if s.Version <= 0 {
		return fmt.Errorf("scope version must be positive, got %d", s.Version)
	}
	if s.PostsAnalyzed.ScheduledCount < 0 {
		return fmt.Errorf("scheduled_count must be non-negative, got %d", s.PostsAnalyzed.ScheduledCount)
	}
	if s.PostsAnalyzed.DismissedCount < 0 {
		return fmt.Errorf("dismissed_count must be non-negative, got %d", s.PostsAnalyzed.DismissedCount)
	}
	if s.MessagesAnalyzed.TotalCount < 0 {
		return fmt.Errorf("messages total_count must be non-negative, got %d", s.MessagesAnalyzed.TotalCount)
	}
	for _, t := range s.AnalysisTypes {
		if !ValidAnalysisType(t) {
			return fmt.Errorf("unknown analysis type %q", t)
		}
	}
	return nil
}

// InProgress reports whether the scope belongs to an unfinished run
func (s *AnalysisScope) InProgress() bool {
	return s != nil && s.Status == ScopeStatusInProgress
}

// TrackingRecord is the system of record for what has been analyzed per user
type TrackingRecord struct {
	UserID                string
	LastAnalysisAt        *time.Time
	LastAnalyzedPostID    *string
	LastAnalyzedMessageID *string
	Scope                 AnalysisScope
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AnalysisStatus is the outcome of a single user's analysis in a run
type AnalysisStatus string

// per-user analysis outcomes
const (
	StatusSuccess AnalysisStatus = "success"
	StatusFailed  AnalysisStatus = "failed"
	StatusSkipped AnalysisStatus = "skipped"
	StatusTimeout AnalysisStatus = "timeout"
)

// UserAnalysisResult is the per-user outcome of one orchestrator run
type UserAnalysisResult struct {
	UserID         string          `json:"user_id"`
	Email          string          `json:"email"`
	Status         AnalysisStatus  `json:"status"`
	AnalysisTypes  []AnalysisType  `json:"analysis_types_performed,omitempty"`
	ProcessingTime time.Duration   `json:"processing_time"`
	ErrorMessage   string          `json:"error_message,omitempty"`
	ActivityCounts *ActivityCounts `json:"activity_counts,omitempty"`
	Scope          *AnalysisScope  `json:"analysis_scope,omitempty"`
}

// BatchAnalysisResult aggregates one orchestrator run
type BatchAnalysisResult struct {
	TotalUsers   int                  `json:"total_users_processed"`
	Successful   int                  `json:"successful_analyses"`
	Failed       int                  `json:"failed_analyses"`
	Skipped      int                  `json:"skipped_analyses"`
	TimedOut     int                  `json:"timeout_analyses"`
	StartTime    time.Time            `json:"start_time"`
	EndTime      time.Time            `json:"end_time"`
	Results      []UserAnalysisResult `json:"-"`
	ErrorSummary map[string]int       `json:"error_summary"`
}

// Duration returns the wall-clock duration of the run
func (r *BatchAnalysisResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// BatchMetrics captures one batch execution, consumed to steer the next batch
type BatchMetrics struct {
	BatchSize       int
	ProcessingTime  time.Duration
	MemoryMB        float64
	ConcurrentTasks int
	Throughput      float64 // users per second
	SuccessRate     float64 // 0..1
}

// StateValidation is the outcome of checking a tracking record's consistency
type StateValidation struct {
	IsValid  bool     `json:"is_valid"`
	Issues   []string `json:"issues,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// InterruptedAnalysis describes a tracking record stuck in progress
type InterruptedAnalysis struct {
	UserID             string    `json:"user_id"`
	UpdatedAt          time.Time `json:"updated_at"`
	MinutesSinceUpdate float64   `json:"minutes_since_update"`
}

// RecoveryOutcome is the per-user result of a batch recovery pass
type RecoveryOutcome struct {
	UserID    string `json:"user_id"`
	Recovered bool   `json:"recovered"`
	Error     string `json:"error,omitempty"`
}

// RecoveryResult aggregates a batch recovery pass
type RecoveryResult struct {
	Detected  int               `json:"detected"`
	Recovered int               `json:"recovered"`
	Failed    int               `json:"failed"`
	Outcomes  []RecoveryOutcome `json:"outcomes,omitempty"`
}

// TopicInterest is one topic derived by the topic-interest analysis
type TopicInterest struct {
	Topic       string   `json:"topic"`
	Confidence  float64  `json:"confidence"`
	Frequency   int      `json:"frequency"`
	Keywords    []string `json:"keywords,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
}
