package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// TrackingRepository is the system of record for what has been analyzed and
// when. Every write is a single upsert keyed by user id; concurrent writers
// converge via upsert semantics rather than explicit locking.
type TrackingRepository struct {
	db *sqlx.DB
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(db *sqlx.DB) *TrackingRepository {
	return &TrackingRepository{db: db}
}

// sqlTimeLayout is the storage format for timestamps written by this
// repository, matching what SQLite's datetime('now') produces so that
// in-SQL comparisons stay consistent
const sqlTimeLayout = "2006-01-02 15:04:05"

// sqlTime formats a timestamp for storage
func sqlTime(t time.Time) string {
	return t.UTC().Format(sqlTimeLayout)
}

// trackingSQL mirrors the analysis_tracking row
type trackingSQL struct {
	UserID                string     `db:"user_id"`
	LastAnalysisAt        *time.Time `db:"last_analysis_at"`
	LastAnalyzedPostID    *string    `db:"last_analyzed_post_id"`
	LastAnalyzedMessageID *string    `db:"last_analyzed_message_id"`
	Scope                 scopeSQL   `db:"analysis_scope"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

// scopeSQL is the JSON representation of an analysis scope for SQL operations
type scopeSQL domain.AnalysisScope

// Value implements driver.Valuer for database storage
func (s scopeSQL) Value() (driver.Value, error) {
	return json.Marshal(domain.AnalysisScope(s))
}

// Scan implements sql.Scanner for database retrieval
func (s *scopeSQL) Scan(value interface{}) error {
	if value == nil {
		*s = scopeSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unexpected scope column type %T", value)
	}

	if len(data) == 0 {
		*s = scopeSQL{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// toDomain converts a tracking row to the domain record, normalizing
// timestamps to UTC
func (t *trackingSQL) toDomain() *domain.TrackingRecord {
	rec := &domain.TrackingRecord{
		UserID:                t.UserID,
		LastAnalyzedPostID:    t.LastAnalyzedPostID,
		LastAnalyzedMessageID: t.LastAnalyzedMessageID,
		Scope:                 domain.AnalysisScope(t.Scope),
		CreatedAt:             t.CreatedAt.UTC(),
		UpdatedAt:             t.UpdatedAt.UTC(),
	}
	if t.LastAnalysisAt != nil {
		utc := t.LastAnalysisAt.UTC()
		rec.LastAnalysisAt = &utc
	}
	return rec
}

// GetTracking returns the tracking record for a user, or nil if the user has
// never been tracked
func (r *TrackingRepository) GetTracking(ctx context.Context, userID string) (*domain.TrackingRecord, error) {
	var row trackingSQL
	err := r.db.GetContext(ctx, &row,
		`SELECT user_id, last_analysis_at, last_analyzed_post_id, last_analyzed_message_id,
		        analysis_scope, created_at, updated_at
		 FROM analysis_tracking WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tracking: %w", err)
	}
	return row.toDomain(), nil
}

// GetLastAnalysisTimestamp returns the user's last successful analysis time
// normalized to UTC, or nil if the user was never successfully analyzed
func (r *TrackingRepository) GetLastAnalysisTimestamp(ctx context.Context, userID string) (*time.Time, error) {
	rec, err := r.GetTracking(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return rec.LastAnalysisAt, nil
}

// RecordAnalysisStart idempotently upserts the tracking record's updated_at
// without touching last_analysis_at
func (r *TrackingRepository) RecordAnalysisStart(ctx context.Context, userID string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO analysis_tracking (user_id, created_at, updated_at)
			VALUES (?, datetime('now'), datetime('now'))
			ON CONFLICT(user_id) DO UPDATE SET updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record analysis start: %w", err)}
		}
		return nil
	})
}

// RecordAnalysisCompletion validates the scope and atomically upserts
// last_analysis_at, watermarks and the completed scope. A nil watermark keeps
// the previous one so a crash never loses the last good position.
func (r *TrackingRepository) RecordAnalysisCompletion(ctx context.Context, userID string, ts time.Time,
	scope domain.AnalysisScope, lastPostID, lastMessageID *string) error {

	// completed scopes never carry in-flight markers
	scope.Progress = nil
	scope.Status = ""
	if err := scope.Validate(); err != nil {
		return &ValidationError{Field: "analysis_scope", Err: err}
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO analysis_tracking
				(user_id, last_analysis_at, last_analyzed_post_id, last_analyzed_message_id, analysis_scope, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, datetime('now'), datetime('now'))
			ON CONFLICT(user_id) DO UPDATE SET
				last_analysis_at = excluded.last_analysis_at,
				last_analyzed_post_id = COALESCE(excluded.last_analyzed_post_id, analysis_tracking.last_analyzed_post_id),
				last_analyzed_message_id = COALESCE(excluded.last_analyzed_message_id, analysis_tracking.last_analyzed_message_id),
				analysis_scope = excluded.analysis_scope,
				updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, userID, sqlTime(ts), lastPostID, lastMessageID, scopeSQL(scope))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record analysis completion: %w", err)}
		}
		return nil
	})
}

// RecordAnalysisProgress merges a progress marker and in-progress status into
// the scope without touching completion fields
func (r *TrackingRepository) RecordAnalysisProgress(ctx context.Context, userID string, progress domain.Progress) error {
	rec, err := r.GetTracking(ctx, userID)
	if err != nil {
		return err
	}

	scope := domain.AnalysisScope{Version: domain.ScopeVersion}
	if rec != nil {
		scope = rec.Scope
		if scope.Version == 0 {
			scope.Version = domain.ScopeVersion
		}
	}
	scope.Progress = &progress
	scope.Status = domain.ScopeStatusInProgress

	return r.writeScope(ctx, userID, scope)
}

// CleanupFailedAnalysis touches updated_at only. It never advances
// last_analysis_at, which is what makes failed runs retried on the next
// cycle without losing the last good watermark.
func (r *TrackingRepository) CleanupFailedAnalysis(ctx context.Context, userID string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO analysis_tracking (user_id, created_at, updated_at)
			VALUES (?, datetime('now'), datetime('now'))
			ON CONFLICT(user_id) DO UPDATE SET updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("cleanup failed analysis: %w", err)}
		}
		return nil
	})
}

// DetectInterruptedAnalyses finds tracking records whose scope is marked
// in-progress and whose updated_at is older than the timeout, excluding
// records completed after their last touch
func (r *TrackingRepository) DetectInterruptedAnalyses(ctx context.Context, timeoutMinutes int) ([]domain.InterruptedAnalysis, error) {
	query := `
		SELECT user_id, updated_at,
		       (julianday('now') - julianday(updated_at)) * 1440.0 AS minutes_since_update
		FROM analysis_tracking
		WHERE json_extract(analysis_scope, '$.status') = ?
		  AND updated_at < datetime('now', ?)
		  AND (last_analysis_at IS NULL OR last_analysis_at < updated_at)
		ORDER BY updated_at ASC
	`
	modifier := fmt.Sprintf("-%d minutes", timeoutMinutes)

	rows, err := r.db.QueryContext(ctx, query, domain.ScopeStatusInProgress, modifier)
	if err != nil {
		return nil, fmt.Errorf("detect interrupted analyses: %w", err)
	}
	defer rows.Close()

	var res []domain.InterruptedAnalysis
	for rows.Next() {
		var ia domain.InterruptedAnalysis
		if err := rows.Scan(&ia.UserID, &ia.UpdatedAt, &ia.MinutesSinceUpdate); err != nil {
			return nil, fmt.Errorf("scan interrupted analysis: %w", err)
		}
		ia.UpdatedAt = ia.UpdatedAt.UTC()
		res = append(res, ia)
	}
	return res, rows.Err()
}

// RecoverInterruptedAnalysis strips progress and status from the scope while
// preserving completed fields. Returns whether a record was actually recovered.
func (r *TrackingRepository) RecoverInterruptedAnalysis(ctx context.Context, userID string) (bool, error) {
	rec, err := r.GetTracking(ctx, userID)
	if err != nil {
		return false, err
	}
	if rec == nil || !rec.Scope.InProgress() {
		return false, nil
	}

	scope := rec.Scope
	scope.Progress = nil
	scope.Status = ""

	if err := r.writeScope(ctx, userID, scope); err != nil {
		return false, err
	}
	return true, nil
}

// BatchRecoverInterruptedAnalyses detects interrupted records and recovers up
// to maxRecoveries of them, oldest first
func (r *TrackingRepository) BatchRecoverInterruptedAnalyses(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error) {
	interrupted, err := r.DetectInterruptedAnalyses(ctx, timeoutMinutes)
	if err != nil {
		return nil, err
	}

	res := &domain.RecoveryResult{Detected: len(interrupted)}

	capped := interrupted
	if maxRecoveries > 0 && len(capped) > maxRecoveries {
		capped = capped[:maxRecoveries]
	}

	for _, ia := range capped {
		recovered, err := r.RecoverInterruptedAnalysis(ctx, ia.UserID)
		outcome := domain.RecoveryOutcome{UserID: ia.UserID, Recovered: recovered}
		if err != nil {
			res.Failed++
			outcome.Error = err.Error()
		} else if recovered {
			res.Recovered++
		}
		res.Outcomes = append(res.Outcomes, outcome)
	}
	return res, nil
}

// ValidateAnalysisState checks a tracking record's internal consistency:
// timestamp ordering, scope schema validity, dangling watermark references
// and whether recorded counts exceed what currently exists in storage
func (r *TrackingRepository) ValidateAnalysisState(ctx context.Context, userID string) (*domain.StateValidation, error) {
	rec, err := r.GetTracking(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &domain.StateValidation{IsValid: false, Issues: []string{"no tracking record"}}, nil
	}

	v := &domain.StateValidation{IsValid: true}
	issue := func(format string, args ...interface{}) {
		v.IsValid = false
		v.Issues = append(v.Issues, fmt.Sprintf(format, args...))
	}
	warn := func(format string, args ...interface{}) {
		v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
	}

	if rec.UpdatedAt.Before(rec.CreatedAt) {
		issue("updated_at %s precedes created_at %s", rec.UpdatedAt, rec.CreatedAt)
	}
	if rec.LastAnalysisAt != nil && rec.LastAnalysisAt.Before(rec.CreatedAt) {
		issue("last_analysis_at %s precedes created_at %s", rec.LastAnalysisAt, rec.CreatedAt)
	}

	if rec.LastAnalysisAt != nil {
		scope := rec.Scope
		if err := scope.Validate(); err != nil {
			issue("invalid scope: %v", err)
		}
	}

	// dangling watermark references
	if rec.LastAnalyzedPostID != nil {
		var count int
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM posts WHERE id = ?", *rec.LastAnalyzedPostID); err != nil {
			return nil, fmt.Errorf("check post watermark: %w", err)
		}
		if count == 0 {
			issue("post watermark %s does not resolve", *rec.LastAnalyzedPostID)
		}
	}
	if rec.LastAnalyzedMessageID != nil {
		var count int
		if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM messages WHERE id = ?", *rec.LastAnalyzedMessageID); err != nil {
			return nil, fmt.Errorf("check message watermark: %w", err)
		}
		if count == 0 {
			issue("message watermark %s does not resolve", *rec.LastAnalyzedMessageID)
		}
	}

	// counts exceeding live storage only warn, content can be deleted after analysis
	var livePosts int
	if err := r.db.GetContext(ctx, &livePosts, "SELECT COUNT(*) FROM posts WHERE user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("count live posts: %w", err)
	}
	recorded := rec.Scope.PostsAnalyzed.ScheduledCount + rec.Scope.PostsAnalyzed.DismissedCount
	if recorded > livePosts {
		warn("recorded post count %d exceeds %d posts in storage", recorded, livePosts)
	}

	var liveMessages int
	err = r.db.GetContext(ctx, &liveMessages,
		`SELECT COUNT(*) FROM messages m JOIN conversations c ON m.conversation_id = c.id WHERE c.user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("count live messages: %w", err)
	}
	if rec.Scope.MessagesAnalyzed.TotalCount > liveMessages {
		warn("recorded message count %d exceeds %d messages in storage", rec.Scope.MessagesAnalyzed.TotalCount, liveMessages)
	}

	return v, nil
}

// writeScope upserts the scope and updated_at, leaving completion fields alone
func (r *TrackingRepository) writeScope(ctx context.Context, userID string, scope domain.AnalysisScope) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO analysis_tracking (user_id, analysis_scope, created_at, updated_at)
			VALUES (?, ?, datetime('now'), datetime('now'))
			ON CONFLICT(user_id) DO UPDATE SET
				analysis_scope = excluded.analysis_scope,
				updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, userID, scopeSQL(scope))
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("write scope: %w", err)}
		}
		return nil
	})
}
