package analyzer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

//go:generate moq -out mocks/activity_store.go -pkg mocks -skip-ensure -fmt goimports . ActivityStore
//go:generate moq -out mocks/tracking_store.go -pkg mocks -skip-ensure -fmt goimports . TrackingStore

// ActivityStore provides user records and activity data
type ActivityStore interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetActiveUsers(ctx context.Context) ([]domain.User, error)
	CountActivity(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error)
	GetContentSince(ctx context.Context, userID string, since *time.Time) (*domain.UserContent, error)
}

// TrackingStore provides crash-safe analysis state tracking
type TrackingStore interface {
	GetTracking(ctx context.Context, userID string) (*domain.TrackingRecord, error)
	GetLastAnalysisTimestamp(ctx context.Context, userID string) (*time.Time, error)
	RecordAnalysisStart(ctx context.Context, userID string) error
	RecordAnalysisCompletion(ctx context.Context, userID string, ts time.Time,
		scope domain.AnalysisScope, lastPostID, lastMessageID *string) error
	RecordAnalysisProgress(ctx context.Context, userID string, progress domain.Progress) error
	CleanupFailedAnalysis(ctx context.Context, userID string) error
	BatchRecoverInterruptedAnalyses(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error)
	ValidateAnalysisState(ctx context.Context, userID string) (*domain.StateValidation, error)
}

// ThresholdChecker decides which users have accumulated enough new activity
// since their last analysis to be worth analyzing again
type ThresholdChecker struct {
	activity ActivityStore
	tracking TrackingStore

	postThreshold    int
	messageThreshold int
	maxUsers         int
}

// NewThresholdChecker creates a checker with thresholds from config
func NewThresholdChecker(activity ActivityStore, tracking TrackingStore, cfg config.AnalysisConfig) *ThresholdChecker {
	return &ThresholdChecker{
		activity:         activity,
		tracking:         tracking,
		postThreshold:    cfg.PostThreshold,
		messageThreshold: cfg.MessageThreshold,
		maxUsers:         cfg.MaxUsersPerRun,
	}
}

// SetThresholds overrides the configured thresholds, rejecting non-positive values
func (c *ThresholdChecker) SetThresholds(postThreshold, messageThreshold int) error {
	if postThreshold <= 0 {
		return fmt.Errorf("post threshold must be positive, got %d", postThreshold)
	}
	if messageThreshold <= 0 {
		return fmt.Errorf("message threshold must be positive, got %d", messageThreshold)
	}
	c.postThreshold = postThreshold
	c.messageThreshold = messageThreshold
	return nil
}

// Thresholds returns the currently effective thresholds
func (c *ThresholdChecker) Thresholds() (postThreshold, messageThreshold int) {
	return c.postThreshold, c.messageThreshold
}

// SetMaxUsers overrides the per-run candidate cap, rejecting non-positive values
func (c *ThresholdChecker) SetMaxUsers(maxUsers int) error {
	if maxUsers <= 0 {
		return fmt.Errorf("max users per run must be positive, got %d", maxUsers)
	}
	c.maxUsers = maxUsers
	return nil
}

// CheckUserActivity counts a user's qualifying activity since their last
// analysis. Users never analyzed are counted over their full history.
func (c *ThresholdChecker) CheckUserActivity(ctx context.Context, userID string) (domain.ActivityCounts, error) {
	since, err := c.tracking.GetLastAnalysisTimestamp(ctx, userID)
	if err != nil {
		return domain.ActivityCounts{}, fmt.Errorf("get last analysis timestamp for %s: %w", userID, err)
	}

	counts, err := c.activity.CountActivity(ctx, userID, since)
	if err != nil {
		return domain.ActivityCounts{}, fmt.Errorf("count activity for %s: %w", userID, err)
	}

	counts.MeetsThreshold = c.qualifies(counts, since)
	return counts, nil
}

// qualifies applies the activity thresholds. A user never analyzed before
// qualifies unconditionally so onboarding doesn't stall on low activity.
func (c *ThresholdChecker) qualifies(counts domain.ActivityCounts, lastAnalysis *time.Time) bool {
	if lastAnalysis == nil {
		return true
	}
	return counts.TotalPosts >= c.postThreshold || counts.Messages >= c.messageThreshold
}

// userCandidate pairs a qualifying user with ordering keys
type userCandidate struct {
	activity     domain.UserActivity
	lastAnalysis *time.Time
}

// GetUsersNeedingAnalysis returns active users meeting the activity threshold,
// never-analyzed users first, then by oldest analysis, then by activity volume.
// The result is capped at the configured per-run maximum.
func (c *ThresholdChecker) GetUsersNeedingAnalysis(ctx context.Context) ([]domain.UserActivity, error) {
	users, err := c.activity.GetActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active users: %w", err)
	}

	var candidates []userCandidate
	for _, u := range users {
		last, err := c.tracking.GetLastAnalysisTimestamp(ctx, u.ID)
		if err != nil {
			lgr.Printf("[WARN] skip user %s, can't read tracking: %v", u.ID, err)
			continue
		}
		counts, err := c.activity.CountActivity(ctx, u.ID, last)
		if err != nil {
			lgr.Printf("[WARN] skip user %s, can't count activity: %v", u.ID, err)
			continue
		}
		counts.MeetsThreshold = c.qualifies(counts, last)
		if !counts.MeetsThreshold {
			continue
		}
		candidates = append(candidates, userCandidate{
			activity:     domain.UserActivity{User: u, Counts: counts},
			lastAnalysis: last,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		li, lj := candidates[i].lastAnalysis, candidates[j].lastAnalysis
		switch {
		case li == nil && lj != nil:
			return true
		case li != nil && lj == nil:
			return false
		case li != nil && lj != nil && !li.Equal(*lj):
			return li.Before(*lj)
		}
		vi := candidates[i].activity.Counts.TotalPosts + candidates[i].activity.Counts.Messages
		vj := candidates[j].activity.Counts.TotalPosts + candidates[j].activity.Counts.Messages
		return vi > vj
	})

	if c.maxUsers > 0 && len(candidates) > c.maxUsers {
		candidates = candidates[:c.maxUsers]
	}

	res := make([]domain.UserActivity, len(candidates))
	for i, cand := range candidates {
		res[i] = cand.activity
	}
	return res, nil
}
