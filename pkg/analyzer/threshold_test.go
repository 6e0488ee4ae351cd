package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptly-social/activity-analyzer/pkg/analyzer/mocks"
	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

func defaultAnalysisConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		PostThreshold:    5,
		MessageThreshold: 10,
		TimeoutMinutes:   15,
		MaxUsersPerRun:   100,
		InitialBatchSize: 50,
		MinBatchSize:     10,
		MaxBatchSize:     200,
		MinConcurrency:   2,
		MaxConcurrency:   15,
		MemoryWarningMB:  512,
		MinThroughput:    0.5,
		MinSuccessRate:   0.9,
	}
}

func TestThresholdChecker_CheckUserActivity(t *testing.T) {
	analyzedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		counts   domain.ActivityCounts
		analyzed *time.Time
		meets    bool
	}{
		{"posts at threshold", domain.ActivityCounts{TotalPosts: 5, Messages: 0}, &analyzedAt, true},
		{"posts below, messages below", domain.ActivityCounts{TotalPosts: 4, Messages: 9}, &analyzedAt, false},
		{"messages at threshold", domain.ActivityCounts{TotalPosts: 0, Messages: 10}, &analyzedAt, true},
		{"both below", domain.ActivityCounts{TotalPosts: 1, Messages: 1}, &analyzedAt, false},
		{"no activity", domain.ActivityCounts{}, &analyzedAt, false},
		{"never analyzed, no activity", domain.ActivityCounts{}, nil, true},
		{"never analyzed, below thresholds", domain.ActivityCounts{TotalPosts: 1, Messages: 1}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := &mocks.ActivityStoreMock{
				CountActivityFunc: func(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error) {
					return tt.counts, nil
				},
			}
			tracking := &mocks.TrackingStoreMock{
				GetLastAnalysisTimestampFunc: func(ctx context.Context, userID string) (*time.Time, error) {
					return tt.analyzed, nil
				},
			}

			checker := NewThresholdChecker(activity, tracking, defaultAnalysisConfig())
			counts, err := checker.CheckUserActivity(context.Background(), "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.meets, counts.MeetsThreshold)
		})
	}
}

func TestThresholdChecker_SetThresholds(t *testing.T) {
	checker := NewThresholdChecker(&mocks.ActivityStoreMock{}, &mocks.TrackingStoreMock{}, defaultAnalysisConfig())

	require.NoError(t, checker.SetThresholds(3, 7))
	assert.Error(t, checker.SetThresholds(0, 7))
	assert.Error(t, checker.SetThresholds(3, -1))

	// failed updates leave thresholds untouched
	analyzedAt := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	activity := &mocks.ActivityStoreMock{
		CountActivityFunc: func(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error) {
			return domain.ActivityCounts{TotalPosts: 3}, nil
		},
	}
	tracking := &mocks.TrackingStoreMock{
		GetLastAnalysisTimestampFunc: func(ctx context.Context, userID string) (*time.Time, error) { return &analyzedAt, nil },
	}
	checker = NewThresholdChecker(activity, tracking, defaultAnalysisConfig())
	require.NoError(t, checker.SetThresholds(3, 7))
	require.Error(t, checker.SetThresholds(-5, 7))

	counts, err := checker.CheckUserActivity(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, counts.MeetsThreshold, "threshold of 3 still in effect")
}

func TestThresholdChecker_GetUsersNeedingAnalysis(t *testing.T) {
	oldTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newerTime := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	users := []domain.User{
		{ID: "recently-analyzed", Email: "a@example.com"},
		{ID: "never-analyzed", Email: "b@example.com"},
		{ID: "long-ago", Email: "c@example.com"},
		{ID: "quiet", Email: "d@example.com"},
		{ID: "new-and-quiet", Email: "e@example.com"},
	}
	lastAnalysis := map[string]*time.Time{
		"recently-analyzed": &newerTime,
		"never-analyzed":    nil,
		"long-ago":          &oldTime,
		"quiet":             &newerTime,
		"new-and-quiet":     nil,
	}
	counts := map[string]domain.ActivityCounts{
		"recently-analyzed": {TotalPosts: 6},
		"never-analyzed":    {TotalPosts: 5},
		"long-ago":          {TotalPosts: 20},
		"quiet":             {TotalPosts: 1},
		"new-and-quiet":     {TotalPosts: 1},
	}

	activity := &mocks.ActivityStoreMock{
		GetActiveUsersFunc: func(ctx context.Context) ([]domain.User, error) { return users, nil },
		CountActivityFunc: func(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error) {
			return counts[userID], nil
		},
	}
	tracking := &mocks.TrackingStoreMock{
		GetLastAnalysisTimestampFunc: func(ctx context.Context, userID string) (*time.Time, error) {
			return lastAnalysis[userID], nil
		},
	}

	checker := NewThresholdChecker(activity, tracking, defaultAnalysisConfig())
	res, err := checker.GetUsersNeedingAnalysis(context.Background())
	require.NoError(t, err)

	require.Len(t, res, 4, "quiet analyzed user filtered out")
	assert.Equal(t, "never-analyzed", res[0].User.ID, "never analyzed comes first")
	assert.Equal(t, "new-and-quiet", res[1].User.ID, "never analyzed qualifies below thresholds")
	assert.Equal(t, "long-ago", res[2].User.ID, "then oldest analysis")
	assert.Equal(t, "recently-analyzed", res[3].User.ID)
}

func TestThresholdChecker_CapsUsersPerRun(t *testing.T) {
	var users []domain.User
	for i := 0; i < 10; i++ {
		users = append(users, domain.User{ID: string(rune('a' + i))})
	}

	activity := &mocks.ActivityStoreMock{
		GetActiveUsersFunc: func(ctx context.Context) ([]domain.User, error) { return users, nil },
		CountActivityFunc: func(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error) {
			return domain.ActivityCounts{TotalPosts: 100}, nil
		},
	}
	tracking := &mocks.TrackingStoreMock{
		GetLastAnalysisTimestampFunc: func(ctx context.Context, userID string) (*time.Time, error) { return nil, nil },
	}

	cfg := defaultAnalysisConfig()
	cfg.MaxUsersPerRun = 3
	checker := NewThresholdChecker(activity, tracking, cfg)

	res, err := checker.GetUsersNeedingAnalysis(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 3)
}
