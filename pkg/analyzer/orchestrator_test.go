package analyzer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptly-social/activity-analyzer/pkg/analyzer/mocks"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

type orchestratorFixture struct {
	activity *mocks.ActivityStoreMock
	tracking *mocks.TrackingStoreMock
	profile  *mocks.ProfileStoreMock
	ai       *mocks.AIServiceMock
	analyzer *Analyzer
}

// newFixture builds an analyzer over happy-path mocks for a single user with
// rich content. Tests override individual funcs to steer behavior.
func newFixture(t *testing.T, content *domain.UserContent) *orchestratorFixture {
	t.Helper()

	f := &orchestratorFixture{}
	f.activity = &mocks.ActivityStoreMock{
		GetActiveUsersFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "u1", Email: "u1@example.com", Bio: "engineer", IsActive: true}}, nil
		},
		GetUserFunc: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Email: userID + "@example.com", Bio: "engineer", IsActive: true}, nil
		},
		CountActivityFunc: func(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error) {
			return domain.ActivityCounts{TotalPosts: 6, Scheduled: 3, Dismissed: 2, Messages: 4}, nil
		},
		GetContentSinceFunc: func(ctx context.Context, userID string, since *time.Time) (*domain.UserContent, error) {
			return content, nil
		},
	}
	f.tracking = &mocks.TrackingStoreMock{
		GetLastAnalysisTimestampFunc: func(ctx context.Context, userID string) (*time.Time, error) { return nil, nil },
		RecordAnalysisStartFunc:      func(ctx context.Context, userID string) error { return nil },
		RecordAnalysisProgressFunc: func(ctx context.Context, userID string, progress domain.Progress) error {
			return nil
		},
		RecordAnalysisCompletionFunc: func(ctx context.Context, userID string, ts time.Time,
			scope domain.AnalysisScope, lastPostID, lastMessageID *string) error {
			return nil
		},
		CleanupFailedAnalysisFunc: func(ctx context.Context, userID string) error { return nil },
	}
	f.profile = &mocks.ProfileStoreMock{
		GetPreferencesFunc: func(ctx context.Context, userID string) (*domain.Preferences, error) {
			return &domain.Preferences{UserID: userID, WritingStyleAnalysis: "prior style"}, nil
		},
		UpdateWritingStyleFunc:     func(ctx context.Context, userID, analysis string) error { return nil },
		UpdateNegativeAnalysisFunc: func(ctx context.Context, userID, analysis string) error { return nil },
		UpdateTopicsOfInterestFunc: func(ctx context.Context, userID string, topics []domain.TopicInterest) error { return nil },
		UpdateBioFunc:              func(ctx context.Context, userID, bio string) error { return nil },
	}
	f.ai = &mocks.AIServiceMock{
		AnalyzeWritingStyleFunc: func(ctx context.Context, content []string, existing string) (string, error) {
			return "new style", nil
		},
		AnalyzeTopicsOfInterestFunc: func(ctx context.Context, content []string) ([]domain.TopicInterest, error) {
			return []domain.TopicInterest{{Topic: "go", Confidence: 0.9, Frequency: 3, Category: "engineering"}}, nil
		},
		UpdateUserBioFunc: func(ctx context.Context, bio string, recent []string) (string, error) {
			return "refreshed bio", nil
		},
		AnalyzeNegativePatternsFunc: func(ctx context.Context, dismissed, feedback []string) (string, error) {
			return "avoids listicles", nil
		},
	}

	f.analyzer = NewAnalyzer(f.activity, f.tracking, f.profile, f.ai, defaultAnalysisConfig())
	return f
}

func richContent() *domain.UserContent {
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.UserContent{
		Posts: []domain.Post{
			{ID: "p1", Status: domain.PostStatusScheduled, Content: "post one", CreatedAt: base},
			{ID: "p2", Status: domain.PostStatusPosted, Content: "post two", CreatedAt: base.Add(time.Hour)},
			{ID: "p3", Status: domain.PostStatusScheduled, Content: "post three", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "p4", Status: domain.PostStatusDismissed, Content: "dismissed post", CreatedAt: base.Add(3 * time.Hour)},
			{ID: "p5", Status: domain.PostStatusDismissed, Feedback: domain.FeedbackNegative, Content: "hated post", CreatedAt: base.Add(4 * time.Hour)},
		},
		Messages: []domain.Message{
			{ID: "m1", Role: "user", Content: "first question", CreatedAt: base.Add(time.Minute)},
			{ID: "m2", Role: "assistant", Content: "an answer", CreatedAt: base.Add(2 * time.Minute)},
			{ID: "m3", Role: "user", Content: "follow up", CreatedAt: base.Add(3 * time.Minute)},
		},
	}
}

func TestAnalyzer_RunFullPipeline(t *testing.T) {
	f := newFixture(t, richContent())

	res, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalUsers)
	assert.Equal(t, 1, res.Successful)
	assert.Zero(t, res.Failed)
	require.Len(t, res.Results, 1)

	r := res.Results[0]
	assert.Equal(t, domain.StatusSuccess, r.Status)
	assert.ElementsMatch(t, []domain.AnalysisType{
		domain.AnalysisWritingStyle, domain.AnalysisTopicsOfInterest,
		domain.AnalysisBioUpdate, domain.AnalysisNegative,
	}, r.AnalysisTypes)

	// profile updates landed
	assert.Len(t, f.profile.UpdateWritingStyleCalls(), 1)
	assert.Len(t, f.profile.UpdateTopicsOfInterestCalls(), 1)
	assert.Len(t, f.profile.UpdateBioCalls(), 1)
	assert.Len(t, f.profile.UpdateNegativeAnalysisCalls(), 1)
	assert.Equal(t, "refreshed bio", f.profile.UpdateBioCalls()[0].Bio)

	// prior style fed back into the incremental analysis
	require.Len(t, f.ai.AnalyzeWritingStyleCalls(), 1)
	assert.Equal(t, "prior style", f.ai.AnalyzeWritingStyleCalls()[0].ExistingAnalysis)

	// completion recorded with watermarks at the newest covered content
	require.Len(t, f.tracking.RecordAnalysisCompletionCalls(), 1)
	comp := f.tracking.RecordAnalysisCompletionCalls()[0]
	require.NotNil(t, comp.LastPostID)
	assert.Equal(t, "p5", *comp.LastPostID)
	require.NotNil(t, comp.LastMessageID)
	assert.Equal(t, "m3", *comp.LastMessageID)
	assert.Equal(t, domain.ScopeVersion, comp.Scope.Version)
	assert.Equal(t, 3, comp.Scope.PostsAnalyzed.ScheduledCount)
	assert.Equal(t, 2, comp.Scope.PostsAnalyzed.DismissedCount)
	assert.Equal(t, 3, comp.Scope.MessagesAnalyzed.TotalCount)
}

func TestAnalyzer_NegativeFeedbackSeparatedFromDismissals(t *testing.T) {
	f := newFixture(t, richContent())

	_, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, f.ai.AnalyzeNegativePatternsCalls(), 1)
	call := f.ai.AnalyzeNegativePatternsCalls()[0]
	assert.Equal(t, []string{"dismissed post"}, call.DismissedPosts)
	assert.Equal(t, []string{"hated post"}, call.FeedbackPosts)
}

func TestAnalyzer_InsufficientContentSkips(t *testing.T) {
	// passes the activity threshold but content is one lonely scheduled post
	content := &domain.UserContent{
		Posts: []domain.Post{{ID: "p1", Status: domain.PostStatusScheduled, Content: "only one", CreatedAt: time.Now()}},
	}
	f := newFixture(t, content)

	res, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Skipped)
	assert.Zero(t, res.Successful)
	assert.Empty(t, f.ai.AnalyzeWritingStyleCalls(), "no AI calls for insufficient content")
	assert.Empty(t, f.tracking.RecordAnalysisCompletionCalls(), "watermark untouched on skip")
}

func TestAnalyzer_BioGateRequiresExistingBio(t *testing.T) {
	f := newFixture(t, richContent())
	f.activity.GetActiveUsersFunc = func(ctx context.Context) ([]domain.User, error) {
		return []domain.User{{ID: "u1", Email: "u1@example.com", Bio: "", IsActive: true}}, nil
	}

	res, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	assert.Equal(t, domain.StatusSuccess, res.Results[0].Status)
	assert.NotContains(t, res.Results[0].AnalysisTypes, domain.AnalysisBioUpdate)
	assert.Empty(t, f.ai.UpdateUserBioCalls())
}

func TestAnalyzer_NegativeGateRequiresDismissals(t *testing.T) {
	base := time.Now().UTC()
	content := &domain.UserContent{
		Posts: []domain.Post{
			{ID: "p1", Status: domain.PostStatusScheduled, Content: "one", CreatedAt: base},
			{ID: "p2", Status: domain.PostStatusPosted, Content: "two", CreatedAt: base.Add(time.Hour)},
		},
	}
	f := newFixture(t, content)

	res, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	assert.NotContains(t, res.Results[0].AnalysisTypes, domain.AnalysisNegative)
	assert.Empty(t, f.ai.AnalyzeNegativePatternsCalls())
}

func TestAnalyzer_AIFailureCleansUpAndPreservesWatermark(t *testing.T) {
	f := newFixture(t, richContent())
	f.ai.AnalyzeWritingStyleFunc = func(ctx context.Context, content []string, existing string) (string, error) {
		return "", errors.New("all providers failed for writing_style")
	}

	res, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Failed)
	assert.Len(t, f.tracking.CleanupFailedAnalysisCalls(), 1)
	assert.Empty(t, f.tracking.RecordAnalysisCompletionCalls(), "failed run must not advance the watermark")
	assert.Equal(t, 1, res.ErrorSummary["ai_service_error"])
}

func TestAnalyzer_DeadlineExpiryMarksUserTimedOut(t *testing.T) {
	f := newFixture(t, richContent())
	f.ai.AnalyzeWritingStyleFunc = func(ctx context.Context, content []string, existing string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	res := f.analyzer.analyzeSingleUser(ctx, domain.UserActivity{
		User: domain.User{ID: "u1", Email: "u1@example.com", Bio: "engineer", IsActive: true},
	})

	assert.Equal(t, domain.StatusTimeout, res.Status, "worker cut off by the run deadline is a timeout")
	assert.NotEmpty(t, res.ErrorMessage)
	assert.Len(t, f.tracking.CleanupFailedAnalysisCalls(), 1, "tracking still cleaned up")
}

func TestAnalyzer_ProviderTimeoutWithLiveRunIsFailed(t *testing.T) {
	f := newFixture(t, richContent())
	f.ai.AnalyzeWritingStyleFunc = func(ctx context.Context, content []string, existing string) (string, error) {
		return "", errors.New("provider openai timed out: context deadline exceeded")
	}

	res := f.analyzer.analyzeSingleUser(context.Background(), domain.UserActivity{
		User: domain.User{ID: "u1", Email: "u1@example.com", Bio: "engineer", IsActive: true},
	})

	assert.Equal(t, domain.StatusFailed, res.Status, "per-request provider timeout is not a run timeout")
}

func TestAnalyzer_TopicsGateRequiresScheduledPost(t *testing.T) {
	base := time.Now().UTC()
	content := &domain.UserContent{}
	for i := 0; i < 6; i++ {
		content.Messages = append(content.Messages, domain.Message{
			ID: fmt.Sprintf("m%d", i), Role: "user", Content: "chat message", CreatedAt: base,
		})
	}
	f := newFixture(t, content)

	res, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	// plenty of messages but no scheduled posts leaves nothing to analyze
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, f.ai.AnalyzeTopicsOfInterestCalls())
	assert.Empty(t, f.ai.AnalyzeWritingStyleCalls())
}

func TestAnalyzer_ProgressRecordedPerStep(t *testing.T) {
	f := newFixture(t, richContent())

	_, err := f.analyzer.Run(context.Background())
	require.NoError(t, err)

	calls := f.tracking.RecordAnalysisProgressCalls()
	require.Len(t, calls, 4)
	for i, c := range calls {
		assert.Equal(t, i+1, c.Progress.Step)
		assert.Equal(t, 4, c.Progress.TotalSteps)
		assert.NotEmpty(t, c.Progress.CurrentOperation)
	}
}

func TestAnalyzer_RunForUsers(t *testing.T) {
	f := newFixture(t, richContent())

	res, err := f.analyzer.RunForUsers(context.Background(), []string{"u7"})
	require.NoError(t, err)

	require.Len(t, res.Results, 1)
	assert.Equal(t, "u7", res.Results[0].UserID)
	assert.Equal(t, domain.StatusSuccess, res.Results[0].Status)
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{"rate limit exceeded on provider openai", "rate_limit_error"},
		{"writing_style: all providers failed for writing_style", "ai_service_error"},
		{"quota exhausted", "ai_service_error"},
		{"context deadline exceeded", "timeout_error"},
		{"record completion: database is locked", "database_error"},
		{"get content: sql: no rows", "database_error"},
		{"threshold misconfigured", "threshold_error"},
		{"something strange", "unknown_error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyError(tt.msg), tt.msg)
	}
}

func TestAnalyzer_SetThresholdsPartialOverride(t *testing.T) {
	f := newFixture(t, richContent())

	// zero keeps the configured side
	require.NoError(t, f.analyzer.SetThresholds(3, 0))
	post, msg := f.analyzer.Checker().Thresholds()
	assert.Equal(t, 3, post)
	assert.Equal(t, 10, msg)

	require.NoError(t, f.analyzer.SetThresholds(0, 7))
	post, msg = f.analyzer.Checker().Thresholds()
	assert.Equal(t, 3, post)
	assert.Equal(t, 7, msg)

	// negatives still rejected and leave state alone
	require.Error(t, f.analyzer.SetThresholds(-1, 7))
	post, msg = f.analyzer.Checker().Thresholds()
	assert.Equal(t, 3, post)
	assert.Equal(t, 7, msg)
}

func TestAnalyzer_SetRunLimits(t *testing.T) {
	f := newFixture(t, richContent())

	require.NoError(t, f.analyzer.SetRunLimits(30, 25))
	assert.Equal(t, 30, f.analyzer.cfg.TimeoutMinutes)

	// zero keeps the current limit
	require.NoError(t, f.analyzer.SetRunLimits(0, 40))
	assert.Equal(t, 30, f.analyzer.cfg.TimeoutMinutes)

	require.Error(t, f.analyzer.SetRunLimits(-5, 0))
	require.Error(t, f.analyzer.SetRunLimits(0, -1))
}
