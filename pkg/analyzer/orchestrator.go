package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/ai_service.go -pkg mocks -skip-ensure -fmt goimports . AIService

// ProfileStore persists analysis outputs to user profiles
type ProfileStore interface {
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
	UpdateWritingStyle(ctx context.Context, userID, analysis string) error
	UpdateNegativeAnalysis(ctx context.Context, userID, analysis string) error
	UpdateTopicsOfInterest(ctx context.Context, userID string, topics []domain.TopicInterest) error
	UpdateBio(ctx context.Context, userID, bio string) error
}

// AIService runs the model-backed analysis operations
type AIService interface {
	AnalyzeWritingStyle(ctx context.Context, content []string, existingAnalysis string) (string, error)
	AnalyzeTopicsOfInterest(ctx context.Context, content []string) ([]domain.TopicInterest, error)
	UpdateUserBio(ctx context.Context, currentBio string, recentContent []string) (string, error)
	AnalyzeNegativePatterns(ctx context.Context, dismissedPosts, feedbackPosts []string) (string, error)
}

// Analyzer orchestrates the full analysis pipeline: candidate selection,
// incremental content retrieval, the per-type AI analyses, profile updates
// and crash-safe state tracking.
type Analyzer struct {
	activity ActivityStore
	tracking TrackingStore
	profile  ProfileStore
	ai       AIService

	checker *ThresholdChecker
	batch   *BatchProcessor
	cfg     config.AnalysisConfig
}

// NewAnalyzer wires the orchestrator from its stores and AI service
func NewAnalyzer(activity ActivityStore, tracking TrackingStore, profile ProfileStore,
	ai AIService, cfg config.AnalysisConfig) *Analyzer {
	return &Analyzer{
		activity: activity,
		tracking: tracking,
		profile:  profile,
		ai:       ai,
		checker:  NewThresholdChecker(activity, tracking, cfg),
		batch:    NewBatchProcessor(cfg),
		cfg:      cfg,
	}
}

// Checker exposes the threshold checker for on-demand activity queries
func (a *Analyzer) Checker() *ThresholdChecker {
	return a.checker
}

// Batch exposes the batch processor for shutdown and metrics
func (a *Analyzer) Batch() *BatchProcessor {
	return a.batch
}

// SetThresholds overrides activity thresholds for subsequent runs. A zero
// value keeps the current threshold so callers can override one side only.
func (a *Analyzer) SetThresholds(postThreshold, messageThreshold int) error {
	curPost, curMsg := a.checker.Thresholds()
	if postThreshold == 0 {
		postThreshold = curPost
	}
	if messageThreshold == 0 {
		messageThreshold = curMsg
	}
	return a.checker.SetThresholds(postThreshold, messageThreshold)
}

// SetRunLimits overrides the run timeout and per-run user cap for subsequent
// runs. Zero values keep the current limits.
func (a *Analyzer) SetRunLimits(timeoutMinutes, maxUsers int) error {
	if timeoutMinutes < 0 {
		return fmt.Errorf("batch timeout must be positive, got %d", timeoutMinutes)
	}
	if maxUsers < 0 {
		return fmt.Errorf("max users per batch must be positive, got %d", maxUsers)
	}
	if timeoutMinutes > 0 {
		a.cfg.TimeoutMinutes = timeoutMinutes
	}
	if maxUsers > 0 {
		if err := a.checker.SetMaxUsers(maxUsers); err != nil {
			return err
		}
	}
	return nil
}

// Metrics returns the most recent batch metrics
func (a *Analyzer) Metrics() domain.BatchMetrics {
	return a.batch.LastMetrics()
}

// Run executes one full analysis run over all qualifying users. The run is
// bounded by the configured timeout; users not reached in time are reported
// as timed out, never silently dropped.
func (a *Analyzer) Run(ctx context.Context) (*domain.BatchAnalysisResult, error) {
	started := time.Now().UTC()

	users, err := a.checker.GetUsersNeedingAnalysis(ctx)
	if err != nil {
		return nil, fmt.Errorf("select users for analysis: %w", err)
	}
	lgr.Printf("[INFO] analysis run started, %d users qualify", len(users))

	runCtx := ctx
	if a.cfg.TimeoutMinutes > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(a.cfg.TimeoutMinutes)*time.Minute)
		defer cancel()
	}

	results := a.batch.Process(runCtx, users, a.analyzeSingleUser)
	res := a.aggregate(results, started)

	lgr.Printf("[INFO] analysis run finished in %v: %d users, %d ok, %d skipped, %d failed, %d timed out",
		res.Duration().Round(time.Millisecond), res.TotalUsers, res.Successful, res.Skipped, res.Failed, res.TimedOut)
	return res, nil
}

// RunForUsers executes a run restricted to the given user ids, bypassing
// candidate selection but not the activity threshold
func (a *Analyzer) RunForUsers(ctx context.Context, userIDs []string) (*domain.BatchAnalysisResult, error) {
	started := time.Now().UTC()

	var users []domain.UserActivity
	for _, id := range userIDs {
		user, err := a.activity.GetUser(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get user %s: %w", id, err)
		}
		counts, err := a.checker.CheckUserActivity(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check activity for %s: %w", id, err)
		}
		users = append(users, domain.UserActivity{User: *user, Counts: counts})
	}

	runCtx := ctx
	if a.cfg.TimeoutMinutes > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(a.cfg.TimeoutMinutes)*time.Minute)
		defer cancel()
	}

	results := a.batch.Process(runCtx, users, a.analyzeSingleUser)
	return a.aggregate(results, started), nil
}

// RecoverInterrupted resets tracking records stuck in progress past the timeout
func (a *Analyzer) RecoverInterrupted(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error) {
	return a.tracking.BatchRecoverInterruptedAnalyses(ctx, timeoutMinutes, maxRecoveries)
}

// ValidateUserState checks a user's tracking record for consistency
func (a *Analyzer) ValidateUserState(ctx context.Context, userID string) (*domain.StateValidation, error) {
	return a.tracking.ValidateAnalysisState(ctx, userID)
}

// analysisStep pairs an analysis type with its executor, gated by content
type analysisStep struct {
	typ      domain.AnalysisType
	eligible bool
	run      func(ctx context.Context) error
}

// analyzeSingleUser runs the full per-user pipeline and always returns a
// result. Failures leave the tracking watermark untouched so the next run
// re-covers the same content.
func (a *Analyzer) analyzeSingleUser(ctx context.Context, user domain.UserActivity) domain.UserAnalysisResult {
	started := time.Now()
	res := domain.UserAnalysisResult{
		UserID:         user.User.ID,
		Email:          user.User.Email,
		ActivityCounts: &user.Counts,
	}
	fail := func(err error) domain.UserAnalysisResult {
		lgr.Printf("[WARN] analysis failed for user %s: %v", user.User.ID, err)
		// cleanup must land even when the run deadline already passed
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if cerr := a.tracking.CleanupFailedAnalysis(cleanupCtx, user.User.ID); cerr != nil {
			lgr.Printf("[ERROR] cleanup after failure for user %s: %v", user.User.ID, cerr)
		}
		res.Status = domain.StatusFailed
		// workers cut off by the run deadline are timeouts, not failures;
		// a provider's own request timeout with a live run context is not
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.Status = domain.StatusTimeout
		}
		res.ErrorMessage = err.Error()
		res.ProcessingTime = time.Since(started)
		return res
	}

	if err := a.tracking.RecordAnalysisStart(ctx, user.User.ID); err != nil {
		return fail(fmt.Errorf("record analysis start: %w", err))
	}

	since, err := a.tracking.GetLastAnalysisTimestamp(ctx, user.User.ID)
	if err != nil {
		return fail(fmt.Errorf("get last analysis timestamp: %w", err))
	}

	content, err := a.activity.GetContentSince(ctx, user.User.ID, since)
	if err != nil {
		return fail(fmt.Errorf("get content: %w", err))
	}

	scheduled := content.ScheduledPosts()
	dismissed := content.DismissedPosts()
	negative := content.NegativeFeedbackPosts()
	userMessages := messageTexts(content.Messages)

	// enough raw volume to trigger is not enough signal to analyze
	if len(scheduled) < 2 && len(dismissed)+len(negative) < 1 && len(userMessages) < 5 {
		lgr.Printf("[DEBUG] user %s skipped, insufficient analyzable content", user.User.ID)
		res.Status = domain.StatusSkipped
		res.ProcessingTime = time.Since(started)
		return res
	}

	prefs, err := a.profile.GetPreferences(ctx, user.User.ID)
	if err != nil {
		return fail(fmt.Errorf("get preferences: %w", err))
	}

	scheduledTexts := postTexts(scheduled)
	styleInput := append(append([]string{}, scheduledTexts...), userMessages...)

	steps := []analysisStep{
		{
			typ:      domain.AnalysisWritingStyle,
			eligible: len(scheduled) >= 2,
			run: func(ctx context.Context) error {
				analysis, aerr := a.ai.AnalyzeWritingStyle(ctx, styleInput, prefs.WritingStyleAnalysis)
				if aerr != nil {
					return aerr
				}
				return a.profile.UpdateWritingStyle(ctx, user.User.ID, analysis)
			},
		},
		{
			typ:      domain.AnalysisTopicsOfInterest,
			eligible: len(scheduled) >= 1,
			run: func(ctx context.Context) error {
				topics, aerr := a.ai.AnalyzeTopicsOfInterest(ctx, styleInput)
				if aerr != nil {
					return aerr
				}
				return a.profile.UpdateTopicsOfInterest(ctx, user.User.ID, topics)
			},
		},
		{
			typ:      domain.AnalysisBioUpdate,
			eligible: len(scheduled) >= 1 && user.User.Bio != "",
			run: func(ctx context.Context) error {
				bio, aerr := a.ai.UpdateUserBio(ctx, user.User.Bio, scheduledTexts)
				if aerr != nil {
					return aerr
				}
				return a.profile.UpdateBio(ctx, user.User.ID, bio)
			},
		},
		{
			typ:      domain.AnalysisNegative,
			eligible: len(dismissed)+len(negative) >= 1,
			run: func(ctx context.Context) error {
				analysis, aerr := a.ai.AnalyzeNegativePatterns(ctx, postTexts(dismissed), postTexts(negative))
				if aerr != nil {
					return aerr
				}
				return a.profile.UpdateNegativeAnalysis(ctx, user.User.ID, analysis)
			},
		},
	}

	totalSteps := 0
	for _, s := range steps {
		if s.eligible {
			totalSteps++
		}
	}
	if totalSteps == 0 {
		res.Status = domain.StatusSkipped
		res.ProcessingTime = time.Since(started)
		return res
	}

	var performed []domain.AnalysisType
	step := 0
	for _, s := range steps {
		if !s.eligible {
			continue
		}
		step++
		if perr := a.tracking.RecordAnalysisProgress(ctx, user.User.ID, domain.Progress{
			Step: step, TotalSteps: totalSteps, CurrentOperation: string(s.typ),
		}); perr != nil {
			lgr.Printf("[WARN] record progress for user %s: %v", user.User.ID, perr)
		}
		if rerr := s.run(ctx); rerr != nil {
			return fail(fmt.Errorf("%s: %w", s.typ, rerr))
		}
		performed = append(performed, s.typ)
	}

	scope := buildScope(content, performed)
	lastPostID, lastMessageID := watermarks(content)
	if cerr := a.tracking.RecordAnalysisCompletion(ctx, user.User.ID, time.Now().UTC(), scope, lastPostID, lastMessageID); cerr != nil {
		return fail(fmt.Errorf("record completion: %w", cerr))
	}

	res.Status = domain.StatusSuccess
	res.AnalysisTypes = performed
	res.Scope = &scope
	res.ProcessingTime = time.Since(started)
	return res
}

// aggregate folds per-user results into a run summary with classified errors
func (a *Analyzer) aggregate(results []domain.UserAnalysisResult, started time.Time) *domain.BatchAnalysisResult {
	res := &domain.BatchAnalysisResult{
		TotalUsers:   len(results),
		StartTime:    started,
		EndTime:      time.Now().UTC(),
		Results:      results,
		ErrorSummary: map[string]int{},
	}

	var failedIDs []string
	for _, r := range results {
		switch r.Status {
		case domain.StatusSuccess:
			res.Successful++
		case domain.StatusSkipped:
			res.Skipped++
		case domain.StatusTimeout:
			res.TimedOut++
			res.ErrorSummary["timeout_error"]++
		case domain.StatusFailed:
			res.Failed++
			res.ErrorSummary[classifyError(r.ErrorMessage)]++
			failedIDs = append(failedIDs, r.UserID)
		}
	}

	if len(failedIDs) > 0 {
		shown := failedIDs
		if len(shown) > 10 {
			shown = shown[:10]
		}
		lgr.Printf("[WARN] %d users failed analysis, first %d: %s", len(failedIDs), len(shown), strings.Join(shown, ", "))
	}
	return res
}

// classifyError buckets a failure message for the run's error summary.
// AI service terms are checked before the generic timeout and database
// categories because provider failures often embed both words.
func classifyError(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "rate limit"):
		return "rate_limit_error"
	case strings.Contains(lower, "quota") || strings.Contains(lower, "provider") || strings.Contains(lower, "all providers failed"):
		return "ai_service_error"
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out") || strings.Contains(lower, "deadline"):
		return "timeout_error"
	case strings.Contains(lower, "database") || strings.Contains(lower, "sql") || strings.Contains(lower, "record analysis") || strings.Contains(lower, "record completion"):
		return "database_error"
	case strings.Contains(lower, "threshold"):
		return "threshold_error"
	default:
		return "unknown_error"
	}
}

// buildScope assembles the completed scope record for one user's run
func buildScope(content *domain.UserContent, performed []domain.AnalysisType) domain.AnalysisScope {
	scope := domain.AnalysisScope{
		Version:       domain.ScopeVersion,
		AnalysisTypes: performed,
	}

	scheduledCount, dismissedCount := 0, 0
	postIDs := make([]string, 0, len(content.Posts))
	for i := range content.Posts {
		postIDs = append(postIDs, content.Posts[i].ID)
		if content.Posts[i].Scheduled() {
			scheduledCount++
		}
		if content.Posts[i].Dismissed() {
			dismissedCount++
		}
	}
	scope.PostsAnalyzed = domain.PostsAnalyzed{
		ScheduledCount: scheduledCount,
		DismissedCount: dismissedCount,
		PostIDs:        postIDs,
		DateRange:      postDateRange(content.Posts),
	}

	messageIDs := make([]string, 0, len(content.Messages))
	for i := range content.Messages {
		messageIDs = append(messageIDs, content.Messages[i].ID)
	}
	scope.MessagesAnalyzed = domain.MessagesAnalyzed{
		TotalCount: len(content.Messages),
		MessageIDs: messageIDs,
		DateRange:  messageDateRange(content.Messages),
	}
	return scope
}

// watermarks returns the ids of the newest post and message covered, nil when
// the run covered none of that kind
func watermarks(content *domain.UserContent) (lastPostID, lastMessageID *string) {
	var latestPost *domain.Post
	for i := range content.Posts {
		if latestPost == nil || content.Posts[i].CreatedAt.After(latestPost.CreatedAt) {
			latestPost = &content.Posts[i]
		}
	}
	if latestPost != nil {
		lastPostID = &latestPost.ID
	}

	var latestMsg *domain.Message
	for i := range content.Messages {
		if latestMsg == nil || content.Messages[i].CreatedAt.After(latestMsg.CreatedAt) {
			latestMsg = &content.Messages[i]
		}
	}
	if latestMsg != nil {
		lastMessageID = &latestMsg.ID
	}
	return lastPostID, lastMessageID
}

func postDateRange(posts []domain.Post) *domain.DateRange {
	if len(posts) == 0 {
		return nil
	}
	r := &domain.DateRange{From: posts[0].CreatedAt, To: posts[0].CreatedAt}
	for i := range posts {
		if posts[i].CreatedAt.Before(r.From) {
			r.From = posts[i].CreatedAt
		}
		if posts[i].CreatedAt.After(r.To) {
			r.To = posts[i].CreatedAt
		}
	}
	return r
}

func messageDateRange(messages []domain.Message) *domain.DateRange {
	if len(messages) == 0 {
		return nil
	}
	r := &domain.DateRange{From: messages[0].CreatedAt, To: messages[0].CreatedAt}
	for i := range messages {
		if messages[i].CreatedAt.Before(r.From) {
			r.From = messages[i].CreatedAt
		}
		if messages[i].CreatedAt.After(r.To) {
			r.To = messages[i].CreatedAt
		}
	}
	return r
}

// postTexts extracts non-empty post bodies
func postTexts(posts []domain.Post) []string {
	res := make([]string, 0, len(posts))
	for i := range posts {
		if posts[i].Content != "" {
			res = append(res, posts[i].Content)
		}
	}
	return res
}

// messageTexts extracts non-empty user-authored message bodies
func messageTexts(messages []domain.Message) []string {
	var res []string
	for i := range messages {
		if messages[i].Role == "user" && messages[i].Content != "" {
			res = append(res, messages[i].Content)
		}
	}
	return res
}
