package llm

import (
	"context"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider

// Provider is one AI completion backend implementing the analysis operations.
// Implementations classify their failures into the package error taxonomy:
// RateLimitError, QuotaError, TimeoutError or ProviderError.
type Provider interface {
	// Name returns the provider identifier used in logs and rate limiting
	Name() string

	// AnalyzeWritingStyle derives a writing-style description from content
	// samples, refining an existing analysis when provided
	AnalyzeWritingStyle(ctx context.Context, content []string, existingAnalysis string) (string, error)

	// AnalyzeTopicsOfInterest derives a bounded topic list from content samples
	AnalyzeTopicsOfInterest(ctx context.Context, content []string) ([]domain.TopicInterest, error)

	// UpdateUserBio refreshes the user's bio based on recent content
	UpdateUserBio(ctx context.Context, currentBio string, recentContent []string) (string, error)

	// AnalyzeNegativePatterns summarizes what the user rejects. Posts with
	// explicit negative feedback are passed separately from plain dismissals.
	AnalyzeNegativePatterns(ctx context.Context, dismissedPosts, feedbackPosts []string) (string, error)

	// MakeAnalysisRequest sends a raw prompt/content pair for one analysis type
	MakeAnalysisRequest(ctx context.Context, prompt, content string, analysisType domain.AnalysisType) (string, error)

	// HealthCheck probes the provider with a minimal canned prompt
	HealthCheck(ctx context.Context) error
}
