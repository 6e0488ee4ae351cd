package llm

import (
	"context"
	"errors"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// AnalysisService runs analysis operations across a provider chain with
// retries. Providers are tried in configured order, each with exponential
// backoff, falling through on persistent failure.
type AnalysisService struct {
	providers []Provider
	retry     config.RetryConfig
}

// NewAnalysisService creates a service over an ordered provider chain
func NewAnalysisService(providers []Provider, retry config.RetryConfig) *AnalysisService {
	return &AnalysisService{providers: providers, retry: retry}
}

// Providers returns the configured chain, primary first
func (s *AnalysisService) Providers() []Provider {
	return s.providers
}

// AnalyzeWritingStyle runs writing style analysis through the chain
func (s *AnalysisService) AnalyzeWritingStyle(ctx context.Context, content []string, existingAnalysis string) (string, error) {
	var result string
	err := s.callProviders(ctx, "writing_style", s.providers, func(ctx context.Context, p Provider) error {
		res, err := p.AnalyzeWritingStyle(ctx, content, existingAnalysis)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// AnalyzeTopicsOfInterest runs topic extraction through the chain
func (s *AnalysisService) AnalyzeTopicsOfInterest(ctx context.Context, content []string) ([]domain.TopicInterest, error) {
	var result []domain.TopicInterest
	err := s.callProviders(ctx, "topics_of_interest", s.providers, func(ctx context.Context, p Provider) error {
		res, err := p.AnalyzeTopicsOfInterest(ctx, content)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// UpdateUserBio runs bio refresh through the chain
func (s *AnalysisService) UpdateUserBio(ctx context.Context, currentBio string, recentContent []string) (string, error) {
	var result string
	err := s.callProviders(ctx, "bio_update", s.providers, func(ctx context.Context, p Provider) error {
		res, err := p.UpdateUserBio(ctx, currentBio, recentContent)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// AnalyzeNegativePatterns runs negative pattern analysis through the chain
func (s *AnalysisService) AnalyzeNegativePatterns(ctx context.Context, dismissedPosts, feedbackPosts []string) (string, error) {
	var result string
	err := s.callProviders(ctx, "negative_analysis", s.providers, func(ctx context.Context, p Provider) error {
		res, err := p.AnalyzeNegativePatterns(ctx, dismissedPosts, feedbackPosts)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// callProviders walks the chain, retrying each provider with backoff before
// moving on. Quota exhaustion skips straight to the next provider.
func (s *AnalysisService) callProviders(ctx context.Context, op string, providers []Provider,
	fn func(ctx context.Context, p Provider) error) error {

	if len(providers) == 0 {
		return &AllProvidersFailedError{Op: op}
	}

	var failures []error
	for _, p := range providers {
		err := s.callWithBackoff(ctx, p, fn)
		if err == nil {
			return nil
		}
		lgr.Printf("[WARN] provider %s failed for %s: %v", p.Name(), op, err)
		failures = append(failures, err)
		if ctx.Err() != nil {
			break
		}
	}
	return &AllProvidersFailedError{Op: op, Errs: failures}
}

// callWithBackoff retries a single provider with exponential delays, honoring
// an explicit retry-after hint when the provider supplies one
func (s *AnalysisService) callWithBackoff(ctx context.Context, p Provider, fn func(ctx context.Context, p Provider) error) error {
	attempts := s.retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := s.retry.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx, p)
		if lastErr == nil {
			return nil
		}
		if IsQuota(lastErr) {
			// retrying won't restore the allowance, fall through to next provider
			return lastErr
		}
		if errors.Is(lastErr, errThrottled) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		wait := delay
		if hint := retryAfterHint(lastErr); hint > 0 {
			wait = hint
		}
		if s.retry.MaxDelay > 0 && wait > s.retry.MaxDelay {
			wait = s.retry.MaxDelay
		}
		if err := sleepCtx(ctx, wait); err != nil {
			return lastErr
		}
		delay *= 2
	}
	return lastErr
}

// sleepCtx waits for d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
