package llm

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// EnhancedService layers health-aware candidate selection and rate limiting
// over the retry chain. The primary participates while healthy or unprobed,
// fallbacks only when strictly healthy. If the filter leaves nothing, the
// full chain is used as a last resort.
type EnhancedService struct {
	base    *AnalysisService
	limiter *RateLimitManager
	monitor *HealthMonitor
}

// NewEnhancedService wires a service with its limiter and health monitor
func NewEnhancedService(base *AnalysisService, limiter *RateLimitManager, monitor *HealthMonitor) *EnhancedService {
	return &EnhancedService{base: base, limiter: limiter, monitor: monitor}
}

// Monitor exposes the health monitor for status reporting
func (s *EnhancedService) Monitor() *HealthMonitor {
	return s.monitor
}

// Limiter exposes the rate limit manager
func (s *EnhancedService) Limiter() *RateLimitManager {
	return s.limiter
}

// AnalyzeWritingStyle runs writing style analysis over the eligible candidates
func (s *EnhancedService) AnalyzeWritingStyle(ctx context.Context, content []string, existingAnalysis string) (string, error) {
	var result string
	err := s.call(ctx, "writing_style", func(ctx context.Context, p Provider) error {
		res, err := p.AnalyzeWritingStyle(ctx, content, existingAnalysis)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// AnalyzeTopicsOfInterest runs topic extraction over the eligible candidates
func (s *EnhancedService) AnalyzeTopicsOfInterest(ctx context.Context, content []string) ([]domain.TopicInterest, error) {
	var result []domain.TopicInterest
	err := s.call(ctx, "topics_of_interest", func(ctx context.Context, p Provider) error {
		res, err := p.AnalyzeTopicsOfInterest(ctx, content)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// UpdateUserBio runs bio refresh over the eligible candidates
func (s *EnhancedService) UpdateUserBio(ctx context.Context, currentBio string, recentContent []string) (string, error) {
	var result string
	err := s.call(ctx, "bio_update", func(ctx context.Context, p Provider) error {
		res, err := p.UpdateUserBio(ctx, currentBio, recentContent)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// AnalyzeNegativePatterns runs negative pattern analysis over the eligible candidates
func (s *EnhancedService) AnalyzeNegativePatterns(ctx context.Context, dismissedPosts, feedbackPosts []string) (string, error) {
	var result string
	err := s.call(ctx, "negative_analysis", func(ctx context.Context, p Provider) error {
		res, err := p.AnalyzeNegativePatterns(ctx, dismissedPosts, feedbackPosts)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	return result, err
}

// call selects candidates and delegates to the retry chain, recording
// successful requests against the rate limiter
func (s *EnhancedService) call(ctx context.Context, op string, fn func(ctx context.Context, p Provider) error) error {
	candidates := s.candidates()
	return s.base.callProviders(ctx, op, candidates, func(ctx context.Context, p Provider) error {
		if !s.limiter.CheckRateLimit(p.Name()) {
			lgr.Printf("[DEBUG] provider %s rate limited locally, skipping", p.Name())
			return fmt.Errorf("provider %s: %w", p.Name(), errThrottled)
		}
		if err := fn(ctx, p); err != nil {
			return err
		}
		s.limiter.RecordRequest(p.Name())
		return nil
	})
}

// candidates filters the chain by health. Primary is forgiven unknown status,
// fallbacks must be positively healthy. An empty filter result falls back to
// the whole chain rather than failing outright.
func (s *EnhancedService) candidates() []Provider {
	all := s.base.Providers()
	if len(all) == 0 {
		return nil
	}

	var eligible []Provider
	for i, p := range all {
		status := s.monitor.Status(p.Name()).Status
		if i == 0 {
			if status == StatusHealthy || status == StatusUnknown {
				eligible = append(eligible, p)
			}
			continue
		}
		if status == StatusHealthy {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return all
	}
	return eligible
}

// NewEnhancedServiceFromConfig builds the full provider stack from config
func NewEnhancedServiceFromConfig(cfg config.AIConfig) (*EnhancedService, error) {
	var providers []Provider
	limiter := NewRateLimitManager(cfg.GlobalRequestsPerMinute)
	monitor := NewHealthMonitor(cfg.HealthCheckInterval)

	for _, pc := range cfg.Providers() {
		p, err := NewProvider(pc)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		limiter.SetLimit(p.Name(), pc.RequestsPerMinute)
		monitor.Register(p)
	}

	base := NewAnalysisService(providers, cfg.Retry)
	return NewEnhancedService(base, limiter, monitor), nil
}
