package analyzer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/promptly-social/activity-analyzer/pkg/analyzer/mocks"
	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

func TestScheduler_RecoveryRunsImmediatelyAndPeriodically(t *testing.T) {
	var recoveries int64
	tracking := &mocks.TrackingStoreMock{
		BatchRecoverInterruptedAnalysesFunc: func(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error) {
			atomic.AddInt64(&recoveries, 1)
			assert.Equal(t, 60, timeoutMinutes)
			assert.Equal(t, 50, maxRecoveries)
			return &domain.RecoveryResult{}, nil
		},
	}
	activity := &mocks.ActivityStoreMock{
		GetActiveUsersFunc: func(ctx context.Context) ([]domain.User, error) { return nil, nil },
	}

	a := NewAnalyzer(activity, tracking, &mocks.ProfileStoreMock{}, &mocks.AIServiceMock{}, defaultAnalysisConfig())
	s := NewScheduler(a, config.ScheduleConfig{
		RunInterval:      time.Hour,
		RecoveryInterval: 20 * time.Millisecond,
		RecoveryTimeout:  60,
		MaxRecoveries:    50,
	}, defaultAnalysisConfig())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt64(&recoveries) >= 2 },
		time.Second, 5*time.Millisecond, "immediate pass plus at least one periodic pass")
	s.Stop()
}

func TestScheduler_RunLoopExecutesAnalysis(t *testing.T) {
	var runs int64
	tracking := &mocks.TrackingStoreMock{
		BatchRecoverInterruptedAnalysesFunc: func(ctx context.Context, timeoutMinutes, maxRecoveries int) (*domain.RecoveryResult, error) {
			return &domain.RecoveryResult{}, nil
		},
		GetLastAnalysisTimestampFunc: func(ctx context.Context, userID string) (*time.Time, error) { return nil, nil },
	}
	activity := &mocks.ActivityStoreMock{
		GetActiveUsersFunc: func(ctx context.Context) ([]domain.User, error) {
			atomic.AddInt64(&runs, 1)
			return nil, nil
		},
	}

	a := NewAnalyzer(activity, tracking, &mocks.ProfileStoreMock{}, &mocks.AIServiceMock{}, defaultAnalysisConfig())
	s := NewScheduler(a, config.ScheduleConfig{
		RunInterval:      15 * time.Millisecond,
		RecoveryInterval: time.Hour,
		RecoveryTimeout:  60,
		MaxRecoveries:    50,
	}, defaultAnalysisConfig())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt64(&runs) >= 2 },
		time.Second, 5*time.Millisecond)
	s.Stop()
}
