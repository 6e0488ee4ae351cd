package analyzer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

func makeUsers(n int) []domain.UserActivity {
	users := make([]domain.UserActivity, n)
	for i := range users {
		users[i] = domain.UserActivity{User: domain.User{ID: "u" + string(rune('0'+i%10)) + string(rune('a'+i/10))}}
	}
	return users
}

func TestBatchProcessor_AllUsersRepresented(t *testing.T) {
	cfg := defaultAnalysisConfig()
	cfg.InitialBatchSize = 10
	p := NewBatchProcessor(cfg)

	var processed int64
	results := p.Process(context.Background(), makeUsers(25), func(ctx context.Context, u domain.UserActivity) domain.UserAnalysisResult {
		atomic.AddInt64(&processed, 1)
		return domain.UserAnalysisResult{UserID: u.User.ID, Status: domain.StatusSuccess}
	})

	assert.Len(t, results, 25)
	assert.EqualValues(t, 25, processed)
	for _, r := range results {
		assert.Equal(t, domain.StatusSuccess, r.Status)
	}
}

func TestBatchProcessor_DeadlineProducesTimeoutResults(t *testing.T) {
	cfg := defaultAnalysisConfig()
	cfg.InitialBatchSize = 10
	cfg.MinBatchSize = 10
	p := NewBatchProcessor(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	results := p.Process(ctx, makeUsers(30), func(ctx context.Context, u domain.UserActivity) domain.UserAnalysisResult {
		select {
		case <-ctx.Done():
			return domain.UserAnalysisResult{UserID: u.User.ID, Status: domain.StatusTimeout, ErrorMessage: "analysis timed out"}
		case <-time.After(30 * time.Millisecond):
			return domain.UserAnalysisResult{UserID: u.User.ID, Status: domain.StatusSuccess}
		}
	})

	require.Len(t, results, 30, "every user gets a result even past the deadline")
	timeouts := 0
	for _, r := range results {
		if r.Status == domain.StatusTimeout {
			timeouts++
		}
	}
	assert.Greater(t, timeouts, 0, "some users must have timed out")
}

func TestBatchProcessor_ShutdownStopsDispatch(t *testing.T) {
	cfg := defaultAnalysisConfig()
	cfg.InitialBatchSize = 10
	cfg.MinBatchSize = 10
	p := NewBatchProcessor(cfg)

	cleaned := false
	p.RegisterCleanup(func() { cleaned = true })

	var count int64
	results := p.Process(context.Background(), makeUsers(30), func(ctx context.Context, u domain.UserActivity) domain.UserAnalysisResult {
		if atomic.AddInt64(&count, 1) == 5 {
			p.Shutdown()
		}
		return domain.UserAnalysisResult{UserID: u.User.ID, Status: domain.StatusSuccess}
	})

	assert.True(t, cleaned, "cleanup ran on shutdown")
	assert.Len(t, results, 30)
	assert.LessOrEqual(t, atomic.LoadInt64(&count), int64(10), "only the first batch was dispatched")

	timeouts := 0
	for _, r := range results {
		if r.Status == domain.StatusTimeout {
			timeouts++
		}
	}
	assert.Equal(t, 20, timeouts, "undispatched users reported as timed out")
}

func TestBatchProcessor_GrowsOnGoodMetrics(t *testing.T) {
	cfg := defaultAnalysisConfig()
	cfg.InitialBatchSize = 50
	cfg.MinThroughput = 0.001
	cfg.MinSuccessRate = 0.5
	cfg.MemoryWarningMB = 1 << 20 // never trip
	p := NewBatchProcessor(cfg)

	startSize := p.BatchSize()
	startConc := p.Concurrency()
	p.adapt(domain.BatchMetrics{BatchSize: 50, Throughput: 10, SuccessRate: 1.0, MemoryMB: 10})

	assert.Equal(t, startSize+startSize/5, p.BatchSize(), "batch grows 20%")
	assert.Equal(t, startConc+1, p.Concurrency())
}

func TestBatchProcessor_ShrinksOnPoorMetrics(t *testing.T) {
	tests := []struct {
		name    string
		metrics domain.BatchMetrics
	}{
		{"memory pressure", domain.BatchMetrics{Throughput: 10, SuccessRate: 1.0, MemoryMB: 1024}},
		{"low throughput", domain.BatchMetrics{Throughput: 0.1, SuccessRate: 1.0, MemoryMB: 10}},
		{"low success rate", domain.BatchMetrics{Throughput: 10, SuccessRate: 0.5, MemoryMB: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBatchProcessor(defaultAnalysisConfig())
			startSize := p.BatchSize()
			startConc := p.Concurrency()
			p.adapt(tt.metrics)
			assert.Equal(t, startSize-startSize/5, p.BatchSize(), "batch shrinks 20%")
			assert.Equal(t, startConc-1, p.Concurrency())
		})
	}
}

func TestBatchProcessor_RespectsBounds(t *testing.T) {
	cfg := defaultAnalysisConfig()
	cfg.InitialBatchSize = 12
	cfg.MinBatchSize = 10
	cfg.MaxBatchSize = 15
	cfg.MinConcurrency = 2
	cfg.MaxConcurrency = 3
	p := NewBatchProcessor(cfg)

	for i := 0; i < 20; i++ {
		p.adapt(domain.BatchMetrics{Throughput: 0.01, SuccessRate: 0.1, MemoryMB: 2048})
	}
	assert.Equal(t, 10, p.BatchSize(), "never below min")
	assert.Equal(t, 2, p.Concurrency())

	for i := 0; i < 20; i++ {
		p.adapt(domain.BatchMetrics{Throughput: 100, SuccessRate: 1.0, MemoryMB: 1})
	}
	assert.Equal(t, 15, p.BatchSize(), "never above max")
	assert.Equal(t, 3, p.Concurrency())
}

func TestBatchProcessor_ConcurrencyLimit(t *testing.T) {
	cfg := defaultAnalysisConfig()
	cfg.InitialBatchSize = 20
	cfg.MinConcurrency = 3
	cfg.MaxConcurrency = 3
	p := NewBatchProcessor(cfg)

	var inFlight, peak int64
	p.Process(context.Background(), makeUsers(20), func(ctx context.Context, u domain.UserActivity) domain.UserAnalysisResult {
		cur := atomic.AddInt64(&inFlight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		return domain.UserAnalysisResult{UserID: u.User.ID, Status: domain.StatusSuccess}
	})

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
}
