package analyzer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/promptly-social/activity-analyzer/pkg/config"
	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// UserAnalyzeFunc processes one user and always produces a result, failures included
type UserAnalyzeFunc func(ctx context.Context, user domain.UserActivity) domain.UserAnalysisResult

// BatchProcessor runs user analyses in adaptively sized concurrent batches.
// After each batch it inspects throughput, success rate and memory pressure
// and steers batch size and concurrency for the next one.
type BatchProcessor struct {
	cfg config.AnalysisConfig

	mu          sync.Mutex
	batchSize   int
	concurrency int
	lastMetrics domain.BatchMetrics

	shuttingDown atomic.Bool
	cleanups     []func()
}

// NewBatchProcessor creates a processor starting at the configured initial
// batch size, concurrency starting midway between the configured bounds
func NewBatchProcessor(cfg config.AnalysisConfig) *BatchProcessor {
	return &BatchProcessor{
		cfg:         cfg,
		batchSize:   cfg.InitialBatchSize,
		concurrency: (cfg.MinConcurrency + cfg.MaxConcurrency) / 2,
	}
}

// Process runs fn for every user in adaptive batches. Users not reached
// before the context expires or shutdown is requested get timeout results,
// so every input user is represented in the output exactly once.
func (p *BatchProcessor) Process(ctx context.Context, users []domain.UserActivity, fn UserAnalyzeFunc) []domain.UserAnalysisResult {
	results := make([]domain.UserAnalysisResult, 0, len(users))

	for start := 0; start < len(users); {
		if p.shuttingDown.Load() || ctx.Err() != nil {
			break
		}

		end := start + p.BatchSize()
		if end > len(users) {
			end = len(users)
		}
		batch := users[start:end]
		concurrency := p.Concurrency()
		lgr.Printf("[DEBUG] processing batch of %d users, concurrency %d", len(batch), concurrency)

		batchStart := time.Now()
		out := make([]domain.UserAnalysisResult, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, u := range batch {
			g.Go(func() error {
				out[i] = fn(gctx, u)
				return nil
			})
		}
		_ = g.Wait() // workers report through results, never through errors

		results = append(results, out...)
		p.adapt(p.measure(out, concurrency, time.Since(batchStart)))
		start = end
	}

	// whoever was never dispatched still gets an answer
	for _, u := range users[len(results):] {
		results = append(results, domain.UserAnalysisResult{
			UserID:       u.User.ID,
			Email:        u.User.Email,
			Status:       domain.StatusTimeout,
			ErrorMessage: "analysis run ended before user was processed",
		})
	}
	return results
}

// Shutdown stops dispatching new batches and runs registered cleanups.
// In-flight users finish normally.
func (p *BatchProcessor) Shutdown() {
	if !p.shuttingDown.CompareAndSwap(false, true) {
		return
	}
	p.mu.Lock()
	cleanups := p.cleanups
	p.mu.Unlock()
	for _, fn := range cleanups {
		fn()
	}
}

// RegisterCleanup adds a function to run once on shutdown
func (p *BatchProcessor) RegisterCleanup(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cleanups = append(p.cleanups, fn)
}

// BatchSize returns the current adaptive batch size
func (p *BatchProcessor) BatchSize() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.batchSize
}

// Concurrency returns the current adaptive concurrency
func (p *BatchProcessor) Concurrency() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.concurrency
}

// LastMetrics returns the metrics of the most recent batch
func (p *BatchProcessor) LastMetrics() domain.BatchMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastMetrics
}

// measure builds metrics for a finished batch
func (p *BatchProcessor) measure(results []domain.UserAnalysisResult, concurrency int, elapsed time.Duration) domain.BatchMetrics {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	successes := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess || r.Status == domain.StatusSkipped {
			successes++
		}
	}

	m := domain.BatchMetrics{
		BatchSize:       len(results),
		ProcessingTime:  elapsed,
		MemoryMB:        float64(mem.Alloc) / (1024 * 1024),
		ConcurrentTasks: concurrency,
	}
	if elapsed > 0 {
		m.Throughput = float64(len(results)) / elapsed.Seconds()
	}
	if len(results) > 0 {
		m.SuccessRate = float64(successes) / float64(len(results))
	}
	return m
}

// adapt steers batch size and concurrency from the last batch's metrics.
// Memory pressure wins over performance signals.
func (p *BatchProcessor) adapt(m domain.BatchMetrics) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastMetrics = m

	grow := true
	switch {
	case p.cfg.MemoryWarningMB > 0 && m.MemoryMB > float64(p.cfg.MemoryWarningMB):
		grow = false
	case m.Throughput < p.cfg.MinThroughput:
		grow = false
	case m.SuccessRate < p.cfg.MinSuccessRate:
		grow = false
	}

	prevSize, prevConc := p.batchSize, p.concurrency
	if grow {
		p.batchSize += p.batchSize / 5
		p.concurrency++
	} else {
		p.batchSize -= p.batchSize / 5
		p.concurrency--
	}
	p.batchSize = clamp(p.batchSize, p.cfg.MinBatchSize, p.cfg.MaxBatchSize)
	p.concurrency = clamp(p.concurrency, p.cfg.MinConcurrency, p.cfg.MaxConcurrency)

	if p.batchSize != prevSize || p.concurrency != prevConc {
		lgr.Printf("[DEBUG] batch tuning: size %d -> %d, concurrency %d -> %d (throughput %.2f/s, success %.0f%%, mem %.0fMB)",
			prevSize, p.batchSize, prevConc, p.concurrency, m.Throughput, m.SuccessRate*100, m.MemoryMB)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
