package llm

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// HealthStatus is the current classification of a provider
type HealthStatus string

// provider health states
const (
	StatusHealthy       HealthStatus = "healthy"
	StatusUnhealthy     HealthStatus = "unhealthy"
	StatusRateLimited   HealthStatus = "rate_limited"
	StatusQuotaExceeded HealthStatus = "quota_exceeded"
	StatusUnknown       HealthStatus = "unknown"
)

// ProviderHealth is the recorded state of one provider
type ProviderHealth struct {
	Status       HealthStatus  `json:"status"`
	LastCheck    time.Time     `json:"last_check"`
	ErrorCount   int           `json:"error_count"`
	LastError    string        `json:"last_error,omitempty"`
	ResponseTime time.Duration `json:"response_time"`
}

// HealthMonitor tracks provider health via periodic probes
type HealthMonitor struct {
	mu        sync.RWMutex
	providers map[string]Provider
	state     map[string]ProviderHealth
	interval  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHealthMonitor creates a monitor probing at the given interval
func NewHealthMonitor(interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		providers: map[string]Provider{},
		state:     map[string]ProviderHealth{},
		interval:  interval,
	}
}

// Register adds a provider to the monitored set with unknown status
func (h *HealthMonitor) Register(p Provider) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.providers[p.Name()] = p
	if _, ok := h.state[p.Name()]; !ok {
		h.state[p.Name()] = ProviderHealth{Status: StatusUnknown}
	}
}

// Status returns the recorded health for a provider, unknown if never seen
func (h *HealthMonitor) Status(name string) ProviderHealth {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if s, ok := h.state[name]; ok {
		return s
	}
	return ProviderHealth{Status: StatusUnknown}
}

// StatusAll returns a snapshot of all recorded states
func (h *HealthMonitor) StatusAll() map[string]ProviderHealth {
	h.mu.RLock()
	defer h.mu.RUnlock()
	res := make(map[string]ProviderHealth, len(h.state))
	for k, v := range h.state {
		res[k] = v
	}
	return res
}

// CheckProviderHealth probes one provider and records the outcome
func (h *HealthMonitor) CheckProviderHealth(ctx context.Context, p Provider) ProviderHealth {
	start := time.Now()
	err := p.HealthCheck(ctx)
	elapsed := time.Since(start)

	h.mu.Lock()
	defer h.mu.Unlock()

	prev := h.state[p.Name()]
	next := ProviderHealth{
		Status:       StatusHealthy,
		LastCheck:    time.Now(),
		ResponseTime: elapsed,
	}
	if err != nil {
		next.ErrorCount = prev.ErrorCount + 1
		next.LastError = err.Error()
		switch {
		case IsQuota(err):
			next.Status = StatusQuotaExceeded
		case IsRateLimit(err):
			next.Status = StatusRateLimited
		default:
			next.Status = StatusUnhealthy
		}
		lgr.Printf("[WARN] health check failed for %s: %v", p.Name(), err)
	}
	h.state[p.Name()] = next
	return next
}

// CheckAll probes every registered provider
func (h *HealthMonitor) CheckAll(ctx context.Context) {
	h.mu.RLock()
	providers := make([]Provider, 0, len(h.providers))
	for _, p := range h.providers {
		providers = append(providers, p)
	}
	h.mu.RUnlock()

	for _, p := range providers {
		h.CheckProviderHealth(ctx, p)
	}
}

// Start begins the periodic probe loop. The first round runs immediately.
func (h *HealthMonitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.done = make(chan struct{})

	go func() {
		defer close(h.done)
		h.CheckAll(ctx)
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.CheckAll(ctx)
			}
		}
	}()
}

// Stop halts the probe loop and waits for it to exit
func (h *HealthMonitor) Stop() {
	if h.cancel == nil {
		return
	}
	h.cancel()
	<-h.done
}
