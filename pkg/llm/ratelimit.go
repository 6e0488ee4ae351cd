package llm

import (
	"sync"
	"time"
)

// RateLimitManager enforces sliding-window request limits, per provider and
// globally across all providers. A request is allowed only when both windows
// have room.
type RateLimitManager struct {
	mu          sync.Mutex
	limits      map[string]int
	perProvider map[string][]time.Time
	global      []time.Time
	globalLimit int

	now func() time.Time // injectable for tests
}

// rateLimitWindow is the sliding window over which requests are counted
const rateLimitWindow = time.Minute

// NewRateLimitManager creates a manager with the given global per-minute cap.
// A zero or negative cap disables the global limit.
func NewRateLimitManager(globalLimit int) *RateLimitManager {
	return &RateLimitManager{
		limits:      map[string]int{},
		perProvider: map[string][]time.Time{},
		globalLimit: globalLimit,
		now:         time.Now,
	}
}

// SetLimit sets the per-minute cap for a provider. Zero or negative disables it.
func (m *RateLimitManager) SetLimit(provider string, requestsPerMinute int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.limits[provider] = requestsPerMinute
}

// CheckRateLimit reports whether a request to provider is currently allowed
func (m *RateLimitManager) CheckRateLimit(provider string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.perProvider[provider] = purge(m.perProvider[provider], now)
	m.global = purge(m.global, now)

	if limit := m.limits[provider]; limit > 0 && len(m.perProvider[provider]) >= limit {
		return false
	}
	if m.globalLimit > 0 && len(m.global) >= m.globalLimit {
		return false
	}
	return true
}

// RecordRequest registers a request against both windows
func (m *RateLimitManager) RecordRequest(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.perProvider[provider] = append(purge(m.perProvider[provider], now), now)
	m.global = append(purge(m.global, now), now)
}

// Usage returns the current in-window request count for a provider
func (m *RateLimitManager) Usage(provider string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.perProvider[provider] = purge(m.perProvider[provider], m.now())
	return len(m.perProvider[provider])
}

// purge drops timestamps older than the window
func purge(ts []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rateLimitWindow)
	i := 0
	for ; i < len(ts); i++ {
		if ts[i].After(cutoff) {
			break
		}
	}
	return ts[i:]
}
