package llm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RateLimitError indicates the provider throttled the request. RetryAfter
// carries the provider-supplied hint when available, zero otherwise.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider %s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider %s rate limited: %v", e.Provider, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// QuotaError indicates the provider's allowance is exhausted rather than
// momentarily throttled; retrying the same provider is pointless
type QuotaError struct {
	Provider string
	Err      error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("provider %s quota exceeded: %v", e.Provider, e.Err)
}

func (e *QuotaError) Unwrap() error { return e.Err }

// TimeoutError indicates a provider call exceeded its deadline
type TimeoutError struct {
	Provider string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("provider %s timed out: %v", e.Provider, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ProviderError covers all other provider-side failures
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// AllProvidersFailedError is raised after every provider in the chain failed
// for one logical operation
type AllProvidersFailedError struct {
	Op   string
	Errs []error
}

func (e *AllProvidersFailedError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("all providers failed for %s: %s", e.Op, strings.Join(msgs, "; "))
}

func (e *AllProvidersFailedError) Unwrap() []error { return e.Errs }

// errThrottled marks a candidate rejected by the local rate limiter. The
// chain walker falls through to the next provider instead of backing off
// against a window already known to be full.
var errThrottled = errors.New("local rate limit reached")

// IsRateLimit reports whether err is (or wraps) a RateLimitError
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}

// IsQuota reports whether err is (or wraps) a QuotaError
func IsQuota(err error) bool {
	var q *QuotaError
	return errors.As(err, &q)
}

// IsTimeout reports whether err is (or wraps) a TimeoutError
func IsTimeout(err error) bool {
	var t *TimeoutError
	return errors.As(err, &t)
}

// retryAfterHint extracts the provider-supplied retry-after from err, zero
// when absent
func retryAfterHint(err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return rl.RetryAfter
	}
	return 0
}
