// ABOUTME: Backoff helper for retrying language-model gateway calls
// ABOUTME: Exponential delay with jitter, capped to keep requests bounded
package util

import (
	"math/rand"
	"time"
)

// Backoff returns the delay before the given retry attempt: base doubled per
// attempt with up to +/-25% jitter, capped at 30 seconds. Attempt 0 (the
// first call) and a non-positive base wait nothing.
func Backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 || attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	delay := base * time.Duration(1<<uint(attempt))
	if delay > 30*time.Second {
		delay = 30 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/2)) - delay/4
	return delay + jitter
}
