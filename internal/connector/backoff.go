package connector

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/jeffleon2/draftea-connector-service/config"
)

// calculateBackoff returns the wait before retry number attempt+1: 2^attempt * BaseDelay,
// capped at MaxDelay, with optional +/-15% jitter.
func calculateBackoff(cfg config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * cfg.BaseDelay

	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}

	if cfg.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// timeoutBudget bounds a whole SendRequest call: every attempt may use its own
// request timeout plus one backoff ceiling.
func timeoutBudget(cfg config.RetryConfig, requestTimeout time.Duration) time.Duration {
	return time.Duration(cfg.MaxAttempts) * (requestTimeout + cfg.MaxDelay)
}
