package crawl

import (
	"context"

	"github.com/docsforge/llmstxt"
	"golang.org/x/time/rate"
)

// Ensure Limiter implements llmstxt.RateLimiter at compile time.
var _ llmstxt.RateLimiter = (*Limiter)(nil)

// Limiter is the token-bucket throttle shared by all outbound fetches of
// a run. Tokens refill at rps per second up to a capacity of burst, so up
// to burst requests may fire back-to-back after an idle period while
// steady-state throughput never exceeds rps.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter with the given refill rate and bucket
// capacity. A burst below 1 is raised to 1.
func NewLimiter(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a token is available. It never rejects; the only
// error condition is context cancellation.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
