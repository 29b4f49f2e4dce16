package domain

import "time"

// RateLimitResult is the outcome of one fixed-window check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int
	Count     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long the caller should wait before the window resets.
// It is never negative and rounds up to whole seconds.
func (r RateLimitResult) RetryAfter(now time.Time) time.Duration {
	d := r.ResetAt.Sub(now)
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Second) + secondIfFraction(d)
}

func secondIfFraction(d time.Duration) time.Duration {
	if d%time.Second != 0 {
		return time.Second
	}
	return 0
}

// BuildRateLimitKey composes a limiter key from a route and client identifier.
func BuildRateLimitKey(route, identifier string) string {
	return route + ":" + identifier
}
