package ratelimit

// LimitConfig bounds how often one actor may perform an action.
// A zero limit disables that window.
type LimitConfig struct {
	PerMinute int
	PerHour   int
}

type RateLimiter interface {
	Allow(key string, config LimitConfig) (bool, error)
	Reset(key string) error
}
