package middleware

import (
	"time"

	"item-service/pkg/log"
)

// Config selects which optional middlewares are active.
type Config struct {
	RequestTimeout   time.Duration
	RateLimitEnabled bool
	RequestsPerMin   int
}

type Middleware struct {
	l              log.Logger
	requestTimeout time.Duration
	limiter        *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		requestTimeout: cfg.RequestTimeout,
	}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
