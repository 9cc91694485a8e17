// Package ratelimiter provides token bucket rate limiting with an in-memory
// store and chi-compatible HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP(), log))
//
// Rejected requests get 429 with Retry-After. Every limited response carries
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset.
package ratelimiter
