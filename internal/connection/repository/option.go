package repository

import "time"

// CacheOptions configures the timetable response cache.
type CacheOptions struct {
	Size int           // Max cached queries, 0 disables the cache
	TTL  time.Duration // Lifetime of a cached answer
}
