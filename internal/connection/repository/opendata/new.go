package opendata

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"fahrplan/internal/connection/repository"
	"fahrplan/internal/model"
	pkgLog "fahrplan/pkg/log"
)

type implRepository struct {
	client *Client
	cache  *expirable.LRU[string, model.Timetable]
	l      pkgLog.Logger
}

// New creates a new timetable repository backed by the opendata API.
func New(client *Client, cacheOpt repository.CacheOptions, l pkgLog.Logger) repository.TimetableRepository {
	r := &implRepository{
		client: client,
		l:      l,
	}
	if cacheOpt.Size > 0 && cacheOpt.TTL > 0 {
		r.cache = expirable.NewLRU[string, model.Timetable](cacheOpt.Size, nil, cacheOpt.TTL)
	}
	return r
}
