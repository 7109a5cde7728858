package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Upstream searches a live job-board API.
type Upstream interface {
	Search(ctx context.Context, f Filters) (*List, error)
}

// Cache stores serialized results with a TTL. Implemented by the store
// package; a nil cache disables caching without changing results.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
}

const (
	cachePrefix     = "jobs:"
	defaultCacheTTL = 5 * time.Minute
)

// Source resolves job lists: cache first, then the upstream API, then the
// built-in static dataset. Scoring results are identical whichever path
// served the list.
type Source struct {
	upstream Upstream
	cache    Cache
	logger   *zap.Logger
	ttl      time.Duration
	now      func() time.Time
}

func NewSource(upstream Upstream, cache Cache, logger *zap.Logger) *Source {
	return &Source{
		upstream: upstream,
		cache:    cache,
		logger:   logger,
		ttl:      defaultCacheTTL,
		now:      time.Now,
	}
}

// Fetch returns postings matching the filters.
func (s *Source) Fetch(ctx context.Context, f Filters) (*List, error) {
	key := cachePrefix + f.CacheKey()

	if s.cache != nil {
		var cached List
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			s.logger.Warn("job cache lookup failed", zap.Error(err))
		}
		if hit {
			s.logger.Debug("returning cached jobs", zap.Int("count", cached.Len()))
			return &cached, nil
		}
	}

	list := s.fetchFresh(ctx, f)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, list, s.ttl); err != nil {
			s.logger.Warn("caching jobs failed", zap.Error(err))
		}
	}

	return list, nil
}

func (s *Source) fetchFresh(ctx context.Context, f Filters) *List {
	if s.upstream != nil {
		list, err := s.upstream.Search(ctx, f)
		if err != nil {
			s.logger.Warn("upstream job search failed, using static dataset", zap.Error(err))
		} else if list.Len() > 0 {
			return list
		}
	}

	return Static(s.now()).Apply(f, s.now())
}
