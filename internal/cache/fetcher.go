package cache

import (
	"context"
	"errors"
	"time"

	"github.com/frostlab/sensormcp/internal/frost"
	"github.com/frostlab/sensormcp/internal/logger"
	"github.com/frostlab/sensormcp/internal/telemetry"
	"github.com/frostlab/sensormcp/internal/util"
)

// keyer is satisfied by fetchers that can render an absolute request URL.
// frost.Client implements it; the URL is the cache key input.
type keyer interface {
	URL(endpoint string, q frost.Query) string
}

// Fetcher wraps a frost.Fetcher with a TTL response cache. CSV responses
// are cached the same way as JSON: the key covers $resultFormat.
type Fetcher struct {
	next    frost.Fetcher
	keys    keyer
	store   Store
	ttl     time.Duration
	metrics *telemetry.MetricsCollector
	log     *logger.Logger
	clock   func() time.Time
}

// NewFetcher creates a caching fetcher around next. next must also be able
// to render request URLs (frost.Client does).
func NewFetcher(next *frost.Client, store Store, ttl time.Duration, metrics *telemetry.MetricsCollector) *Fetcher {
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}
	return &Fetcher{
		next:    next,
		keys:    next,
		store:   store,
		ttl:     ttl,
		metrics: metrics,
		log:     logger.GetLogger("cache"),
		clock:   time.Now,
	}
}

// Fetch consults the cache before going upstream. Cache failures are logged
// and degrade to an upstream fetch rather than failing the request.
func (f *Fetcher) Fetch(ctx context.Context, endpoint string, q frost.Query) ([]byte, error) {
	key := util.CacheKey(f.keys.URL(endpoint, q))
	now := f.clock()

	body, err := f.store.Get(key, now)
	if err == nil {
		f.metrics.IncrementCounter(telemetry.MetricCacheHits, 1)
		return body, nil
	}
	if !errors.Is(err, ErrMiss) {
		f.log.Warn("cache read failed, fetching upstream: %v", err)
	}
	f.metrics.IncrementCounter(telemetry.MetricCacheMisses, 1)

	body, err = f.next.Fetch(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}

	if putErr := f.store.Put(key, body, now, f.ttl); putErr != nil {
		f.log.Warn("cache write failed: %v", putErr)
	} else if size, countErr := f.store.Count(); countErr == nil {
		f.metrics.SetGauge(telemetry.MetricCacheSize, float64(size))
	}

	return body, nil
}
