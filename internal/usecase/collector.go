package usecase

import (
	"context"
	"sync"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/internal/domain/repository"
	"SawitFeed/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Collector runs one fetch per configured source and merges whatever
// comes back into a single unordered pool. Sources are independent:
// a failing source is logged and counted but never aborts its siblings
// or the cycle. Order of the pool carries no meaning; ranking happens
// downstream.
type Collector struct {
	sources       []repository.Source
	metrics       repository.Metrics
	log           *logger.Logger
	fetchTimeout  time.Duration
	maxConcurrent int
}

func NewCollector(sources []repository.Source, metrics repository.Metrics, log *logger.Logger, fetchTimeout time.Duration, maxConcurrent int) *Collector {
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Collector{
		sources:       sources,
		metrics:       metrics,
		log:           log,
		fetchTimeout:  fetchTimeout,
		maxConcurrent: maxConcurrent,
	}
}

// Collect fans out over all sources with a bounded concurrency limit
// and a per-fetch timeout. Quotes gathered before the caller's context
// is cancelled are still returned, so a cancelled cycle degrades to a
// partial pool rather than nothing.
func (c *Collector) Collect(ctx context.Context) []models.Quote {
	var (
		mu   sync.Mutex
		pool []models.Quote
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)

	for _, src := range c.sources {
		g.Go(func() error {
			name := string(src.Name())
			c.metrics.RecordFetch(name)

			fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
			defer cancel()

			quotes, err := src.Fetch(fetchCtx)
			if err != nil {
				c.metrics.RecordFetchError(name)
				c.log.Warn("source fetch failed",
					logger.String("source", name),
					logger.Error(err),
				)
				return nil
			}

			c.metrics.RecordQuotes(name, len(quotes))
			mu.Lock()
			pool = append(pool, quotes...)
			mu.Unlock()
			return nil
		})
	}

	// Tasks always return nil; failures are absorbed above.
	_ = g.Wait()
	return pool
}
