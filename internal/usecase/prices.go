package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/internal/domain/repository"
	scache "SawitFeed/internal/service/cache"
	"SawitFeed/internal/service/fallback"
	"SawitFeed/pkg/logger"
)

// PriceService is the aggregation facade. Its operations never return
// errors to callers: every failure mode inside the pipeline resolves to
// a usable snapshot (stale cache or fallback data) and the underlying
// cause is logged for operators.
type PriceService struct {
	collector *Collector
	synth     *Synthesizer
	cache     *scache.SnapshotCache
	publisher repository.Publisher
	metrics   repository.Metrics
	log       *logger.Logger

	priceMin int
	priceMax int
}

func NewPriceService(
	collector *Collector,
	synth *Synthesizer,
	cache *scache.SnapshotCache,
	publisher repository.Publisher,
	metrics repository.Metrics,
	log *logger.Logger,
	priceMin, priceMax int,
) *PriceService {
	return &PriceService{
		collector: collector,
		synth:     synth,
		cache:     cache,
		publisher: publisher,
		metrics:   metrics,
		log:       log,
		priceMin:  priceMin,
		priceMax:  priceMax,
	}
}

// GetCurrentPrices returns the cached snapshot when fresh, otherwise
// runs the full pipeline. If the pipeline fails outright the existing
// cache entry stays untouched and this one request is answered with
// freshly computed fallback data.
func (s *PriceService) GetCurrentPrices(ctx context.Context) models.PriceSnapshot {
	snap, err := s.cache.Get(ctx, s.refresh)
	if err != nil {
		s.log.Error("aggregation cycle failed, serving fallback", logger.Error(err))
		s.metrics.RecordFallback()
		return s.fallbackSnapshot(s.synth.months)
	}
	return snap
}

// GetFallbackPrices returns the known-good price set with a synthetic
// history, bypassing both the cache and the sources.
func (s *PriceService) GetFallbackPrices(ctx context.Context) models.PriceSnapshot {
	return s.fallbackSnapshot(s.synth.months)
}

// FallbackSnapshot is GetFallbackPrices with an explicit history
// horizon in months.
func (s *PriceService) FallbackSnapshot(ctx context.Context, months int) models.PriceSnapshot {
	return s.fallbackSnapshot(months)
}

// refresh runs one aggregation cycle: fetch everything, validate and
// rank, synthesize history. An empty validated set is not a failure;
// the fallback set substitutes and the cycle still completes (and is
// cached, matching the upstream behavior). Only an unexpected panic
// surfaces as an error, which leaves the cache untouched.
func (s *PriceService) refresh(ctx context.Context) (snap models.PriceSnapshot, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("aggregation panic: %v", r)
		}
		s.metrics.RecordCycleDuration(time.Since(start).Seconds())
	}()

	pool := s.collector.Collect(ctx)

	current, verr := ValidateAndRank(pool, s.priceMin, s.priceMax)
	switch {
	case errors.Is(verr, ErrNoValidData):
		s.log.Warn("no valid quotes this cycle, substituting fallback data",
			logger.Int("raw_quotes", len(pool)))
		s.metrics.RecordFallback()
		current = fallback.Quotes()
	case verr != nil:
		return models.PriceSnapshot{}, verr
	default:
		for _, q := range current {
			s.metrics.RecordLastPrice(q.Region, float64(q.Price))
		}
		s.publish(ctx, current)
	}

	return models.PriceSnapshot{
		Current:    current,
		Historical: s.synth.Generate(current),
	}, nil
}

// publish forwards real validated quotes downstream. Publish errors
// are logged only; the snapshot is already good.
func (s *PriceService) publish(ctx context.Context, quotes []models.Quote) {
	if s.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.publisher.PublishQuotes(pubCtx, quotes); err != nil {
		s.log.Warn("quote publish failed", logger.Error(err))
	}
}

func (s *PriceService) fallbackSnapshot(months int) models.PriceSnapshot {
	current := fallback.Quotes()
	return models.PriceSnapshot{
		Current:    current,
		Historical: s.synth.GenerateMonths(current, months),
	}
}
