package repository

import (
	"context"

	"SawitFeed/internal/domain/models"
)

// Source fetches candidate quotes from one external endpoint.
// A Fetch failure must never affect sibling sources; the collector
// absorbs the error and the source simply contributes zero quotes
// for that cycle.
type Source interface {
	Name() models.SourceID
	Fetch(ctx context.Context) ([]models.Quote, error)
}

// Publisher forwards freshly validated quotes to downstream consumers.
type Publisher interface {
	PublishQuotes(ctx context.Context, quotes []models.Quote) error
	Close() error
}

type Metrics interface {
	RecordFetch(source string)
	RecordFetchError(source string)
	RecordQuotes(source string, n int)
	RecordCacheHit()
	RecordCacheMiss()
	RecordFallback()
	RecordLastPrice(region string, price float64)
	RecordCycleDuration(seconds float64)
}
