package di

import (
	"fmt"
	"math/rand"
	"time"

	"SawitFeed/internal/domain/repository"
	"SawitFeed/internal/handler/api"
	internalrepo "SawitFeed/internal/repository"
	scache "SawitFeed/internal/service/cache"
	"SawitFeed/internal/service/sources"
	"SawitFeed/internal/usecase"
	pkgcache "SawitFeed/pkg/cache"
	"SawitFeed/pkg/config"
	xhttp "SawitFeed/pkg/http"
	pkgkafka "SawitFeed/pkg/kafka"
	"SawitFeed/pkg/logger"
	"SawitFeed/pkg/metrics"
	"SawitFeed/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound client shared by all sources.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(
		xhttp.WithTimeout(cfg.Aggregation.FetchTimeout),
		xhttp.WithUserAgent(cfg.Aggregation.UserAgent),
	)
}

// ProvideSources builds the configured source list.
func ProvideSources(cfg *config.Config, client *xhttp.Client) ([]repository.Source, error) {
	srcs, err := sources.Build(cfg.Sources, client)
	if err != nil {
		return nil, fmt.Errorf("build sources: %w", err)
	}
	return srcs, nil
}

// ProvideCollector creates the fan-out fetch driver.
func ProvideCollector(srcs []repository.Source, m repository.Metrics, log *logger.Logger, cfg *config.Config) *usecase.Collector {
	return usecase.NewCollector(srcs, m, log,
		cfg.Aggregation.FetchTimeout,
		cfg.Aggregation.MaxConcurrent,
	)
}

// ProvideSynthesizer creates the historical series generator.
func ProvideSynthesizer(cfg *config.Config) *usecase.Synthesizer {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return usecase.NewSynthesizer(cfg.Aggregation.HistoryMonths, rng)
}

// ProvideSnapshotCache creates the snapshot cache, with a Redis second
// level when configured.
func ProvideSnapshotCache(cfg *config.Config, m repository.Metrics) (*scache.SnapshotCache, error) {
	var opts []scache.Option
	if cfg.Redis.Enabled {
		l2, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Redis.Addr),
			pkgcache.WithRedisPassword(cfg.Redis.Password),
			pkgcache.WithRedisDB(cfg.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		opts = append(opts, scache.WithL2(l2))
	}
	return scache.NewSnapshotCache(cfg.Aggregation.CacheTTL, m, opts...), nil
}

// ProvidePublisher creates the Kafka quote publisher, nil when disabled.
func ProvidePublisher(cfg *config.Config) (repository.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaQuotePublisher(producer, cfg.Kafka.Topic), nil
}

// ProvidePriceService creates the aggregation facade.
func ProvidePriceService(
	collector *usecase.Collector,
	synth *usecase.Synthesizer,
	cache *scache.SnapshotCache,
	publisher repository.Publisher,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.PriceService {
	return usecase.NewPriceService(collector, synth, cache, publisher, m, log,
		cfg.Aggregation.PriceMin,
		cfg.Aggregation.PriceMax,
	)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(log *logger.Logger, svc *usecase.PriceService) *api.PricesEchoHandler {
	return api.NewPricesEchoHandler(log, svc)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *logger.Logger, handler *api.PricesEchoHandler, publisher repository.Publisher) *server.App {
	return server.New(cfg, log, handler, publisher)
}
