//go:build wireinject
// +build wireinject

package di

import (
	"SawitFeed/pkg/config"
	"SawitFeed/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Outbound infrastructure
		ProvideHTTPClient,
		ProvideSources,
		ProvidePublisher,
		ProvideSnapshotCache,

		// Use cases
		ProvideCollector,
		ProvideSynthesizer,
		ProvidePriceService,

		// Transport
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
