//go:build wireinject
// +build wireinject

package di

import (
	"StonkWatch/pkg/config"
	"StonkWatch/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideBlobStore,
		ProvideCalendar,
		ProvideCacheStore,

		// Provider clients
		ProvideGovDataFeed,
		ProvideQuoteFeed,
		ProvideNewsFeed,
		ProvideMarketFeed,

		// Domain
		ProvideAggregator,
		ProvideWatchlist,

		// Use cases
		ProvideDashboard,
		ProvideWatchlistService,

		// HTTP surface
		ProvideRouter,
		ProvideApp,
	)
	return &server.App{}, nil
}
