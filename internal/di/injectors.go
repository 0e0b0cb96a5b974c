//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/km1000101/the-Editors-hub/internal"
	"github.com/km1000101/the-Editors-hub/internal/controllers"
	"github.com/km1000101/the-Editors-hub/internal/news"
	"github.com/km1000101/the-Editors-hub/internal/providers"
	"github.com/km1000101/the-Editors-hub/internal/services"
	"github.com/km1000101/the-Editors-hub/internal/storage"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewMetricsProvider,

		services.NewStoreService,

		storage.NewZstdCompressor,
		storage.NewFileStore,
		storage.NewStateManager,
		storage.NewDraftAutosaver,
		storage.NewScheduler,

		news.NewClient,
		news.NewFeedSource,
		news.NewService,
		wire.Bind(new(storage.NewsRefresher), new(*news.Service)),

		controllers.NewAuthController,
		controllers.NewBlogController,
		controllers.NewNewsController,
		controllers.NewAnalyticsController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
