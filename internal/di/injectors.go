//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"sentwatch/internal"
	"sentwatch/internal/controllers"
	"sentwatch/internal/fetch"
	"sentwatch/internal/notify"
	"sentwatch/internal/providers"
	"sentwatch/internal/services"
	"sentwatch/internal/state"
	"sentwatch/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		state.NewZstdCompressor,
		state.NewStore,
		state.NewHistory,
		state.NewScheduler,

		fetch.NewWishlistClient,
		fetch.NewLeaderboardClient,
		fetch.NewUIDResolver,
		fetch.NewConsoleCapture,

		notify.NewNotifier,

		services.NewNormalizerService,
		services.NewSnapshotService,
		services.NewEventService,
		services.NewWatchService,
		provideRunner,

		controllers.NewHealthController,
		controllers.NewStateController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
