package internal

import (
	"context"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"os"
	"os/signal"
	"sentwatch/internal/controllers"
	"sentwatch/internal/providers"
	"sentwatch/internal/services"
	"sentwatch/internal/state/interfaces"
	"sentwatch/internal/structures"
	"strconv"
	"syscall"
	"time"
)

type App struct {
	WebServer *http.Server
}

func NewApp(healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, watch services.WatchServiceInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	if conf.Once {
		// One-shot mode: a single watch cycle, no server, no schedule.
		// Only the fatal shared-fetch failure surfaces as an error.
		if err := watch.RunOnce(context.Background()); err != nil {
			return nil, fmt.Errorf("watch run failed: %w", err)
		}
		logger.Infof(providers.TypeApp, "Single watch cycle complete")
		return &App{}, nil
	}

	// Inner mux: state API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return nil, fmt.Errorf("server error: %w", err)
	}

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
