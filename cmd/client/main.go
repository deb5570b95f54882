package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/soilstack/fieldsync/internal/adapter"
	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/service"
	"github.com/soilstack/fieldsync/internal/store"
	"github.com/soilstack/fieldsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fieldsync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(cfg.KV, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	// A headless daemon has no platform connectivity or lifecycle signals,
	// so it runs as permanently online and foregrounded.
	state := appstate.NewMonitor()
	state.SetOnline(true)
	state.SetForeground(true)

	services := service.NewClientServices(localStorage, serverAdapter, state, cfg.Sync, log)

	engine := workers.NewWorkers(
		services.PushDispatcher,
		services.PullDispatcher,
		workers.Func{
			StartFunc: func(context.Context) {
				services.PullRequester.StartInterval(cfg.Sync.PullInterval)
			},
			StopFunc: services.PullRequester.Stop,
		},
	)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	log.Info().Msg("launching sync engine")
	engine.Start(ctx)

	<-ctx.Done()
	engine.Stop()
	log.Info().Msg("sync engine shut down gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
