package main

import (
	"context"
	"fmt"

	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/adapter"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/config"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/handler"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/logger"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/server"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/service"
	"github.com/AleksandrSergeyevich/coursework-taskflow/internal/store"
	"github.com/AleksandrSergeyevich/coursework-taskflow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("taskflow-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("telegram_enabled", cfg.Adapter.Telegram.BotToken != "").
		Bool("github_enabled", cfg.Adapter.GitHub.Token != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, store.StartupOptions{SeedDemoUser: cfg.App.SeedDemoUser}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	chat := adapter.NewTelegramClient(cfg.Adapter.Telegram, cfg.Adapter.RequestTimeout, log)
	tracker := adapter.NewGitHubClient(cfg.Adapter.GitHub, cfg.Adapter.RequestTimeout, log)

	services := service.NewServices(storages, chat, tracker, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
