package main

import (
	"context"
	"time"

	"github.com/csvdeck/csvdeck-api/internal/app"
	"github.com/csvdeck/csvdeck-api/internal/config"
	"github.com/csvdeck/csvdeck-api/internal/engine"
	"github.com/csvdeck/csvdeck-api/internal/server"
	"github.com/rs/zerolog"
)

func main() {
	application, err := initialize()
	if err != nil {
		panic(err)
	}

	if err = application.Run(context.Background()); err != nil {
		panic(err)
	}
}

func initialize() (*app.App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var deps []app.Dependency

	// the dataset engine holds the single in-memory table all endpoints serve
	datasetEngine, err := engine.New(&engine.Config{
		MaxPageLimit: cfg.MaxPageLimit,
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, datasetEngine)

	// create the CSVDeck HTTP server
	srv, err := server.New(&server.Config{
		Address:          cfg.ServerAddress,
		Port:             cfg.ServerPort,
		Dataset:          datasetEngine,
		MaxUploadBytes:   int64(cfg.MaxUploadMB) << 20,
		DefaultPageLimit: cfg.DefaultPageLimit,
	})
	if err != nil {
		return nil, err
	}
	deps = append(deps, srv)

	application, err := app.CreateApp(&app.Config{
		ServiceName: "CSVDeck API",
		StopTimeout: 5 * time.Second,
	}, deps...)
	if err != nil {
		return nil, err
	}

	return application, nil
}
