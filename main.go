package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/briangreenhill/mapty/internal/config"
	"github.com/briangreenhill/mapty/internal/storage"
	"github.com/briangreenhill/mapty/internal/workout"
	"github.com/joho/godotenv"
)

const attribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

func main() {
	w := os.Stdout
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{}))

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", slog.Any("error", err))
	}
	cfg := config.Load()

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("Error opening storage", slog.String("storage", cfg.Storage), slog.Any("error", err))
		os.Exit(1)
	}
	defer backend.Close()

	if err := run(ctx, w, os.Args[1:], cfg, backend, logger); err != nil {
		logger.Error("Error running mapty", slog.Any("error", err))
		return
	}
}

func run(ctx context.Context, w io.Writer, args []string, cfg config.Config, kv workout.KeyValue, logger *slog.Logger) error {
	persister := workout.NewPersister(kv, logger)
	service := workout.NewService(persister, logger, cfg.MapZoom)

	var locator workout.StaticLocator
	if cfg.HasHome {
		locator.Position = &workout.Coords{Lat: cfg.HomeLat, Lng: cfg.HomeLng}
	}
	service.Start(ctx, locator)

	cli := workout.NewCLI(w, logger, service, cfg.HTTPAddress, workout.MapSettings{
		UIDir:       cfg.UIDir,
		TileURL:     cfg.TileURL,
		Attribution: attribution,
	})

	return cli.Run(ctx, args)
}
