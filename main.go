package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"takt/internal/config"
	"takt/internal/database"
	"takt/internal/logging"
	"takt/internal/storage"
	"takt/internal/traycheck"

	"github.com/wailsapp/wails/v3/pkg/application"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := run(); err != nil {
		slog.Error("takt failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logCloser, err := logging.Setup()
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer logCloser.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Debug {
		logging.EnableDebug()
	}

	if err := traycheck.HealthCheck(); err != nil {
		return err
	}

	trayAssets, err := loadTrayAssets(cfg.IconSize)
	if err != nil {
		return err
	}

	ctx := context.Background()

	dbPath, err := database.Path()
	if err != nil {
		return err
	}
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	placements := storage.NewPlacementStore(storage.NewSettingsService(db))
	placement, err := placements.Load(ctx, cfg.Placement)
	if err != nil {
		return err
	}

	appService := NewApp(cfg, placements)

	app := application.New(application.Options{
		Name:        "Takt",
		Description: "Time tracking from the menu bar",
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Mac: application.MacOptions{
			ActivationPolicy: application.ActivationPolicyAccessory,
		},
	})

	systemTray := app.SystemTray.New()

	window := app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:        "main",
		Title:       "Takt",
		Width:       360,
		Height:      480,
		Hidden:      true,
		AlwaysOnTop: true,
		Frameless:   true,
		Mac: application.MacWindow{
			Backdrop:                application.MacBackdropTranslucent,
			TitleBar:                application.MacTitleBarHiddenInset,
			InvisibleTitleBarHeight: 30,
		},
		URL: "/",
	})

	appService.Attach(app, systemTray, window, trayAssets, placement)

	return app.Run()
}
