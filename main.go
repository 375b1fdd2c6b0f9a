package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cropconnect-client/api"
	"cropconnect-client/config"
	"cropconnect-client/services"
	"cropconnect-client/storage"
	"cropconnect-client/ui"
	"cropconnect-client/utils"
)

func main() {
	cfg := config.Load()

	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", cfg.LogPath, err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger := utils.NewLogger(logFile)
	logger.Info("=== CropConnect client starting ===")
	logger.Info("Config | api: %s | chat poll: %dms | tick: %dms | state: %s",
		cfg.APIBaseURL, cfg.ChatPollMs, cfg.CountdownTickMs, cfg.StateDir)

	store, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		logger.Error("Failed to open state dir: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to open state dir %s: %v\n", cfg.StateDir, err)
		os.Exit(1)
	}

	client := api.New(cfg, logger)
	geocoder := api.NewGeocoder(cfg)

	app := &ui.App{
		Cfg:      cfg,
		Logger:   logger,
		Store:    store,
		API:      client,
		Catalog:  services.NewCatalog(client, logger),
		Chat:     services.NewChat(client, logger),
		Wishlist: services.NewWishlist(store, logger),
		Location: services.NewLocation(geocoder, logger),
	}

	program := tea.NewProgram(ui.NewModel(app), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("UI crashed: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== CropConnect client exiting ===")
}
