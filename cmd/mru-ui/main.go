package main

import (
	"log"

	"mru-ui/internal/app"
	"mru-ui/internal/config"
	"mru-ui/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(logger.Options{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.JSON,
	})

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", err, nil)
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		appLogger.Error("Main", err, nil)
		log.Fatalf("Application execution failed: %v", err)
	}
}
