package main

import (
	"log"

	"github.com/joho/godotenv"

	"personadash/app"
	"personadash/internal/config"
	"personadash/ui"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	patterns, rules, err := cfg.LoadTables()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	pipeline, err := app.NewPipeline(patterns, rules)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	webApp, err := ui.NewApp(pipeline, ui.Config{MaxUploadBytes: cfg.Upload.MaxBytes})
	if err != nil {
		log.Fatalf("failed to build web app: %v", err)
	}

	if err := webApp.Start(cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
