package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikhailRaia/top4top-converter/internal/app"
	"github.com/MikhailRaia/top4top-converter/internal/config"
	"github.com/MikhailRaia/top4top-converter/internal/logger"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Error creating application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Error running application: %v", err)
	}
}
