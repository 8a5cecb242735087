package main

import (
	"log"

	"github.com/MikhailRaia/top4top-converter/internal/app"
	"github.com/MikhailRaia/top4top-converter/internal/config"
	"github.com/MikhailRaia/top4top-converter/internal/logger"
	"github.com/MikhailRaia/top4top-converter/internal/serverless"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	h, err := app.NewHandler(cfg)
	if err != nil {
		log.Fatalf("Error creating handler: %v", err)
	}

	lambda.Start(serverless.NewAdapter(h).Handle)
}
