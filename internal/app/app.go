package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MikhailRaia/top4top-converter/internal/config"
	"github.com/MikhailRaia/top4top-converter/internal/generator"
	"github.com/MikhailRaia/top4top-converter/internal/handler"
	"github.com/MikhailRaia/top4top-converter/internal/linker"
	"github.com/MikhailRaia/top4top-converter/internal/service"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	handler http.Handler
}

// NewHandler wires the convert handler from configuration.
func NewHandler(cfg *config.Config) (*handler.Handler, error) {
	gen, err := generator.New(cfg.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("create id generator: %w", err)
	}

	synthesizer := linker.NewSynthesizer(cfg.BaseURL, gen)
	convertService := service.NewConvertService(synthesizer)

	return handler.NewHandler(convertService), nil
}

func NewApp(cfg *config.Config) (*App, error) {
	h, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  cfg,
		handler: h.RegisterRoutes(),
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.config.ServerAddress,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("address", a.config.ServerAddress).
			Str("base_url", a.config.BaseURL).
			Str("id_strategy", a.config.IDStrategy).
			Msg("Starting server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}
