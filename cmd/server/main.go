// Package main is the entry point for the farebird flight metasearch API.
//
//	@title						Farebird Flight Search API
//	@version					1.0.0
//	@description				A flight metasearch backend that fans out to multiple flight data providers, merges and ranks their offers, and falls back to AI-generated estimates when no real data is available.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/farebird/farebird-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	_ "github.com/farebird/farebird-api/docs"

	apihttp "github.com/farebird/farebird-api/internal/adapter/http"
	"github.com/farebird/farebird-api/internal/adapter/http/middleware"
	"github.com/farebird/farebird-api/internal/adapter/provider/amadeus"
	"github.com/farebird/farebird-api/internal/adapter/provider/duffel"
	"github.com/farebird/farebird-api/internal/adapter/provider/gemini"
	"github.com/farebird/farebird-api/internal/adapter/provider/kiwi"
	"github.com/farebird/farebird-api/internal/config"
	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
	"github.com/farebird/farebird-api/internal/infrastructure/timeutil"
	"github.com/farebird/farebird-api/internal/usecase"
)

const (
	shutdownTimeout   = 10 * time.Second
	httpClientTimeout = 15 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "farebird-api",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	handler := buildHandler(cfg, log)
	apihttp.RegisterRoutes(e, handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildHandler assembles the provider adapters and use cases behind the
// HTTP handler. Provider order is the dedup precedence: when two providers
// return the same flight, the earlier one's offer wins.
func buildHandler(cfg *config.Config, log *logger.Logger) *apihttp.Handler {
	httpClient := &http.Client{Timeout: httpClientTimeout}
	clock := timeutil.NewRealClock()

	amadeusAdapter := amadeus.NewAdapter(amadeus.Config{
		ClientID:     cfg.Providers.Amadeus.ClientID,
		ClientSecret: cfg.Providers.Amadeus.ClientSecret,
		BaseURL:      cfg.Providers.Amadeus.BaseURL,
	}, httpClient, log, clock)

	duffelAdapter := duffel.NewAdapter(duffel.Config{
		APIToken: cfg.Providers.Duffel.APIToken,
		BaseURL:  cfg.Providers.Duffel.BaseURL,
	}, httpClient, log)

	kiwiAdapter := kiwi.NewAdapter(kiwi.Config{
		APIKey:  cfg.Providers.Kiwi.APIKey,
		BaseURL: cfg.Providers.Kiwi.BaseURL,
	}, httpClient, log)

	geminiAdapter := gemini.NewAdapter(gemini.Config{
		APIKey:  cfg.Providers.Gemini.APIKey,
		Model:   cfg.Providers.Gemini.Model,
		BaseURL: cfg.Providers.Gemini.BaseURL,
	}, httpClient, log, clock)

	providers := []domain.OfferProvider{amadeusAdapter, duffelAdapter, kiwiAdapter}

	searchUC := usecase.NewSearchUseCase(providers, geminiAdapter, &usecase.Config{
		GlobalTimeout:   cfg.Timeouts.GlobalSearch,
		ProviderTimeout: cfg.Timeouts.PerProvider,
	}, log)

	matrixUC := usecase.NewMatrixUseCase(searchUC, geminiAdapter, log)

	// Duffel is the only provider whose offers can be refreshed and booked
	bookingUC := usecase.NewBookingUseCase(
		map[string]domain.OfferRefresher{duffelAdapter.Name(): duffelAdapter},
		map[string]domain.OrderCreator{duffelAdapter.Name(): duffelAdapter},
		log,
	)

	dealsUC := usecase.NewDealsUseCase(geminiAdapter, log)
	parser := usecase.NewQueryParser(clock)

	return apihttp.NewHandler(searchUC, matrixUC, bookingUC, dealsUC, parser, log)
}

// gracefulShutdown blocks until an interrupt signal, then drains in-flight
// requests before exiting.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
