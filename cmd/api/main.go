package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ethnic-elite/internal/catalog"
	"ethnic-elite/internal/config"
	"ethnic-elite/internal/database"
	"ethnic-elite/internal/handler"
	"ethnic-elite/internal/ledger"
	"ethnic-elite/internal/payment"
	"ethnic-elite/internal/router"
	"ethnic-elite/internal/service"
	"ethnic-elite/internal/session"
	"ethnic-elite/internal/stylist"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting ethnic-elite storefront server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the product catalogue
	store, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}
	logger.Info().Int("products", store.Len()).Msg("catalogue ready")

	// Initialize the style advisor, falling back to the fallback-only
	// advisor when Gemini is not configured
	var advisor stylist.Advisor
	if cfg.Stylist.APIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set, stylist will answer with the fallback recommendation")
		advisor = stylist.NewUnavailableAdvisor()
	} else {
		gemini, err := stylist.NewGeminiAdvisor(ctx, cfg.Stylist.APIKey, cfg.Stylist.Model, cfg.Stylist.Temperature, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise Gemini advisor, stylist will answer with the fallback recommendation")
			advisor = stylist.NewUnavailableAdvisor()
		} else {
			advisor = gemini
		}
	}

	// Initialize the payment gateway and identifier generator
	gateway := payment.NewSimulatedGateway(cfg.Checkout.ProcessingDelay, logger)
	ids := ledger.NewGenerator()

	// Initialize the session manager
	sessions := session.NewManager(gateway, ids, advisor, store.Summary(), cfg.Stylist.Timeout, logger)

	// Initialize services
	productService := service.NewProductService(store, logger)
	cartService := service.NewCartService(sessions, store, logger)
	checkoutService := service.NewCheckoutService(sessions, cfg.Checkout.ConfirmTimeout, logger)
	orderService := service.NewOrderService(sessions, logger)
	stylistService := service.NewStylistService(sessions, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Session:  handler.NewSessionHandler(sessions, logger),
		Product:  handler.NewProductHandler(productService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Stylist:  handler.NewStylistHandler(stylistService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog builds the catalogue store from the configured source. S3
// and Postgres sources fall back to the local products file when their
// backend cannot be reached.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Store, error) {
	fileLoader := catalog.NewFileLoader(cfg.Catalog.FilePath, logger)
	loader := fileLoader

	switch cfg.Catalog.Source {
	case config.CatalogSourceS3:
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Key, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalogue loader, falling back to local file")
		} else {
			loader = s3Loader
		}

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to connect to postgres, falling back to local catalogue file")
		} else {
			defer pool.Close()
			loader = catalog.NewPostgresLoader(pool, logger)
		}

	default:
		logger.Info().Str("file", cfg.Catalog.FilePath).Msg("using local catalogue file")
	}

	products, err := loader.Load(ctx)
	if err != nil && loader != fileLoader {
		logger.Warn().
			Err(err).
			Msg("catalogue load failed, falling back to local file")
		products, err = fileLoader.Load(ctx)
	}
	if err != nil {
		return nil, err
	}

	return catalog.NewStore(products)
}
