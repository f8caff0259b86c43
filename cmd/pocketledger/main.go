package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akerley/pocketledger/internal/adapters/store/memory"
	"github.com/akerley/pocketledger/internal/adapters/store/sqlitekv"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsstore "github.com/akerley/pocketledger/internal/core/ports/store"
	"github.com/akerley/pocketledger/internal/core/services"
	"github.com/akerley/pocketledger/internal/handlers"
	"github.com/akerley/pocketledger/internal/middleware"
	"github.com/akerley/pocketledger/internal/platform/config"
	"github.com/akerley/pocketledger/internal/repositories/blobstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	repos := blobstore.NewRepositoryProvider(st)
	serviceContainer := services.NewServiceContainer(&repos, domain.Currency(cfg.DefaultCurrency))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Block until interrupted, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server exited")
}

// openStore builds the configured blob-store backend. The returned closer is
// a no-op for the memory backend.
func openStore(cfg *config.Config, logger *slog.Logger) (portsstore.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		logger.Warn("Using in-memory store; data will not survive restarts")
		return memory.New(), func() {}, nil
	default:
		st, err := sqlitekv.New(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.DataPath))
		return st, func() {
			if err := st.Close(); err != nil {
				logger.Error("Error closing store", slog.String("error", err.Error()))
			}
		}, nil
	}
}
