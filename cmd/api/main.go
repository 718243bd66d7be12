package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/transcrypt/docs"
	pkgvalidator "github.com/johnquangdev/transcrypt/pkg/validator"

	"github.com/johnquangdev/transcrypt/internal/adapter/handler"
	"github.com/johnquangdev/transcrypt/internal/domain/repositories"
	"github.com/johnquangdev/transcrypt/internal/infrastructure/cache"
	"github.com/johnquangdev/transcrypt/internal/infrastructure/external/stripe"
	"github.com/johnquangdev/transcrypt/internal/infrastructure/external/youtube"
	"github.com/johnquangdev/transcrypt/internal/infrastructure/storage"
	"github.com/johnquangdev/transcrypt/internal/usecase/captions"
	"github.com/johnquangdev/transcrypt/internal/usecase/export"
	"github.com/johnquangdev/transcrypt/internal/usecase/payment"
	"github.com/johnquangdev/transcrypt/internal/usecase/transcript"
	"github.com/johnquangdev/transcrypt/pkg/config"
)

// @title           Transcrypt API
// @version         1.0
// @description     YouTube transcript viewer and exporter: caption proxy, transcript sessions, exports and donations

// @license.name  MIT

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{echo.HeaderContentDisposition, handler.HeaderMarkupWarnings},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	httpClient := &http.Client{Timeout: cfg.YouTube.HTTPTimeout}

	// Caption proxy
	log.Printf("🎬 Initializing caption source (%s)...", cfg.YouTube.CaptionsSource)
	lister := youtube.NewLister(ctx, cfg, httpClient, logger)
	captionService := captions.NewCaptionService(lister,
		captions.WithHTTPClient(httpClient),
		captions.WithTimedTextURL(cfg.YouTube.TimedTextURL),
		captions.WithLogger(logger),
	)

	// Session store
	var sessions repositories.SessionStore
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store := cache.NewRedisStore(redisClient)
		defer store.Close()
		sessions = store
	default:
		log.Println("📦 Using in-memory session store")
		store := cache.NewMemoryStore()
		defer store.Close()
		sessions = store
	}

	// Exports
	log.Println("📄 Initializing exporters...")
	exporters := export.NewDefaultRegistry(export.Site{
		Name: cfg.Export.SiteName,
		URL:  cfg.Export.SiteURL,
	})
	transcriptService := transcript.NewTranscriptService(sessions, captionService, exporters, cfg.Session.TTL, logger)

	var artifacts repositories.ArtifactStore
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage, logger)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		artifacts = minioClient
	} else {
		log.Println("⚠️  Object storage disabled, exports are download only")
	}

	// Donations
	var creator payment.Creator
	if cfg.PaymentsEnabled() {
		log.Println("💳 Initializing Stripe client...")
		creator = stripe.NewClient(cfg.Stripe.SecretKey)
	} else {
		log.Println("⚠️  STRIPE_SECRET_KEY not set, donations disabled")
	}
	paymentService := payment.NewPaymentService(creator,
		payment.WithCurrency(cfg.Stripe.Currency),
		payment.WithLogger(logger),
	)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg,
		handler.NewCaptionHandler(captionService, logger),
		handler.NewTranscriptHandler(transcriptService, artifacts, logger),
		handler.NewPaymentHandler(paymentService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
