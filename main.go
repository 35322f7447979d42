// @title FarmFresh Poultry API
// @version 1.0
// @description Storefront API for FarmFresh Poultry: catalog, cart, wishlist, checkout and farm content
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	category_cache "github.com/mwakidenis/FarmFresh-Poultry-Products/cache"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/catalog"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/checkout"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/clock"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/config"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/content"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/auth_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/cart_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/category_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/checkout_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/content_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/filter_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/form_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/product_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/controllers/ecommerce/wishlist_controller"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/middleware"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/routes/ecommerce_routes"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/services"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/session"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const (
	serviceName = "farmfresh-api"

	// In-memory sessions idle this long are dropped; their cart, wishlist
	// and user stay in the store and come back on the next request.
	sessionIdleLimit = 2 * time.Hour
	sweepInterval    = 10 * time.Minute
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.Setup(serviceName, cfg.TracingEnabled, os.Stdout)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := config.WithTimeout()
	backends, err := config.OpenBackends(connectCtx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer backends.Close()
	logger.Info("✅ Session store ready", zap.String("backend", cfg.StorageBackend))

	products, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	posts, err := content.Load()
	if err != nil {
		logger.Fatal("Failed to load content", zap.Error(err))
	}

	// ✅ Initialize JWT Service for session tokens
	tokens, err := services.NewSessionTokens(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		logger.Fatal("Failed to initialize JWT service", zap.Error(err))
	}

	loginDelay, paymentDelay := cfg.LoginDelay, cfg.PaymentDelay
	if !cfg.SimulateDelays {
		loginDelay, paymentDelay = 0, 0
	}
	clk, rnd := clock.Real(), clock.SystemRandom()
	payer := checkout.NewMobileMoneySimulator(clk, rnd, paymentDelay, cfg.PaymentSuccessRate, logger)
	registry := session.NewRegistry(backends.Store, session.Options{
		Clock:      clk,
		Random:     rnd,
		LoginDelay: loginDelay,
		Payer:      payer,
	}, logger)

	site := cfg.Site()
	summaries := category_cache.New(category_cache.TTL)
	relay := services.NewFormRelay(cfg.FormRelayURL, cfg.FormRecipient, nil, logger)

	var formLimiter gin.HandlerFunc
	if cfg.RateLimitEnabled {
		formLimiter = middleware.RateLimiter(backends.Redis, cfg.RateLimitMax, cfg.RateLimitWindow, logger)
	}

	router := ecommerce_routes.NewRouter(ecommerce_routes.RouterConfig{
		Controllers: ecommerce_routes.Controllers{
			Products:   product_controller.New(products, logger),
			Categories: category_controller.New(products, summaries, logger),
			Filters:    filter_controller.New(products, summaries),
			Cart:       cart_controller.New(products, logger),
			Wishlist:   wishlist_controller.New(products, logger),
			Auth:       auth_controller.New(logger),
			Checkout:   checkout_controller.New(site, category_cache.NewReceipts(category_cache.TTL), logger),
			Content:    content_controller.New(posts, site),
			Forms:      form_controller.New(relay, clk, logger),
		},
		Tokens:   tokens,
		Sessions: registry,
		SessionOptions: middleware.SessionOptions{
			TTL:          cfg.SessionTTL,
			SecureCookie: cfg.IsProduction(),
		},
		AllowedOrigins: cfg.AllowedOrigins,
		FormLimiter:    formLimiter,
		Logger:         logger,
		ErrorReporting: cfg.Features.ErrorReporting,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go sweepSessions(ctx, registry, logger)

	go func() {
		logger.Info("🚀 Server is running", zap.String("url", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancelShutdown := config.WithTimeout()
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("Tracing shutdown failed", zap.Error(err))
	}
}

func sweepSessions(ctx context.Context, registry *session.Registry, logger *zap.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Sweep(sessionIdleLimit); n > 0 {
				logger.Debug("[session.sweep] dropped idle sessions", zap.Int("count", n), zap.Int("live", registry.Len()))
			}
		}
	}
}
