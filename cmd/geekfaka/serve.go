package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/geekfaka/storefront/internal/api"
	"github.com/geekfaka/storefront/internal/api/handlers"
	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	"github.com/geekfaka/storefront/internal/health"
	repository "github.com/geekfaka/storefront/internal/repositories"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/telemetry"
	"github.com/geekfaka/storefront/pkg/sendgrid"
	"github.com/geekfaka/storefront/pkg/stripe"
	"github.com/spf13/cobra"
)

var migrateOnStart bool

// geekfaka serve: start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply the schema before serving")
}

func serve(ctx context.Context) error {

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		return err
	}

	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		return err
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if migrateOnStart {
		if err := repository.Migrate(ctx, repos.DB); err != nil {
			slog.Error("❌ Error applying the schema", slog.String("error", err.Error()))
			return err
		}
	}

	// Redis setup, shared by the cache and the login limiter
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		return err
	}
	defer redisClient.Close()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	limiter := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)

	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret, cfg.Stripe.Currency)
	sendGridClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	categoryService := service.NewCategoryService(repos.Categories, redisCache)
	productService := service.NewProductService(repos.Products, redisCache)
	discountService := service.NewDiscountService(repos.Discounts, redisCache)
	couponService := service.NewCouponService(repos.Coupons, repos.Products)
	pricingService := service.NewPricingService(repos.Discounts, couponService)
	catalogService := service.NewCatalogService(repos.Catalog, repos.Products, repos.Discounts, repos.Licenses, redisCache, cfg.Cache.CatalogTTL)
	licenseService := service.NewLicenseService(repos.Licenses, repos.Products, redisCache)
	orderService := service.NewOrderService(repos.Orders, repos.Products, pricingService, stripeClient, sendGridClient, redisCache)
	articleService := service.NewArticleService(repos.Articles, redisCache)
	settingService := service.NewSettingService(repos.Settings, redisCache, cfg.Store.DefaultTitle)
	authService := service.NewAuthService(limiter, &cfg.Security)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthChecker, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error building health checks", slog.String("error", err.Error()))
		return err
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	router := api.NewRouter(api.Handlers{
		Coupon:   handlers.NewCouponHandler(couponService),
		Discount: handlers.NewDiscountHandler(discountService),
		Category: handlers.NewCategoryHandler(categoryService),
		Product:  handlers.NewProductHandler(productService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		License:  handlers.NewLicenseHandler(licenseService),
		Order:    handlers.NewOrderHandler(orderService),
		Payment:  handlers.NewPaymentHandler(orderService),
		Article:  handlers.NewArticleHandler(articleService),
		Setting:  handlers.NewSettingHandler(settingService),
		Auth:     handlers.NewAuthHandler(authService),
	}, authMiddleware, healthChecker.Handler())

	// Setup http server
	server := http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			serverErr <- err
		}
	}()

	select {
	case <-done:
		slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")
	case err := <-serverErr:
		return err
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
		return err
	}

	slog.Info("✅ Server shut down gracefully. All connections closed.")
	return nil
}
