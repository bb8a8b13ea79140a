package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/cloud-kitchen/docs"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/handlers"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/api/middleware"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/cache"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/config"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/health"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/metrics"
	repository "github.com/aaravmahajanofficial/cloud-kitchen/internal/repositories"
	service "github.com/aaravmahajanofficial/cloud-kitchen/internal/services"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/tracing"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/kitchenapi"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/messaging"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/sendgrid"
	"github.com/aaravmahajanofficial/cloud-kitchen/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

//	@title						Cloud Kitchen API
//	@version					1.0
//	@description				Cart, menu, checkout and navigation backend for the Cloud Kitchen storefront.
//	@host						localhost:8080
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Setup(context.Background(), &cfg.Otel, version)
	if err != nil {
		slog.Error("❌ Error configuring tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	mongoClient, mongoDB, err := repository.NewMongoDatabase(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the document store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("⚠️ Error closing MongoDB connection", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	var publisher messaging.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := messaging.NewKafkaProducer(cfg.Kafka.Brokers)
		publisher = producer

		defer func() {
			if err := producer.Close(); err != nil {
				slog.Error("⚠️ Error closing kafka producer", slog.String("error", err.Error()))
			}
		}()
	} else {
		slog.Warn("Kafka brokers not configured, checkout events are not published")
	}

	var mailer sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		mailer = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)

	cartRepo := repository.NewCartRepo(redisClient, cfg.Cache.CartTTL)
	cartService := service.NewCartService(cartRepo)
	cartHandler := handlers.NewCartHandler(cartService)

	menuFetcher := service.NewCachedMenuFetcher(kitchenapi.NewClient(cfg.KitchenAPI.BaseURL), redisCache, cfg.Cache.MenuTTL)
	menuService := service.NewMenuService(menuFetcher, cfg.KitchenAPI.ViewIdleTTL)
	kitchenService := service.NewKitchenService(repository.NewKitchenRepository(mongoDB))
	kitchenHandler := handlers.NewKitchenHandler(kitchenService, menuService)

	checkoutService := service.NewCheckoutService(stripeClient, cartService, &cfg.Stripe)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	paymentService := service.NewPaymentService(repos.Payment, stripeClient, cartRepo, publisher, mailer, cfg.Kafka.CheckoutTopic)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	navigationHandler := handlers.NewNavigationHandler(cartService)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateConfig.TrustedProxies)
	if err != nil {
		slog.Error("❌ Invalid rate limit configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	checkoutLimit := middleware.RateLimit(repository.NewRateLimitRepo(redisClient, &cfg.RateConfig, "checkout"), trustedProxies)

	healthHandler, err := health.NewHealthHandler(cfg, stripeClient, version)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	docs.SwaggerInfo.Version = version

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.Handle("POST /create-checkout-session", checkoutLimit(checkoutHandler.CreateCheckoutSession()))
	routerMux.HandleFunc("GET /api/kitchen/{id}", kitchenHandler.ListMenu())
	routerMux.HandleFunc("GET /api/v1/kitchens/{id}/menu", authMiddleware.OptionalAuthenticate(kitchenHandler.BrowseMenu()))
	routerMux.HandleFunc("GET /api/v1/menu/current", authMiddleware.OptionalAuthenticate(kitchenHandler.CurrentMenu()))
	routerMux.HandleFunc("GET /api/v1/carts", authMiddleware.OptionalAuthenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/carts/items", authMiddleware.OptionalAuthenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/carts/items/{id}", authMiddleware.OptionalAuthenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{id}", authMiddleware.OptionalAuthenticate(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/carts", authMiddleware.OptionalAuthenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/carts/checkout", authMiddleware.OptionalAuthenticate(checkoutLimit(checkoutHandler.CheckoutCart())))
	routerMux.HandleFunc("GET /api/v1/navigation", authMiddleware.OptionalAuthenticate(navigationHandler.Links()))
	routerMux.HandleFunc("GET /api/v1/payments/{id}", authMiddleware.Authenticate(paymentHandler.GetPayment()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(routerMux)(handler)
	handler = otelhttp.NewHandler(handler, "cloud-kitchen")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
