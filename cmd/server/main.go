package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/bookhub/backend/internal/application/catalog"
	checkoutapp "github.com/bookhub/backend/internal/application/checkout"
	engagementapp "github.com/bookhub/backend/internal/application/engagement"
	"github.com/bookhub/backend/internal/infrastructure/config"
	"github.com/bookhub/backend/internal/infrastructure/logger"
	"github.com/bookhub/backend/internal/infrastructure/payment"
	"github.com/bookhub/backend/internal/infrastructure/persistence"
	"github.com/bookhub/backend/internal/interfaces/http/handler"
	"github.com/bookhub/backend/internal/interfaces/http/middleware"
	"github.com/bookhub/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()

	bookRepo := persistence.NewGormBookRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	testimonialRepo := persistence.NewGormTestimonialRepository(db.DB)
	contactRepo := persistence.NewGormContactMessageRepository(db.DB)
	subscriptionRepo := persistence.NewGormSubscriptionRepository(db.DB)

	if cfg.Seed.Enabled {
		seeder := persistence.NewSeeder(bookRepo, categoryRepo, testimonialRepo, log)
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal("failed to seed catalog data", zap.Error(err))
		}
	}

	gateway, err := payment.NewStripeGateway(&payment.StripeConfig{
		SecretKey:      cfg.Stripe.SecretKey,
		PublishableKey: cfg.Stripe.PublishableKey,
		IsTestMode:     cfg.App.Env != "production",
		Currency:       cfg.Stripe.Currency,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize payment gateway", zap.Error(err))
	}

	bookService := catalogapp.NewBookService(bookRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	testimonialService := engagementapp.NewTestimonialService(testimonialRepo)
	contactService := engagementapp.NewContactService(contactRepo, log)
	subscriptionService := engagementapp.NewSubscriptionService(subscriptionRepo, log)
	checkoutService := checkoutapp.NewCheckoutService(gateway, bookRepo, cfg.Stripe.Currency, log)

	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	contactHandler := handler.NewContactHandler(contactService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	systemHandler := handler.NewSystemHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	books := router.NewDomainGroup("books", "/books").
		GET("/featured", bookHandler.GetFeatured).
		GET("/new-releases", bookHandler.GetNewReleases).
		GET("/bestsellers", bookHandler.GetBestsellers).
		GET("/search", bookHandler.Search).
		GET("/:id", bookHandler.GetByID)

	catalog := router.NewDomainGroup("catalog", "").
		GET("/categories", categoryHandler.List)

	engagement := router.NewDomainGroup("engagement", "").
		GET("/testimonials", testimonialHandler.List).
		POST("/subscriptions", subscriptionHandler.Subscribe).
		POST("/contact", contactHandler.Submit)

	checkout := router.NewDomainGroup("checkout", "").
		POST("/create-payment-intent", checkoutHandler.CreatePaymentIntent).
		GET("/payment-status/:paymentIntentId", checkoutHandler.GetPaymentStatus)

	system := router.NewDomainGroup("system", "").
		GET("/health", systemHandler.Health)

	router.NewRouter(engine).
		Register(books).
		Register(catalog).
		Register(engagement).
		Register(checkout).
		Register(system).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
