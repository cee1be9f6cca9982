package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/internal/infrastructure/config"
	"tourcatalog-service/internal/infrastructure/oauth"
	"tourcatalog-service/internal/infrastructure/persistence"
	"tourcatalog-service/internal/infrastructure/router"
	"tourcatalog-service/internal/interface/api"
	"tourcatalog-service/internal/interface/gmail"
	catalogRepo "tourcatalog-service/internal/interface/repository"
	"tourcatalog-service/internal/usecase"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"
	"tourcatalog-service/templates"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Tour Catalog Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	// Relational store for roots and child collections
	log.Info("Connecting to database", "driver", cfg.DBDriver)
	gormDB, err := persistence.NewDatabase(persistence.DatabaseOptions{
		Driver:       cfg.DBDriver,
		DSN:          cfg.DatabaseDSN,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		ConnMaxLife:  cfg.DBConnMaxLife,
		Debug:        cfg.LogLevel == "debug",
	})
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	if cfg.AutoMigrate {
		if err := catalogRepo.AutoMigrate(gormDB); err != nil {
			log.Fatal("Failed to migrate database", "error", err)
		}
	}

	// MongoDB for the activity log
	log.Info("Connecting to MongoDB")
	activityStore, err := persistence.NewActivityStore(ctx, persistence.MongoOptions{
		URI:            cfg.MongoURI,
		Database:       cfg.MongoDB,
		Username:       cfg.MongoUser,
		Password:       cfg.MongoPassword,
		AppName:        cfg.MongoAppName,
		ConnectTimeout: cfg.MongoConnectTimeout,
		MaxPoolSize:    uint64(cfg.MongoMaxPoolSize),
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	tourRepo := catalogRepo.NewGormTourRepository(gormDB)
	cruiseRepo := catalogRepo.NewGormCruiseRepository(gormDB)
	childRepo := catalogRepo.NewGormChildRepository(gormDB)
	activityRepo := catalogRepo.NewMongoActivityRepository(activityStore.Database)

	cacheRepo := catalogRepo.NewNoopCacheRepository()
	if cfg.RedisAddr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		cacheRepo = catalogRepo.NewRedisCacheRepository(redisClient)
	} else {
		log.Warn("REDIS_ADDR not set, cache invalidation disabled")
	}

	// Notification channels
	var notifiers []repository.NotificationRepository
	if cfg.GmailEnabled() {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		gmailService, err := gmail.NewGmailService(ctx, gmailOAuth.GetTokenSource(ctx), cfg.GmailSender, cfg.GmailRecipients, log)
		if err != nil {
			log.Fatal("Failed to create Gmail service", "error", err)
		}
		notifiers = append(notifiers, gmailService)
	}
	if cfg.WhatsAppEnabled() {
		notifiers = append(notifiers, catalogRepo.NewWhatsappRepository(cfg.WhatsAppEndpoint, cfg.WhatsAppToken, cfg.WhatsAppRecipients, log))
	}
	log.Info("Notification channels configured", "count", len(notifiers))

	eventRouter := router.NewEventRouter(log)
	eventRouter.Register(templates.NewPublishedNotificationHandler(cfg.PublicBaseURL))
	eventRouter.Register(templates.NewDeletedNotificationHandler())

	// Set up usecases
	activityLogger := usecase.NewActivityLogger(activityRepo, appMetrics, log)
	dispatcher := usecase.NewNotificationDispatcher(eventRouter, notifiers, appMetrics, log)
	effects := usecase.NewSideEffects(cacheRepo, activityLogger, dispatcher, appMetrics, log)

	reconciler := usecase.NewChildReconciler(childRepo, appMetrics, log)
	writer := usecase.NewAggregateWriter(usecase.NewPayloadValidator(), reconciler, appMetrics, log)

	tourService := usecase.NewTourService(tourRepo, childRepo, writer, effects, log)
	cruiseService := usecase.NewCruiseService(cruiseRepo, childRepo, writer, effects, log)
	activityQuery := usecase.NewActivityQuery(activityRepo, cfg.ActivityDefaultLimit, cfg.ActivityMaxLimit)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	engine := api.NewRouter(api.RouterConfig{
		TourHandler:     api.NewTourHandler(tourService),
		CruiseHandler:   api.NewCruiseHandler(cruiseService),
		ActivityHandler: api.NewActivityHandler(activityQuery),
		MetricsHandler:  promhttp.Handler(),
		Metrics:         appMetrics,
		Logger:          log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Let detached activity and notification writes finish
	log.Info("Draining background tasks")
	effects.Wait()

	cancel()

	// Disconnect from MongoDB
	if err := activityStore.Close(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Server stopped")
}
