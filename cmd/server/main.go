package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/fitness-coach/internal/api"
	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/config"
	"alcyxob/fitness-coach/internal/logging"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/repository/mongo"
	"alcyxob/fitness-coach/internal/service"
	"alcyxob/fitness-coach/internal/storage"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title Fitness Coach API
// @version 1.0
// @description Daily workout plans, advice and completion history for coach sessions.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.SetupParams{
		Level:       cfg.Log.Level,
		FormatJSON:  cfg.Log.FormatJSON,
		FileName:    cfg.Log.File,
		ToStdout:    cfg.Log.ToStdout,
		Environment: cfg.Log.Environment,
		SentryDSN:   cfg.Log.SentryDSN,
	})
	defer sentry.Flush(2 * time.Second)
	log.Info("starting fitness coach server")

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret (JWT_SECRET) must be set")
	}

	// --- Metrics ---
	promRegistry := metrics.SetupRegistry()
	metricsManager := metrics.NewManager(cfg.Metrics.Namespace, cfg.Metrics.Subsystem, promRegistry)

	ctx := context.Background()
	coachOpts := []service.CoachServiceOption{
		service.WithMetrics(metricsManager),
		service.WithSessionTTL(cfg.JWT.Expiration),
	}

	// --- Optional completion persistence ---
	if cfg.Database.Enabled {
		dbClient, err := mongo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			log.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Info("disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)

		go func() {
			idxCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongo.EnsureCompletionIndexes(idxCtx, appDB.Collection(mongo.CompletionCollectionName))
			log.Debug("completion indexes ensured")
		}()

		coachOpts = append(coachOpts, service.WithCompletionRepository(mongo.NewMongoCompletionRepository(appDB)))
		log.WithField("db", cfg.Database.Name).Info("completion records will be persisted")
	}

	// --- Optional health card export ---
	if cfg.S3.Enabled {
		fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
		coachOpts = append(coachOpts, service.WithFileStorage(fileStorage))
	}

	// --- Services ---
	selector := coach.NewSelector(coach.UUIDSource{}, coach.SystemClock{})
	coachService := service.NewCoachService(selector, coachOpts...)
	sessionService := service.NewSessionService(coachService, cfg.JWT.Secret, cfg.JWT.Expiration)

	pruneCtx, stopPruning := context.WithCancel(ctx)
	defer stopPruning()
	go pruneIdleSessions(pruneCtx, coachService, cfg.Server.SessionPruneInterval)

	// --- Router ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger())
	api.SetupRoutes(router, metricsManager, promRegistry, sessionService, coachService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Info("server exiting")
}

// pruneIdleSessions drops expired coach sessions every interval until ctx is done.
func pruneIdleSessions(ctx context.Context, coachService service.CoachService, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			coachService.PruneIdleSessions(ctx)
		}
	}
}
