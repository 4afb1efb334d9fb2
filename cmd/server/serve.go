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

	"fitsphere/backend/internal/api"
	"fitsphere/backend/internal/config"
	applog "fitsphere/backend/internal/logger"
	"fitsphere/backend/internal/planner"
	"fitsphere/backend/internal/repository/mongo"
	"fitsphere/backend/internal/service"
	"fitsphere/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	logger, err := applog.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting FitSphere server", zap.String("address", cfg.Server.Address))

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("could not connect to MongoDB: %w", err)
	}
	defer func() {
		logger.Info("Disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("Database connection established", zap.String("database", cfg.Database.Name))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB, logger)
	}()

	// Form checks still work without storage, they just keep no snapshot.
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cmd.Context(), cfg.S3, logger)
		if err != nil {
			logger.Error("S3 storage unavailable, form snapshots disabled", zap.Error(err))
			fileStorage = nil
		}
	}

	generator, err := buildPlanGenerator(cmd.Context(), cfg.AI, logger)
	if err != nil {
		return err
	}

	userRepo := mongo.NewMongoUserRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	planRepo := mongo.NewMongoWorkoutPlanRepository(appDB)
	metricRepo := mongo.NewMongoProgressMetricRepository(appDB)
	sessionRepo := mongo.NewMongoWorkoutSessionRepository(appDB)
	achievementRepo := mongo.NewMongoAchievementRepository(appDB)
	formRepo := mongo.NewMongoFormAnalysisRepository(appDB)

	achievementService := service.NewAchievementService(achievementRepo, logger)
	services := api.Services{
		Auth:        service.NewAuthService(userRepo, profileRepo, cfg.JWT.Secret, cfg.JWT.Expiration, logger),
		Profile:     service.NewProfileService(userRepo, profileRepo),
		Workout:     service.NewWorkoutService(generator, planRepo, profileRepo, achievementService, logger),
		Progress:    service.NewProgressService(metricRepo, sessionRepo, achievementService, logger),
		Achievement: achievementService,
		Form:        service.NewFormService(formRepo, fileStorage, logger),
	}

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(services, cfg.CORS.AllowedOrigin, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info("Shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}

// buildPlanGenerator returns the configured AI provider chained in front of
// the template planner. With no provider every plan comes from templates.
func buildPlanGenerator(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (*planner.Chain, error) {
	fallback := planner.NewFallbackGenerator(logger)

	var completer planner.TextCompleter
	switch cfg.Provider {
	case config.AIProviderGemini:
		gemini, err := planner.NewGeminiCompleter(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("could not create Gemini client: %w", err)
		}
		completer = gemini
	case config.AIProviderOpenAI:
		openai, err := planner.NewOpenAICompleter(cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("could not create OpenAI client: %w", err)
		}
		completer = openai
	default:
		logger.Info("No AI provider configured, using template plans only")
		return planner.WithFallback(nil, fallback, cfg.Timeout, logger), nil
	}

	logger.Info("AI plan generation enabled", zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	return planner.WithFallback(planner.NewAIGenerator(completer, logger), fallback, cfg.Timeout, logger), nil
}
