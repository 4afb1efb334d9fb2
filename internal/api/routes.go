package api

import (
	"net/http"
	"time"

	applog "fitsphere/backend/internal/logger"
	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services bundles the dependencies of every handler.
type Services struct {
	Auth        service.AuthService
	Profile     service.ProfileService
	Workout     service.WorkoutService
	Progress    service.ProgressService
	Achievement service.AchievementService
	Form        service.FormService
}

// NewRouter builds the engine with recovery, request logging and CORS, and
// registers all routes.
func NewRouter(svc Services, allowedOrigin string, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), applog.GinMiddleware(logger), CORSMiddleware(allowedOrigin))
	SetupRoutes(router, svc, logger)
	return router
}

func SetupRoutes(router *gin.Engine, svc Services, logger *zap.Logger) {
	authHandler := NewAuthHandler(svc.Auth, svc.Profile, logger)
	profileHandler := NewProfileHandler(svc.Profile, logger)
	workoutHandler := NewWorkoutHandler(svc.Workout, logger)
	progressHandler := NewProgressHandler(svc.Progress, logger)
	achievementHandler := NewAchievementHandler(svc.Achievement, logger)
	formHandler := NewFormHandler(svc.Form, logger)

	authMiddleware := AuthMiddleware(svc.Auth.GetJWTSecret())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "FitSphere API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/profile", authMiddleware, authHandler.Profile)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("/me", profileHandler.GetMe)
			profileGroup.PUT("/update", profileHandler.Update)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("/generate", workoutHandler.Generate)
			workoutGroup.GET("/current", workoutHandler.Current)
			workoutGroup.POST("/current/completions", workoutHandler.ToggleCompletion)
			workoutGroup.GET("/current/progress", workoutHandler.Progress)
		}

		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("", progressHandler.Get)
			progressGroup.POST("/metric", progressHandler.AddMetric)
			progressGroup.POST("/sessions", progressHandler.LogSession)
		}

		achievementGroup := protected.Group("/achievements")
		{
			achievementGroup.GET("", achievementHandler.List)
			achievementGroup.POST("", achievementHandler.Add)
		}

		formGroup := protected.Group("/form-analysis")
		{
			formGroup.GET("", formHandler.History)
			formGroup.POST("", formHandler.Analyze)
		}
	}
}
