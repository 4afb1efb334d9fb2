package api

import (
	"fmt"
	"net/http"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProgressHandler struct {
	progressService service.ProgressService
	logger          *zap.Logger
}

func NewProgressHandler(progressService service.ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{progressService: progressService, logger: logger}
}

type AddMetricRequest struct {
	DateRecorded      string   `json:"dateRecorded" binding:"required"`
	WeightKg          *float64 `json:"weightKg"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage"`
	MuscleMassKg      *float64 `json:"muscleMassKg"`
	Notes             string   `json:"notes"`
}

type LogSessionRequest struct {
	Name               string     `json:"name" binding:"required"`
	PlanID             string     `json:"planId"`
	DayIndex           *int       `json:"dayIndex"`
	DurationMinutes    int        `json:"durationMinutes"`
	ExercisesCompleted int        `json:"exercisesCompleted"`
	Notes              string     `json:"notes"`
	DateCompleted      *time.Time `json:"dateCompleted"`
}

type LogSessionResponse struct {
	Session      *domain.WorkoutSession `json:"session"`
	Achievements []domain.Achievement   `json:"achievements"`
}

// GET /api/v1/progress
func (h *ProgressHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	overview, err := h.progressService.GetProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Error retrieving progress")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// POST /api/v1/progress/metric
func (h *ProgressHandler) AddMetric(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req AddMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	metric, err := h.progressService.AddMetric(c.Request.Context(), userID, service.MetricInput{
		DateRecorded:      req.DateRecorded,
		WeightKg:          req.WeightKg,
		BodyFatPercentage: req.BodyFatPercentage,
		MuscleMassKg:      req.MuscleMassKg,
		Notes:             req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err, "Error adding progress metric")
		return
	}
	c.JSON(http.StatusOK, metric)
}

// POST /api/v1/progress/sessions
func (h *ProgressHandler) LogSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	in := service.SessionInput{
		Name:               req.Name,
		DayIndex:           req.DayIndex,
		DurationMinutes:    req.DurationMinutes,
		ExercisesCompleted: req.ExercisesCompleted,
		Notes:              req.Notes,
		DateCompleted:      req.DateCompleted,
	}
	if req.PlanID != "" {
		planID, err := primitive.ObjectIDFromHex(req.PlanID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid planId format")
			return
		}
		in.PlanID = &planID
	}

	session, awarded, err := h.progressService.LogSession(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, h.logger, err, "Error logging workout session")
		return
	}
	c.JSON(http.StatusCreated, LogSessionResponse{Session: session, Achievements: awarded})
}
