package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
	logger         *zap.Logger
}

func NewWorkoutHandler(workoutService service.WorkoutService, logger *zap.Logger) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, logger: logger}
}

type GeneratePlanRequest struct {
	Intensity          domain.Intensity `json:"intensity"`
	DaysPerWeek        int              `json:"daysPerWeek"`
	FocusArea          domain.FocusArea `json:"focusArea"`
	UserGoals          string           `json:"userGoals"`
	ExperienceLevel    string           `json:"experienceLevel"`
	EquipmentAvailable string           `json:"equipmentAvailable"`
}

type GeneratePlanResponse struct {
	Plan         domain.WeeklyPlan `json:"plan"`
	PlanID       string            `json:"planId"`
	UsedFallback bool              `json:"usedFallback"`
}

// CurrentPlanResponse has a nil Plan when the user has none yet.
type CurrentPlanResponse struct {
	Plan         *domain.WeeklyPlan `json:"plan"`
	PlanID       string             `json:"planId,omitempty"`
	CreatedAt    *time.Time         `json:"createdAt,omitempty"`
	UsedFallback bool               `json:"usedFallback,omitempty"`
	Completions  map[string]bool    `json:"completions,omitempty"`
}

type ToggleCompletionRequest struct {
	DayIndex      *int `json:"dayIndex" binding:"required"`
	ExerciseIndex *int `json:"exerciseIndex" binding:"required"`
}

type ToggleCompletionResponse struct {
	DayIndex      int                  `json:"dayIndex"`
	ExerciseIndex int                  `json:"exerciseIndex"`
	Completed     bool                 `json:"completed"`
	Progress      service.PlanProgress `json:"progress"`
}

// Generate creates a new current plan, falling back to the built-in
// templates when the AI provider fails.
// POST /api/v1/workouts/generate
func (h *WorkoutHandler) Generate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.workoutService.GeneratePlan(c.Request.Context(), userID, service.GeneratePlanInput{
		Intensity:          req.Intensity,
		DaysPerWeek:        req.DaysPerWeek,
		FocusArea:          req.FocusArea,
		UserGoals:          req.UserGoals,
		ExperienceLevel:    req.ExperienceLevel,
		EquipmentAvailable: req.EquipmentAvailable,
	})
	if err != nil {
		respondError(c, h.logger, err, "Error generating workout plan")
		return
	}

	c.JSON(http.StatusOK, GeneratePlanResponse{
		Plan:         plan.Plan,
		PlanID:       plan.ID.Hex(),
		UsedFallback: plan.UsedFallback,
	})
}

// Current returns the newest plan, or {"plan": null}.
// GET /api/v1/workouts/current
func (h *WorkoutHandler) Current(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	plan, err := h.workoutService.GetCurrentPlan(c.Request.Context(), userID)
	if errors.Is(err, service.ErrPlanNotFound) {
		c.JSON(http.StatusOK, CurrentPlanResponse{})
		return
	}
	if err != nil {
		respondError(c, h.logger, err, "Error fetching workout plan")
		return
	}

	c.JSON(http.StatusOK, CurrentPlanResponse{
		Plan:         &plan.Plan,
		PlanID:       plan.ID.Hex(),
		CreatedAt:    &plan.CreatedAt,
		UsedFallback: plan.UsedFallback,
		Completions:  plan.Completions,
	})
}

// ToggleCompletion flips one exercise of the current plan.
// POST /api/v1/workouts/current/completions
func (h *WorkoutHandler) ToggleCompletion(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	completed, progress, err := h.workoutService.ToggleExerciseCompletion(c.Request.Context(), userID, *req.DayIndex, *req.ExerciseIndex)
	if err != nil {
		respondError(c, h.logger, err, "Error updating exercise completion")
		return
	}

	c.JSON(http.StatusOK, ToggleCompletionResponse{
		DayIndex:      *req.DayIndex,
		ExerciseIndex: *req.ExerciseIndex,
		Completed:     completed,
		Progress:      progress,
	})
}

// GET /api/v1/workouts/current/progress
func (h *WorkoutHandler) Progress(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	progress, err := h.workoutService.GetPlanProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Error computing plan progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
