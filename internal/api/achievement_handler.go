package api

import (
	"fmt"
	"net/http"

	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AchievementHandler struct {
	achievementService service.AchievementService
	logger             *zap.Logger
}

func NewAchievementHandler(achievementService service.AchievementService, logger *zap.Logger) *AchievementHandler {
	return &AchievementHandler{achievementService: achievementService, logger: logger}
}

type AddAchievementRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// GET /api/v1/achievements
func (h *AchievementHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	achievements, err := h.achievementService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Error retrieving achievements")
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// POST /api/v1/achievements
func (h *AchievementHandler) Add(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req AddAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	achievement, err := h.achievementService.Add(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		respondError(c, h.logger, err, "Error adding achievement")
		return
	}
	c.JSON(http.StatusCreated, achievement)
}
