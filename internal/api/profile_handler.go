package api

import (
	"fmt"
	"net/http"

	"fitsphere/backend/internal/domain"
	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, logger: logger}
}

// UpdateProfileRequest replaces the whole profile; omitted fields are cleared.
type UpdateProfileRequest struct {
	FirstName           *string              `json:"firstName"`
	LastName            *string              `json:"lastName"`
	Age                 *int                 `json:"age"`
	HeightCm            *float64             `json:"heightCm"`
	WeightKg            *float64             `json:"weightKg"`
	FitnessLevel        *domain.FitnessLevel `json:"fitnessLevel"`
	Goal                *string              `json:"goal"`
	TrainingDaysPerWeek *int                 `json:"trainingDaysPerWeek"`
}

// GET /api/v1/profile/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Could not load profile")
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{User: MapUserToResponse(user), Profile: profile})
}

// PUT /api/v1/profile/update
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, service.ProfileInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Age:                 req.Age,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		FitnessLevel:        req.FitnessLevel,
		Goal:                req.Goal,
		TrainingDaysPerWeek: req.TrainingDaysPerWeek,
	})
	if err != nil {
		respondError(c, h.logger, err, "Could not update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
