package api

import (
	"fmt"
	"net/http"

	"fitsphere/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxFormRequestBytes bounds the JSON body of a form check (base64 inflates
// the 5 MB image limit by a third).
const maxFormRequestBytes = 8 << 20

type FormHandler struct {
	formService service.FormService
	logger      *zap.Logger
}

func NewFormHandler(formService service.FormService, logger *zap.Logger) *FormHandler {
	return &FormHandler{formService: formService, logger: logger}
}

type FormAnalysisRequest struct {
	Exercise string `json:"exercise" binding:"required"`
	Image    string `json:"image" binding:"required"`
}

// POST /api/v1/form-analysis
func (h *FormHandler) Analyze(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFormRequestBytes)
	var req FormAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.formService.Analyze(c.Request.Context(), userID, req.Exercise, req.Image)
	if err != nil {
		respondError(c, h.logger, err, "Error analyzing form")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/v1/form-analysis
func (h *FormHandler) History(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	analyses, err := h.formService.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Error retrieving form analyses")
		return
	}
	c.JSON(http.StatusOK, analyses)
}
