package handlers

import (
	"strconv"

	"github.com/fxdsilva/alertia/internal/middleware"
	"github.com/fxdsilva/alertia/internal/services"
	"github.com/fxdsilva/alertia/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TrainingHandler struct {
	trainingService *services.TrainingService
}

func NewTrainingHandler(db *gorm.DB) *TrainingHandler {
	return &TrainingHandler{
		trainingService: services.NewTrainingService(db),
	}
}

// GetProgress returns the institution's training catalog annotated with the
// requesting user's progress
// GET /api/trainings/progress?institution_id=1
func (h *TrainingHandler) GetProgress(c *gin.Context) {
	institutionID, err := strconv.ParseUint(c.Query("institution_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid institution_id")
		return
	}

	// Admins may inspect another user's progress, everyone else gets their own.
	userID := middleware.GetUserID(c)
	if raw := c.Query("user_id"); raw != "" && middleware.GetRole(c) == "admin" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid user_id")
			return
		}
		userID = uint(parsed)
	}

	trainings, err := h.trainingService.ResolveProgress(c.Request.Context(), uint(institutionID), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, trainings)
}
