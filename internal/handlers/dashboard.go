package handlers

import (
	"errors"
	"strconv"

	"github.com/fxdsilva/alertia/internal/services"
	"github.com/fxdsilva/alertia/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	metricsService *services.MetricsService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		metricsService: services.NewMetricsService(db),
	}
}

// GetMetrics returns the consolidated dashboard snapshot for one institution
// GET /api/dashboard/metrics/:id
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid institution id")
		return
	}

	metrics, err := h.metricsService.ComputeMetrics(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInstitutionNotFound) {
			response.NotFound(c, "institution not found")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, metrics)
}

// GetSummary returns the network-wide per-school breakdown
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.metricsService.ComputeSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}
