package handlers

import (
	"errors"
	"strconv"

	"github.com/fxdsilva/alertia/internal/services"
	"github.com/fxdsilva/alertia/pkg/response"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type generateReportRequest struct {
	Scope         string `json:"scope" binding:"required"`
	InstitutionID *uint  `json:"institution_id"`
}

// Generate runs a report generation synchronously and returns the stored record
// POST /api/reports/generate
func (h *ReportHandler) Generate(c *gin.Context) {
	var req generateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), req.Scope, req.InstitutionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidScope):
			response.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUnresolvableTarget):
			response.Error(c, response.NewConflict("no institution available to bind the report to"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Created(c, report)
}

// List returns stored reports, newest first
// GET /api/reports?limit=20
func (h *ReportHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reports, err := h.reportService.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, reports)
}
