package handlers

import (
	"errors"
	"strconv"

	"github.com/fxdsilva/alertia/internal/services"
	"github.com/fxdsilva/alertia/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InstitutionHandler struct {
	institutionService *services.InstitutionService
}

func NewInstitutionHandler(db *gorm.DB) *InstitutionHandler {
	return &InstitutionHandler{
		institutionService: services.NewInstitutionService(db),
	}
}

// List returns institutions sorted by name
// GET /api/institutions?active=true
func (h *InstitutionHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	institutions, err := h.institutionService.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, institutions)
}

// GetByID returns one institution
// GET /api/institutions/:id
func (h *InstitutionHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid institution id")
		return
	}

	inst, err := h.institutionService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInstitutionNotFound) {
			response.NotFound(c, "institution not found")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, inst)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive toggles whether the institution participates in network rollups
// PUT /api/institutions/:id/active
func (h *InstitutionHandler) SetActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid institution id")
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inst, err := h.institutionService.SetActive(c.Request.Context(), uint(id), *req.Active)
	if err != nil {
		if errors.Is(err, services.ErrInstitutionNotFound) {
			response.NotFound(c, "institution not found")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, inst)
}
