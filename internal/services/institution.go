package services

import (
	"context"
	"errors"

	"github.com/fxdsilva/alertia/internal/models"
	"gorm.io/gorm"
)

// InstitutionService exposes the thin institution read/write surface the
// dashboards sit on.
type InstitutionService struct {
	db *gorm.DB
}

func NewInstitutionService(db *gorm.DB) *InstitutionService {
	return &InstitutionService{db: db}
}

// List returns institutions sorted by name. When activeOnly is set, inactive
// institutions are filtered out.
func (s *InstitutionService) List(ctx context.Context, activeOnly bool) ([]models.Institution, error) {
	query := s.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var institutions []models.Institution
	if err := query.Find(&institutions).Error; err != nil {
		return nil, &UpstreamError{Op: "list institutions", Err: err}
	}
	return institutions, nil
}

// GetByID fetches one institution.
func (s *InstitutionService) GetByID(ctx context.Context, id uint) (*models.Institution, error) {
	var inst models.Institution
	if err := s.db.WithContext(ctx).First(&inst, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, &UpstreamError{Op: "read institution", Err: err}
	}
	return &inst, nil
}

// SetActive toggles the active flag. Concurrent toggles are arbitrated by
// the storage layer (last writer wins); no application-level locking.
func (s *InstitutionService) SetActive(ctx context.Context, id uint, active bool) (*models.Institution, error) {
	inst, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(inst).Update("active", active).Error; err != nil {
		return nil, &UpstreamError{Op: "update institution", Err: err}
	}
	inst.Active = active
	return inst, nil
}
