package services

import (
	"context"
	"time"

	"github.com/fxdsilva/alertia/internal/models"
	"gorm.io/gorm"
)

// TrainingService merges the training catalog with per-user completion state.
type TrainingService struct {
	db *gorm.DB
}

func NewTrainingService(db *gorm.DB) *TrainingService {
	return &TrainingService{db: db}
}

// TrainingWithProgress is one catalog entry joined with the user's resolved
// completion state.
type TrainingWithProgress struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ResolveProgress joins the institution's active catalog with the user's
// completion records. Catalog order is preserved (newest-created first).
// Completions are read across all institutions since a user's completions
// may span catalogs; when several completions exist for the same training,
// the most recently updated one wins.
func (s *TrainingService) ResolveProgress(ctx context.Context, institutionID, userID uint) ([]TrainingWithProgress, error) {
	var catalog []models.Training
	err := s.db.WithContext(ctx).
		Where("institution_id = ? AND active = ?", institutionID, true).
		Order("created_at DESC").
		Find(&catalog).Error
	if err != nil {
		return nil, &UpstreamError{Op: "read training catalog", Err: err}
	}

	var completions []models.TrainingCompletion
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&completions).Error
	if err != nil {
		return nil, &UpstreamError{Op: "read training completions", Err: err}
	}

	labels, err := s.loadStatusLabels(ctx)
	if err != nil {
		return nil, err
	}

	// First match per training wins; ordering above makes that the most
	// recently updated completion.
	byTraining := make(map[uint]*models.TrainingCompletion, len(completions))
	for i := range completions {
		c := &completions[i]
		if _, seen := byTraining[c.TrainingID]; !seen {
			byTraining[c.TrainingID] = c
		}
	}

	result := make([]TrainingWithProgress, 0, len(catalog))
	for _, entry := range catalog {
		completion := byTraining[entry.ID]
		status, progress := ResolveTrainingStatus(completion, labels)

		row := TrainingWithProgress{
			ID:          entry.ID,
			Title:       entry.Title,
			Description: entry.Description,
			Status:      status,
			Progress:    progress,
			CreatedAt:   entry.CreatedAt,
		}
		if completion != nil {
			row.CompletedAt = completion.CompletedAt
		}
		result = append(result, row)
	}

	return result, nil
}

func (s *TrainingService) loadStatusLabels(ctx context.Context) (map[string]string, error) {
	var rows []models.TrainingStatusLabel
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &UpstreamError{Op: "read training status labels", Err: err}
	}

	labels := make(map[string]string, len(rows))
	for _, row := range rows {
		labels[row.Code] = row.Label
	}
	return labels, nil
}
