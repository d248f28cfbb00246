package models

import (
	"time"

	"gorm.io/gorm"
)

// Training is a catalog entry offered to the users of an institution. Only
// active entries belong to the live catalog.
type Training struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InstitutionID uint           `gorm:"index;not null" json:"institution_id"`
	Title         string         `gorm:"size:300;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Active        bool           `gorm:"default:true;index" json:"active"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TrainingCompletion is a user's progress state against one catalog entry.
// A user's completions may span institutions.
type TrainingCompletion struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	TrainingID  uint       `gorm:"index;not null" json:"training_id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Progress    int        `gorm:"default:0" json:"progress"` // 0-100
	Status      string     `gorm:"size:50;default:in_progress" json:"status"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `gorm:"index" json:"updated_at"`
}

// TrainingStatusLabel maps a stored completion status code to its display
// label. Codes missing from this table surface verbatim.
type TrainingStatusLabel struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Code  string `gorm:"uniqueIndex;size:50;not null" json:"code"`
	Label string `gorm:"size:100;not null" json:"label"`
}

func (Training) TableName() string            { return "trainings" }
func (TrainingCompletion) TableName() string  { return "training_completions" }
func (TrainingStatusLabel) TableName() string { return "training_status_labels" }
