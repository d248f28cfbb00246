package models

import "time"

// Risk levels produced by risk matrix assessments.
const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// RiskMatrixEntry is one computed risk assessment for an institution. Only
// the most recent entry per institution is authoritative.
type RiskMatrixEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InstitutionID uint      `gorm:"index;not null" json:"institution_id"`
	Level         string    `gorm:"size:20;not null" json:"level"` // Low, Medium, High, Critical
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

// Due-diligence status codes.
const (
	DueDiligenceInReview  = "in_review"
	DueDiligenceCompleted = "completed"
	DueDiligencePending   = "pending"
)

// DueDiligenceEntry records a due-diligence check for an institution. Only
// the most recent entry per institution is authoritative.
type DueDiligenceEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InstitutionID uint      `gorm:"index;not null" json:"institution_id"`
	Status        string    `gorm:"size:50;default:pending" json:"status"` // in_review, completed, pending
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (RiskMatrixEntry) TableName() string   { return "risk_matrix_entries" }
func (DueDiligenceEntry) TableName() string { return "due_diligence_entries" }
