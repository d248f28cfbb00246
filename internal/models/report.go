package models

import (
	"encoding/json"
	"time"
)

// Report scopes.
const (
	ReportScopeGlobal = "global"
	ReportScopeSchool = "school"
)

// Report type labels derived from scope.
const (
	ReportTypeNetworkAnalysis = "network_analysis"
	ReportTypeSchoolAnalysis  = "school_analysis"
)

// AIReport is a persisted analysis artifact. Every report row is bound to
// exactly one owning institution even when the analysis is network-wide.
type AIReport struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	InstitutionID  uint      `gorm:"index;not null" json:"institution_id"`
	Scope          string    `gorm:"size:20;not null;index" json:"scope"` // global, school
	Type           string    `gorm:"size:50;not null" json:"type"`
	Title          string    `gorm:"size:300;not null" json:"title"`
	Summary        string    `gorm:"type:text" json:"summary"`
	Highlights     string    `gorm:"type:text" json:"-"` // JSON array of strings
	RiskAssessment string    `gorm:"size:50" json:"risk_assessment"`
	Recommendation string    `gorm:"type:text" json:"recommendation"`
	GeneratedAt    time.Time `gorm:"index" json:"generated_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (AIReport) TableName() string { return "ai_reports" }

// SetHighlights stores the ordered highlight list as JSON.
func (r *AIReport) SetHighlights(highlights []string) error {
	data, err := json.Marshal(highlights)
	if err != nil {
		return err
	}
	r.Highlights = string(data)
	return nil
}

// GetHighlights decodes the stored highlight list, preserving order.
func (r *AIReport) GetHighlights() []string {
	if r.Highlights == "" {
		return nil
	}
	var highlights []string
	if err := json.Unmarshal([]byte(r.Highlights), &highlights); err != nil {
		return nil
	}
	return highlights
}
