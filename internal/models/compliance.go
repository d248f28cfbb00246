package models

import (
	"time"

	"gorm.io/gorm"
)

// Complaint status codes.
const (
	ComplaintRegistered    = "registered"
	ComplaintUnderAnalysis = "under_analysis"
	ComplaintInvestigating = "investigating"
	ComplaintResolved      = "resolved"
	ComplaintArchived      = "archived"
)

// ActiveComplaintStatuses is the set of statuses counted as still open.
var ActiveComplaintStatuses = []string{
	ComplaintRegistered,
	ComplaintUnderAnalysis,
	ComplaintInvestigating,
}

// Complaint is an intake record filed against an institution.
type Complaint struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InstitutionID uint           `gorm:"index;not null" json:"institution_id"`
	Status        string         `gorm:"size:50;default:registered;index" json:"status"`
	Category      string         `gorm:"size:100" json:"category"`
	Description   string         `gorm:"type:text" json:"description"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Investigation and mediation status codes. Anything other than concluded
// counts as open.
const (
	ProcessOpen      = "open"
	ProcessConcluded = "concluded"
)

// Investigation is an audit opened from a complaint or ex officio.
type Investigation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InstitutionID uint           `gorm:"index;not null" json:"institution_id"`
	Status        string         `gorm:"size:50;default:open;index" json:"status"`
	Subject       string         `gorm:"size:500" json:"subject"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Mediation is a conflict-resolution process between parties of an
// institution.
type Mediation struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InstitutionID uint           `gorm:"index;not null" json:"institution_id"`
	Status        string         `gorm:"size:50;default:open;index" json:"status"`
	Subject       string         `gorm:"size:500" json:"subject"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// DisciplinaryProcess is counted per institution; the dashboards need no
// further structure from it.
type DisciplinaryProcess struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	InstitutionID uint           `gorm:"index;not null" json:"institution_id"`
	Subject       string         `gorm:"size:500" json:"subject"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Complaint) TableName() string           { return "complaints" }
func (Investigation) TableName() string       { return "investigations" }
func (Mediation) TableName() string           { return "mediations" }
func (DisciplinaryProcess) TableName() string { return "disciplinary_processes" }
