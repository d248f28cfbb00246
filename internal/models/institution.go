package models

import (
	"time"

	"gorm.io/gorm"
)

// Institution is a school or educational entity owning all compliance
// records in its scope. The network-type flags are not mutually exclusive in
// storage; services.ResolveNetworkLabel collapses them to one canonical label.
type Institution struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:200;not null;index" json:"name"`
	Municipal bool           `gorm:"default:false" json:"municipal"`
	State     bool           `gorm:"default:false" json:"state"`
	Federal   bool           `gorm:"default:false" json:"federal"`
	Private   bool           `gorm:"default:false" json:"private"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Document kinds tracked per institution.
const (
	DocumentConductCode      = "conduct_code"
	DocumentCompliancePolicy = "compliance_policy"
)

// InstitutionDocument records that a governance document has been filed for
// an institution. Existence of a row means the document status is Completed.
type InstitutionDocument struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InstitutionID uint      `gorm:"index;not null" json:"institution_id"`
	Kind          string    `gorm:"size:50;not null;index" json:"kind"` // conduct_code, compliance_policy
	FileURL       string    `gorm:"size:500" json:"file_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Institution) TableName() string         { return "institutions" }
func (InstitutionDocument) TableName() string { return "institution_documents" }
