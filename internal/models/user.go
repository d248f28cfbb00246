package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a platform user.
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Username      string         `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password      string         `gorm:"size:255" json:"-"` // bcrypt hash
	Email         string         `gorm:"size:255" json:"email"`
	Name          string         `gorm:"size:200" json:"name"`
	Role          string         `gorm:"size:50;default:user" json:"role"` // admin, user
	InstitutionID *uint          `gorm:"index" json:"institution_id"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	LastLogin     *time.Time     `json:"last_login"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
