package models

import (
	"fmt"

	"github.com/fxdsilva/alertia/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(cfg *config.DatabaseConfig) error {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	DB = db
	return nil
}

func AutoMigrate() error {
	return DB.AutoMigrate(
		&User{},
		&Institution{},
		&InstitutionDocument{},
		&Complaint{},
		&Investigation{},
		&Mediation{},
		&Training{},
		&TrainingCompletion{},
		&TrainingStatusLabel{},
		&RiskMatrixEntry{},
		&DueDiligenceEntry{},
		&DisciplinaryProcess{},
		&AIReport{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultData creates the default training status label rows if the
// lookup table is empty.
func SeedDefaultData() error {
	var labelCount int64
	DB.Model(&TrainingStatusLabel{}).Count(&labelCount)
	if labelCount == 0 {
		defaults := []TrainingStatusLabel{
			{Code: "not_started", Label: "Not Started"},
			{Code: "in_progress", Label: "In Progress"},
			{Code: "completed", Label: "Completed"},
		}
		for _, label := range defaults {
			if err := DB.Create(&label).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
