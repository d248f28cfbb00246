package services

import (
	"testing"

	"github.com/fxdsilva/alertia/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Every pooled connection to :memory: would get its own database, so the
	// parallel aggregation reads must share a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Institution{},
		&models.InstitutionDocument{},
		&models.Complaint{},
		&models.Investigation{},
		&models.Mediation{},
		&models.DisciplinaryProcess{},
		&models.Training{},
		&models.TrainingCompletion{},
		&models.TrainingStatusLabel{},
		&models.RiskMatrixEntry{},
		&models.DueDiligenceEntry{},
		&models.AIReport{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}
