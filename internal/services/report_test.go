package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fxdsilva/alertia/internal/models"
)

func TestGenerate_GlobalBindsToSoleInstitution(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Institution{Name: "X"})

	svc := NewReportService(db, &StaticAnalyzer{})
	report, err := svc.Generate(context.Background(), models.ReportScopeGlobal, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if report.InstitutionID != 1 {
		t.Errorf("InstitutionID = %d, expected 1", report.InstitutionID)
	}
	if report.Scope != models.ReportScopeGlobal {
		t.Errorf("Scope = %q, expected %q", report.Scope, models.ReportScopeGlobal)
	}
	if report.Type != models.ReportTypeNetworkAnalysis {
		t.Errorf("Type = %q, expected %q", report.Type, models.ReportTypeNetworkAnalysis)
	}
	if !strings.HasPrefix(report.Title, "Network Compliance Report - ") {
		t.Errorf("unexpected title %q", report.Title)
	}
	if report.ID == 0 {
		t.Error("report was not persisted")
	}
}

func TestGenerate_EmptyCollectionUnresolvable(t *testing.T) {
	db := newTestDB(t)

	svc := NewReportService(db, &StaticAnalyzer{})
	_, err := svc.Generate(context.Background(), models.ReportScopeGlobal, nil)
	if !errors.Is(err, ErrUnresolvableTarget) {
		t.Errorf("expected ErrUnresolvableTarget, got %v", err)
	}

	var count int64
	db.Model(&models.AIReport{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no report rows after failed generation, got %d", count)
	}
}

func TestGenerate_ExplicitInstitutionWins(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Institution{Name: "First"})
	mustCreate(t, db, &models.Institution{Name: "Second"})

	target := uint(2)
	svc := NewReportService(db, &StaticAnalyzer{})
	report, err := svc.Generate(context.Background(), models.ReportScopeSchool, &target)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if report.InstitutionID != 2 {
		t.Errorf("InstitutionID = %d, expected 2", report.InstitutionID)
	}
	if report.Type != models.ReportTypeSchoolAnalysis {
		t.Errorf("Type = %q, expected %q", report.Type, models.ReportTypeSchoolAnalysis)
	}
	if !strings.HasPrefix(report.Title, "School Compliance Report - ") {
		t.Errorf("unexpected title %q", report.Title)
	}
}

func TestGenerate_InvalidScope(t *testing.T) {
	db := newTestDB(t)

	svc := NewReportService(db, &StaticAnalyzer{})
	_, err := svc.Generate(context.Background(), "district", nil)
	if !errors.Is(err, ErrInvalidScope) {
		t.Errorf("expected ErrInvalidScope, got %v", err)
	}
}

func TestGenerate_ContentFromAnalyzer(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Institution{Name: "X"})

	svc := NewReportService(db, &StaticAnalyzer{})
	report, err := svc.Generate(context.Background(), models.ReportScopeSchool, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if report.Summary == "" {
		t.Error("Summary should not be empty")
	}
	if report.RiskAssessment == "" {
		t.Error("RiskAssessment should not be empty")
	}
	if report.Recommendation == "" {
		t.Error("Recommendation should not be empty")
	}
	if len(report.GetHighlights()) == 0 {
		t.Error("Highlights should not be empty")
	}
}

func TestList_NewestFirstAndBounded(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Institution{Name: "X"})

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 3; i++ {
		mustCreate(t, db, &models.AIReport{
			InstitutionID: 1,
			Scope:         models.ReportScopeSchool,
			Type:          models.ReportTypeSchoolAnalysis,
			Title:         "r",
			GeneratedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}

	svc := NewReportService(db, nil)
	reports, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("List length = %d, expected 2", len(reports))
	}
	if reports[0].GeneratedAt.Before(reports[1].GeneratedAt) {
		t.Error("reports not ordered newest first")
	}
}

func TestList_LimitClamped(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &models.Institution{Name: "X"})

	base := time.Now().Add(-200 * time.Hour)
	for i := 0; i < 105; i++ {
		mustCreate(t, db, &models.AIReport{
			InstitutionID: 1,
			Scope:         models.ReportScopeSchool,
			Type:          models.ReportTypeSchoolAnalysis,
			Title:         "r",
			GeneratedAt:   base.Add(time.Duration(i) * time.Hour),
		})
	}

	svc := NewReportService(db, nil)

	// Over the ceiling means the ceiling, not a reset to the default.
	reports, err := svc.List(context.Background(), 500)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(reports) != 100 {
		t.Errorf("List(500) length = %d, expected 100", len(reports))
	}

	reports, err = svc.List(context.Background(), -5)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(reports) != 20 {
		t.Errorf("List(-5) length = %d, expected default 20", len(reports))
	}
}

func TestStaticAnalyzer_CancelledContext(t *testing.T) {
	analyzer := &StaticAnalyzer{Delay: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := analyzer.Analyze(ctx, models.ReportScopeGlobal); err == nil {
		t.Error("expected error from cancelled context")
	}
}
