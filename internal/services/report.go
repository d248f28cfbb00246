package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fxdsilva/alertia/internal/models"
	"github.com/fxdsilva/alertia/pkg/logger"
	"gorm.io/gorm"
)

// ReportService orchestrates report generation: target resolution, analysis
// and persistence. States: requested -> resolving target -> running analysis
// -> persisting -> completed, with failure reachable from any step.
type ReportService struct {
	db       *gorm.DB
	analyzer Analyzer
}

func NewReportService(db *gorm.DB, analyzer Analyzer) *ReportService {
	if analyzer == nil {
		analyzer = &StaticAnalyzer{}
	}
	return &ReportService{db: db, analyzer: analyzer}
}

// Generate runs one report generation end to end and returns the persisted
// record. An explicit institution id always wins; a global-scope request
// without one binds to the first institution, since every report row needs
// exactly one owning institution even when the analysis is network-wide.
// ErrUnresolvableTarget is returned when no institution can be bound;
// persistence failures surface as *PersistenceError without retry.
func (s *ReportService) Generate(ctx context.Context, scope string, institutionID *uint) (*models.AIReport, error) {
	if scope != models.ReportScopeGlobal && scope != models.ReportScopeSchool {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
	}

	logger.Info().Str("scope", scope).Msg("report generation requested")

	targetID, err := s.resolveTarget(ctx, institutionID)
	if err != nil {
		return nil, err
	}

	content, err := s.analyzer.Analyze(ctx, scope)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &models.AIReport{
		InstitutionID:  targetID,
		Scope:          scope,
		Type:           reportTypeForScope(scope),
		Title:          reportTitleForScope(scope, now),
		Summary:        content.Summary,
		RiskAssessment: content.RiskAssessment,
		Recommendation: content.Recommendation,
		GeneratedAt:    now,
	}
	if err := report.SetHighlights(content.Highlights); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, &PersistenceError{Err: err}
	}

	logger.Info().
		Uint("report_id", report.ID).
		Uint("institution_id", targetID).
		Str("scope", scope).
		Msg("report generated")

	return report, nil
}

// resolveTarget binds the report to an owning institution. Without an
// explicit id, a bounded read (limit 1) picks the first institution.
func (s *ReportService) resolveTarget(ctx context.Context, institutionID *uint) (uint, error) {
	if institutionID != nil {
		return *institutionID, nil
	}

	var institutions []models.Institution
	err := s.db.WithContext(ctx).Order("id ASC").Limit(1).Find(&institutions).Error
	if err != nil {
		return 0, &UpstreamError{Op: "resolve report target", Err: err}
	}
	if len(institutions) == 0 {
		return 0, ErrUnresolvableTarget
	}
	return institutions[0].ID, nil
}

// List returns persisted reports newest-generated-first. Non-positive limits
// fall back to 20, larger ones are capped at 100.
func (s *ReportService) List(ctx context.Context, limit int) ([]models.AIReport, error) {
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	var reports []models.AIReport
	err := s.db.WithContext(ctx).
		Order("generated_at DESC").
		Limit(limit).
		Find(&reports).Error
	if err != nil {
		return nil, &UpstreamError{Op: "list reports", Err: err}
	}
	return reports, nil
}

func reportTypeForScope(scope string) string {
	if scope == models.ReportScopeGlobal {
		return models.ReportTypeNetworkAnalysis
	}
	return models.ReportTypeSchoolAnalysis
}

func reportTitleForScope(scope string, at time.Time) string {
	date := at.Format("2006-01-02")
	if scope == models.ReportScopeGlobal {
		return fmt.Sprintf("Network Compliance Report - %s", date)
	}
	return fmt.Sprintf("School Compliance Report - %s", date)
}
