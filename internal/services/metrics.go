package services

import (
	"context"
	"errors"

	"github.com/fxdsilva/alertia/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MetricsService computes dashboard snapshots. Every call recomputes from
// the source collections; nothing is cached.
type MetricsService struct {
	db *gorm.DB
}

func NewMetricsService(db *gorm.DB) *MetricsService {
	return &MetricsService{db: db}
}

// DashboardMetrics is the per-institution snapshot. It is ephemeral: a pure
// function of the underlying collections at read time, never persisted.
type DashboardMetrics struct {
	InstitutionID         uint           `json:"institution_id"`
	ConductCode           DocumentStatus `json:"conduct_code"`
	CompliancePolicy      DocumentStatus `json:"compliance_policy"`
	TotalComplaints       int64          `json:"total_complaints"`
	ActiveComplaints      int64          `json:"active_complaints"`
	SchoolReports         int64          `json:"school_reports"`
	ActiveTrainings       int64          `json:"active_trainings"`
	RiskLevel             string         `json:"risk_level"`
	OpenInvestigations    int64          `json:"open_investigations"`
	OpenMediations        int64          `json:"open_mediations"`
	DueDiligenceStatus    string         `json:"due_diligence_status"`
	DisciplinaryProcesses int64          `json:"disciplinary_processes"`
	NetworkReports        int64          `json:"network_reports"`
	ConsolidatedView      bool           `json:"consolidated_view"`
}

// ComputeMetrics builds the dashboard snapshot for one institution. It fails
// with ErrInstitutionNotFound only when the institution id does not exist;
// empty related collections resolve to zero counts and default labels. The
// reads are mutually independent and run in parallel; any failing read
// aborts the whole snapshot.
func (s *MetricsService) ComputeMetrics(ctx context.Context, institutionID uint) (*DashboardMetrics, error) {
	var inst models.Institution
	if err := s.db.WithContext(ctx).First(&inst, institutionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, &UpstreamError{Op: "read institution", Err: err}
	}

	m := &DashboardMetrics{
		InstitutionID:    institutionID,
		ConsolidatedView: true,
	}

	var (
		conductDocs  []models.InstitutionDocument
		policyDocs   []models.InstitutionDocument
		riskEntries  []models.RiskMatrixEntry
		dueDiligence []models.DueDiligenceEntry
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.latestDocument(gctx, institutionID, models.DocumentConductCode, &conductDocs)
	})
	g.Go(func() error {
		return s.latestDocument(gctx, institutionID, models.DocumentCompliancePolicy, &policyDocs)
	})
	g.Go(func() error {
		return s.count(gctx, &models.Complaint{}, &m.TotalComplaints,
			"institution_id = ?", institutionID)
	})
	g.Go(func() error {
		return s.count(gctx, &models.Complaint{}, &m.ActiveComplaints,
			"institution_id = ? AND status IN ?", institutionID, models.ActiveComplaintStatuses)
	})
	g.Go(func() error {
		return s.count(gctx, &models.AIReport{}, &m.SchoolReports,
			"institution_id = ? AND scope = ?", institutionID, models.ReportScopeSchool)
	})
	g.Go(func() error {
		return s.count(gctx, &models.Training{}, &m.ActiveTrainings,
			"institution_id = ? AND active = ?", institutionID, true)
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("institution_id = ?", institutionID).
			Order("created_at DESC").
			Limit(1).
			Find(&riskEntries).Error
		if err != nil {
			return &UpstreamError{Op: "read latest risk entry", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		return s.count(gctx, &models.Investigation{}, &m.OpenInvestigations,
			"institution_id = ? AND status <> ?", institutionID, models.ProcessConcluded)
	})
	g.Go(func() error {
		return s.count(gctx, &models.Mediation{}, &m.OpenMediations,
			"institution_id = ? AND status <> ?", institutionID, models.ProcessConcluded)
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("institution_id = ?", institutionID).
			Order("created_at DESC").
			Limit(1).
			Find(&dueDiligence).Error
		if err != nil {
			return &UpstreamError{Op: "read latest due diligence entry", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		return s.count(gctx, &models.DisciplinaryProcess{}, &m.DisciplinaryProcesses,
			"institution_id = ?", institutionID)
	})
	g.Go(func() error {
		return s.count(gctx, &models.AIReport{}, &m.NetworkReports,
			"institution_id = ? AND scope = ?", institutionID, models.ReportScopeGlobal)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m.ConductCode = ResolveDocumentStatus(first(conductDocs))
	m.CompliancePolicy = ResolveDocumentStatus(first(policyDocs))
	m.RiskLevel = LatestValue(riskEntries,
		func(e models.RiskMatrixEntry) string { return e.Level }, models.RiskLow)
	m.DueDiligenceStatus = LatestValue(dueDiligence,
		func(e models.DueDiligenceEntry) string { return e.Status }, models.DueDiligencePending)

	return m, nil
}

func (s *MetricsService) latestDocument(ctx context.Context, institutionID uint, kind string, dest *[]models.InstitutionDocument) error {
	err := s.db.WithContext(ctx).
		Where("institution_id = ? AND kind = ?", institutionID, kind).
		Order("updated_at DESC").
		Limit(1).
		Find(dest).Error
	if err != nil {
		return &UpstreamError{Op: "read document " + kind, Err: err}
	}
	return nil
}

func (s *MetricsService) count(ctx context.Context, model interface{}, dest *int64, query string, args ...interface{}) error {
	err := s.db.WithContext(ctx).Model(model).Where(query, args...).Count(dest).Error
	if err != nil {
		return &UpstreamError{Op: "count rows", Err: err}
	}
	return nil
}

func first[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}
