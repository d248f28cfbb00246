package services

import (
	"context"

	"github.com/fxdsilva/alertia/internal/models"
	"golang.org/x/sync/errgroup"
)

// SchoolRow is one institution's line in the network summary.
type SchoolRow struct {
	InstitutionID       uint   `json:"institution_id"`
	Name                string `json:"name"`
	NetworkLabel        string `json:"network_label"`
	Sphere              string `json:"sphere"`
	ComplaintsCount     int64  `json:"complaints_count"`
	InvestigationsCount int64  `json:"investigations_count"`
	MediationsCount     int64  `json:"mediations_count"`
	TrainingsCount      int64  `json:"trainings_count"`
}

// DashboardSummary is the cross-institution snapshot. Totals are the raw row
// counts of the unscoped reads, so the sum of the per-school counts always
// equals the corresponding total.
type DashboardSummary struct {
	Schools             []SchoolRow `json:"schools"`
	TotalComplaints     int64       `json:"total_complaints"`
	TotalInvestigations int64       `json:"total_investigations"`
	TotalMediations     int64       `json:"total_mediations"`
	TotalTrainings      int64       `json:"total_trainings"`
}

// ComputeSummary builds the network-wide summary over all active
// institutions. It fails only if a storage read fails; institutions with no
// related records get zero counts. Row order follows the institution read
// (sorted by name).
func (s *MetricsService) ComputeSummary(ctx context.Context) (*DashboardSummary, error) {
	var institutions []models.Institution
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&institutions).Error
	if err != nil {
		return nil, &UpstreamError{Op: "read institutions", Err: err}
	}

	if len(institutions) == 0 {
		return &DashboardSummary{Schools: []SchoolRow{}}, nil
	}

	// Restrict every read to the listed institutions; records owned by
	// deactivated ones would otherwise count into the totals without
	// appearing in any row.
	instIDs := make([]uint, len(institutions))
	for i := range institutions {
		instIDs[i] = institutions[i].ID
	}

	var (
		complaints     []models.Complaint
		investigations []models.Investigation
		mediations     []models.Mediation
		trainings      []models.Training
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("institution_id IN ? AND status IN ?", instIDs, models.ActiveComplaintStatuses).
			Find(&complaints).Error
		if err != nil {
			return &UpstreamError{Op: "read active complaints", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("institution_id IN ? AND status <> ?", instIDs, models.ProcessConcluded).
			Find(&investigations).Error
		if err != nil {
			return &UpstreamError{Op: "read open investigations", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("institution_id IN ? AND status <> ?", instIDs, models.ProcessConcluded).
			Find(&mediations).Error
		if err != nil {
			return &UpstreamError{Op: "read open mediations", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("institution_id IN ? AND active = ?", instIDs, true).
			Find(&trainings).Error
		if err != nil {
			return &UpstreamError{Op: "read active trainings", Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	complaintCounts := CountByKey(complaints,
		func(c models.Complaint) uint { return c.InstitutionID })
	investigationCounts := CountByKey(investigations,
		func(i models.Investigation) uint { return i.InstitutionID })
	mediationCounts := CountByKey(mediations,
		func(m models.Mediation) uint { return m.InstitutionID })
	trainingCounts := CountByKey(trainings,
		func(t models.Training) uint { return t.InstitutionID })

	schools := make([]SchoolRow, 0, len(institutions))
	for i := range institutions {
		inst := &institutions[i]
		schools = append(schools, SchoolRow{
			InstitutionID:       inst.ID,
			Name:                inst.Name,
			NetworkLabel:        ResolveNetworkLabel(inst),
			Sphere:              ResolveSphere(inst),
			ComplaintsCount:     complaintCounts[inst.ID],
			InvestigationsCount: investigationCounts[inst.ID],
			MediationsCount:     mediationCounts[inst.ID],
			TrainingsCount:      trainingCounts[inst.ID],
		})
	}

	return &DashboardSummary{
		Schools:             schools,
		TotalComplaints:     int64(len(complaints)),
		TotalInvestigations: int64(len(investigations)),
		TotalMediations:     int64(len(mediations)),
		TotalTrainings:      int64(len(trainings)),
	}, nil
}
