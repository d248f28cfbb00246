package services

import (
	"time"

	"github.com/fxdsilva/alertia/internal/models"
)

// Canonical derived labels.
const (
	StatusCompleted  = "Completed"
	StatusPending    = "Pending"
	StatusNotStarted = "Not Started"

	NetworkMunicipal = "Municipal"
	NetworkState     = "State"
	NetworkFederal   = "Federal"
	NetworkPrivate   = "Private"
	NetworkOther     = "Other"

	SpherePublic  = "Public"
	SpherePrivate = "Private"
)

// DocumentStatus is the derived state of a governance document.
type DocumentStatus struct {
	Status      string     `json:"status"` // Completed, Pending
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// ResolveDocumentStatus derives a document status from the stored row.
// A row means Completed; no row means Pending.
func ResolveDocumentStatus(doc *models.InstitutionDocument) DocumentStatus {
	if doc == nil {
		return DocumentStatus{Status: StatusPending}
	}
	updated := doc.UpdatedAt
	return DocumentStatus{Status: StatusCompleted, LastUpdated: &updated}
}

// LatestValue returns pick(rows[0]) for rows ordered newest-first, or
// fallback when rows is empty. Used for the authoritative risk level
// (fallback Low) and due-diligence status (fallback Pending).
func LatestValue[T any](rows []T, pick func(T) string, fallback string) string {
	if len(rows) == 0 {
		return fallback
	}
	return pick(rows[0])
}

// ResolveNetworkLabel collapses the non-exclusive network flags into one
// canonical label. Priority: Municipal > State > Federal > Private > Other.
func ResolveNetworkLabel(inst *models.Institution) string {
	switch {
	case inst.Municipal:
		return NetworkMunicipal
	case inst.State:
		return NetworkState
	case inst.Federal:
		return NetworkFederal
	case inst.Private:
		return NetworkPrivate
	default:
		return NetworkOther
	}
}

// ResolveSphere classifies ownership independently of the network label
// priority: the private flag alone decides.
func ResolveSphere(inst *models.Institution) string {
	if inst.Private {
		return SpherePrivate
	}
	return SpherePublic
}

// ResolveTrainingStatus derives the display status and progress for one
// catalog entry. A missing completion yields Not Started with zero progress.
// Status codes absent from the label table surface verbatim so unrecognized
// codes are never dropped silently.
func ResolveTrainingStatus(completion *models.TrainingCompletion, labels map[string]string) (string, int) {
	if completion == nil {
		return StatusNotStarted, 0
	}
	if label, ok := labels[completion.Status]; ok {
		return label, completion.Progress
	}
	return completion.Status, completion.Progress
}

// CountByKey folds rows into a count per key. Shared by the scoped and
// network aggregators so that sum-of-parts equals total by construction.
func CountByKey[T any, K comparable](rows []T, key func(T) K) map[K]int64 {
	counts := make(map[K]int64, len(rows))
	for _, row := range rows {
		counts[key(row)]++
	}
	return counts
}
