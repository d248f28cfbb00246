package services

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the aggregation and report services.
var (
	// ErrInstitutionNotFound is returned when the referenced institution id
	// does not exist in the institution collection.
	ErrInstitutionNotFound = errors.New("institution not found")

	// ErrUnresolvableTarget is returned when a report cannot be bound to any
	// institution because the institution collection is empty.
	ErrUnresolvableTarget = errors.New("no institution available to bind report")

	// ErrInvalidScope is returned for report scopes other than global/school.
	ErrInvalidScope = errors.New("invalid report scope")
)

// UpstreamError wraps a storage read failure opaque to the core. Any upstream
// failure aborts the whole in-progress aggregation; no partial snapshots.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure during %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// PersistenceError wraps a failed write to the report collection. The
// orchestrator does not retry; the error is surfaced verbatim.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist report: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
