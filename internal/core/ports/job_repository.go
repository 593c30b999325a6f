// Package ports defines the contracts between the domain layer and
// infrastructure: the job repository, the unit of work, and the external
// collaborators (service catalog, payment provider, mechanic directory).
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate
	// unconditionally. Use UpdateIfStatus for transitions that may race.
	Update(ctx context.Context, aggregate *job.Job) error

	// UpdateIfStatus persists the aggregate only if the stored row is
	// still in the expected status, as a single atomic conditional
	// update. When the row has moved on (another actor won a race on the
	// same job), it fails with an error unwrapping to
	// errs.ErrStatusConflict and writes nothing.
	//
	// This is the mechanism behind the at-most-one-assignment guarantee:
	// the accept transition must go through UpdateIfStatus keyed on
	// Pending, never through a read-then-write Update.
	UpdateIfStatus(ctx context.Context, aggregate *job.Job, expected job.Status) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllUnassigned retrieves all Pending jobs without a mechanic, in
	// creation order. This is the matching engine's input set; creation
	// order is what breaks distance ties during ranking.
	GetAllUnassigned(ctx context.Context) ([]*job.Job, error)

	// GetByCustomer retrieves all jobs owned by a customer, in creation order.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*job.Job, error)

	// GetByMechanic retrieves all jobs assigned to a mechanic, in creation order.
	GetByMechanic(ctx context.Context, mechanicID kernel.UUID) ([]*job.Job, error)

	// GetAllInPaymentPendingStatus retrieves jobs waiting for settlement,
	// used by the payment reconciliation job.
	GetAllInPaymentPendingStatus(ctx context.Context) ([]*job.Job, error)
}
