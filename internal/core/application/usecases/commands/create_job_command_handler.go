package commands

import (
	"context"
	"time"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/services"
)

// CreateJobCommandHandler handles the business logic for job creation.
// Resolves the base amount through the pricer and creates new jobs in
// "pending" status, ready to be discovered by nearby mechanics.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory, pricer)
//	cmd, _ := NewCreateJobCommand(jobID, customerID, serviceID, vehicleID, "flat tire", &pickup)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job creation failed: %w", err)
//	}
//	// Job is now pending and visible to nearby mechanics
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	pricer     services.JobPricer
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
// Requires a JobUoWFactory for transactional persistence and a JobPricer to
// resolve the base amount at creation time.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory, pricer services.JobPricer) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the job creation command.
// Resolves the service price (falling back to the configured default when
// the catalog record is missing) and persists the job in "pending" status.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	quote, err := h.pricer.Quote(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	aggregate, err := job.NewJob(
		cmd.JobID(),
		cmd.CustomerID(),
		cmd.ServiceID(),
		cmd.VehicleID(),
		cmd.Description(),
		cmd.Pickup(),
		quote.BaseAmount,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = jobRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
