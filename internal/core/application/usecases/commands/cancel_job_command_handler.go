package commands

import (
	"context"

	"spotserve/internal/core/domain/model/job"
)

// CancelJobCommandHandler handles the business logic for job cancellation.
// Verifies ownership, transitions the job to "cancelled" and persists the
// change conditionally so a concurrent accept cannot be overwritten.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelJobCommandHandler creates a handler for job cancellation operations.
func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. The write is conditional on the
// job still being in "pending" status, so a mechanic who accepted the job in
// the meantime wins the race and the cancellation fails with a status
// conflict instead of silently undoing the assignment.
func (h *CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.CustomerID()); err != nil {
		return err
	}

	if err = jobRepo.UpdateIfStatus(ctx, aggregate, job.Pending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
