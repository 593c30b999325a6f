package commands

import (
	"context"

	"spotserve/internal/core/domain/model/job"
)

// AcceptJobCommandHandler handles the business logic for claiming a job.
// Assignment must be atomic: the read-check-claim sequence is protected by a
// conditional update keyed on the "pending" status, so two mechanics who both
// saw the job as available cannot both be recorded as its mechanic.
type AcceptJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewAcceptJobCommandHandler creates a handler for job claim operations.
func NewAcceptJobCommandHandler(uowFactory JobUoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command. Loads the job, applies the accept
// transition and persists it only if the stored row is still "pending".
// A losing racer gets an error unwrapping to errs.ErrStatusConflict and
// writes nothing.
func (h *AcceptJobCommandHandler) Handle(ctx context.Context, cmd AcceptJobCommand) error {
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

	if err = aggregate.Accept(cmd.MechanicID()); err != nil {
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
