package commands

import (
	"context"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/pkg/errs"
)

// CompleteJobCommandHandler handles the business logic for closing a job
// directly from "ongoing", bypassing the staged payment flow.
type CompleteJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCompleteJobCommandHandler creates a handler for direct completion operations.
func NewCompleteJobCommandHandler(uowFactory JobUoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. Only the assigned mechanic may
// close the job, and only while it is "ongoing".
func (h *CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
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

	if aggregate.Mechanic() == nil || !aggregate.Mechanic().IsEqual(cmd.MechanicID()) {
		return errs.NewForbiddenError("job is not assigned to requester")
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = jobRepo.UpdateIfStatus(ctx, aggregate, job.Ongoing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
