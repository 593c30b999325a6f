package commands

import (
	"context"

	"spotserve/internal/core/domain/model/job"
)

// VerifyOtpCommandHandler handles the business logic for OTP verification.
// A matching code proves the mechanic and customer met in person; the job
// then moves from "accepted" to "ongoing" and the code is consumed.
type VerifyOtpCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewVerifyOtpCommandHandler creates a handler for OTP verification operations.
func NewVerifyOtpCommandHandler(uowFactory JobUoWFactory) VerifyOtpCommandHandler {
	return VerifyOtpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command. A wrong or absent code fails
// with an error unwrapping to errs.ErrInvalidCredential and leaves the
// stored code intact for another attempt.
func (h *VerifyOtpCommandHandler) Handle(ctx context.Context, cmd VerifyOtpCommand) error {
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

	if err = aggregate.VerifyOTP(cmd.MechanicID(), cmd.Code()); err != nil {
		return err
	}

	if err = jobRepo.UpdateIfStatus(ctx, aggregate, job.Accepted); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
