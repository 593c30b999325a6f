package commands

import (
	"context"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/services"
)

// StartJobResult reports the outcome of an OTP request.
type StartJobResult struct {
	// AlreadyIssued is true when a code was already outstanding for the
	// job and no new code was generated. The code itself is never returned
	// to the mechanic; the customer reads it from their own view.
	AlreadyIssued bool
}

// StartJobCommandHandler handles the business logic for the OTP handshake.
// Generates a six digit code on first request and keeps the existing code
// on repeats, so a mechanic tapping twice cannot invalidate the code the
// customer is already looking at.
type StartJobCommandHandler struct {
	uowFactory   JobUoWFactory
	otpGenerator services.OtpGenerator
}

// NewStartJobCommandHandler creates a handler for OTP issue operations.
func NewStartJobCommandHandler(
	uowFactory JobUoWFactory,
	otpGenerator services.OtpGenerator,
) StartJobCommandHandler {
	return StartJobCommandHandler{
		uowFactory:   uowFactory,
		otpGenerator: otpGenerator,
	}
}

// Handle processes the OTP request. Only the assigned mechanic may issue,
// and only while the job is "accepted". When a code is already outstanding
// the result reports AlreadyIssued and nothing is written.
func (h *StartJobCommandHandler) Handle(ctx context.Context, cmd StartJobCommand) (StartJobResult, error) {
	if err := cmd.Validate(); err != nil {
		return StartJobResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StartJobResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return StartJobResult{}, err
	}

	alreadyIssued, err := aggregate.IssueOTP(cmd.MechanicID(), h.otpGenerator.Generate())
	if err != nil {
		return StartJobResult{}, err
	}

	if alreadyIssued {
		return StartJobResult{AlreadyIssued: true}, nil
	}

	if err = jobRepo.UpdateIfStatus(ctx, aggregate, job.Accepted); err != nil {
		return StartJobResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return StartJobResult{}, err
	}

	return StartJobResult{}, nil
}
