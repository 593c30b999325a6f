package commands

import (
	"context"

	"spotserve/internal/core/domain/model/job"
)

// ConfirmPaymentCommandHandler handles the business logic for payment
// settlement. Moves the job from "payment-pending" to "completed" and clears
// the checkout URL. Confirming an already completed job is a no-op, which
// makes the provider callback and the reconciliation poller safe to overlap.
type ConfirmPaymentCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment settlement operations.
func NewConfirmPaymentCommandHandler(uowFactory JobUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	if aggregate.Status() == job.Completed {
		return nil
	}

	if err = aggregate.ConfirmPayment(); err != nil {
		return err
	}

	if err = jobRepo.UpdateIfStatus(ctx, aggregate, job.PaymentPending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
