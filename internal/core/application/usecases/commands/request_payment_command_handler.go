package commands

import (
	"context"
	"fmt"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/ports"
	"spotserve/internal/pkg/errs"
)

// RequestPaymentResult carries the checkout details back to the mechanic,
// who relays the payment link to the customer.
type RequestPaymentResult struct {
	CheckoutURL string
	TotalAmount float64
}

// RequestPaymentCommandHandler handles the business logic for staging a
// payment. Opens a checkout session with the payment provider and moves the
// job to "payment-pending"; a provider failure leaves the job "ongoing" so
// the mechanic can retry.
type RequestPaymentCommandHandler struct {
	uowFactory      JobUoWFactory
	paymentProvider ports.PaymentProvider
}

// NewRequestPaymentCommandHandler creates a handler for payment staging operations.
func NewRequestPaymentCommandHandler(
	uowFactory JobUoWFactory,
	paymentProvider ports.PaymentProvider,
) RequestPaymentCommandHandler {
	return RequestPaymentCommandHandler{
		uowFactory:      uowFactory,
		paymentProvider: paymentProvider,
	}
}

// Handle processes the payment staging command. The provider is called only
// after the preconditions hold, and the transition is persisted only after
// the provider handed back a checkout URL, so the order of failure modes is:
// forbidden, invalid state, provider error, then status conflict on a race.
func (h *RequestPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd RequestPaymentCommand,
) (RequestPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return RequestPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RequestPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return RequestPaymentResult{}, err
	}

	if aggregate.Mechanic() == nil || !aggregate.Mechanic().IsEqual(cmd.MechanicID()) {
		return RequestPaymentResult{}, errs.NewForbiddenError("job is not assigned to requester")
	}

	if aggregate.Status() != job.Ongoing {
		return RequestPaymentResult{}, errs.NewInvalidStateError(
			"request payment", aggregate.Status().String(),
		)
	}

	totalAmount := aggregate.BaseAmount() + cmd.ExtraAmount()
	session, err := h.paymentProvider.CreateCheckoutSession(
		ctx,
		aggregate.ID(),
		totalAmount,
		fmt.Sprintf("payment for job %s", aggregate.ID()),
	)
	if err != nil {
		return RequestPaymentResult{}, errs.NewPaymentProviderError(err)
	}

	if err = aggregate.RequestPayment(session.URL, cmd.ExtraAmount()); err != nil {
		return RequestPaymentResult{}, err
	}

	if err = jobRepo.UpdateIfStatus(ctx, aggregate, job.Ongoing); err != nil {
		return RequestPaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RequestPaymentResult{}, err
	}

	return RequestPaymentResult{
		CheckoutURL: session.URL,
		TotalAmount: aggregate.TotalAmount(),
	}, nil
}
