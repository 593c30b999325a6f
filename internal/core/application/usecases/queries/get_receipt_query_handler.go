package queries

import (
	"context"

	"spotserve/internal/core/domain/services"
	"spotserve/internal/core/ports"
	"spotserve/internal/pkg/errs"
)

// GetReceiptQueryHandler builds a job's receipt for its owner. The service
// name comes from the pricer so the receipt still renders after the catalog
// entry was deleted; the amounts come from the job itself, frozen at the
// time they were charged.
type GetReceiptQueryHandler struct {
	jobRepo ports.JobRepository
	pricer  services.JobPricer
}

// NewGetReceiptQueryHandler creates a handler for receipt queries.
func NewGetReceiptQueryHandler(jobRepo ports.JobRepository, pricer services.JobPricer) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{jobRepo: jobRepo, pricer: pricer}
}

// Handle executes the receipt query. Requesters other than the owning
// customer get an error unwrapping to errs.ErrForbidden.
func (h GetReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetReceiptQuery,
) (GetReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReceiptQueryResponse{}, err
	}

	aggregate, err := h.jobRepo.Get(ctx, query.JobID())
	if err != nil {
		return GetReceiptQueryResponse{}, err
	}

	if !aggregate.Customer().IsEqual(query.CustomerID()) {
		return GetReceiptQueryResponse{}, errs.NewForbiddenError("job does not belong to requester")
	}

	quote, err := h.pricer.Quote(ctx, aggregate.Service())
	if err != nil {
		return GetReceiptQueryResponse{}, err
	}

	return GetReceiptQueryResponse{
		JobID:       aggregate.ID(),
		Status:      aggregate.Status().String(),
		ServiceName: quote.ServiceName,
		Description: aggregate.Description(),
		BaseAmount:  aggregate.BaseAmount(),
		ExtraAmount: aggregate.ExtraAmount(),
		TotalAmount: aggregate.TotalAmount(),
		PaymentURL:  aggregate.PaymentURL(),
		CreatedAt:   aggregate.CreatedAt(),
	}, nil
}
