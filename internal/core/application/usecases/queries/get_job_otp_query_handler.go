package queries

import (
	"context"

	"spotserve/internal/core/ports"
)

// GetJobOtpQueryHandler loads the job through the repository so the
// aggregate's own ownership rule decides whether the code may be disclosed.
type GetJobOtpQueryHandler struct {
	jobRepo ports.JobRepository
}

// NewGetJobOtpQueryHandler creates a handler for OTP disclosure.
func NewGetJobOtpQueryHandler(jobRepo ports.JobRepository) GetJobOtpQueryHandler {
	return GetJobOtpQueryHandler{jobRepo: jobRepo}
}

// Handle executes the disclosure query. Requesters other than the owning
// customer get an error unwrapping to errs.ErrForbidden; an owner with no
// active code gets a nil Code rather than an error.
func (h GetJobOtpQueryHandler) Handle(
	ctx context.Context,
	query GetJobOtpQuery,
) (GetJobOtpQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobOtpQueryResponse{}, err
	}

	aggregate, err := h.jobRepo.Get(ctx, query.JobID())
	if err != nil {
		return GetJobOtpQueryResponse{}, err
	}

	code, err := aggregate.OTPForCustomer(query.CustomerID())
	if err != nil {
		return GetJobOtpQueryResponse{}, err
	}

	return GetJobOtpQueryResponse{Code: code}, nil
}
