package queries

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrGetJobOtpQueryIsNotConstructed = errors.New(
	"GetJobOtpQuery must be created via NewGetJobOtpQuery constructor",
)

// GetJobOtpQuery discloses the active one-time code to the job's owner.
// The customer reads the code out to the mechanic in person; this query is
// the only channel through which the code ever leaves the system.
type GetJobOtpQuery struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobOtpQuery creates a query for customerID to read the code on
// jobID. Returns an error if either identifier is invalid.
func NewGetJobOtpQuery(jobID kernel.UUID, customerID kernel.UUID) (GetJobOtpQuery, error) {
	query := GetJobOtpQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setJobID(jobID),
		query.setCustomerID(customerID),
	); err != nil {
		return GetJobOtpQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobOtpQueryIsNotConstructed if validation fails.
func (q GetJobOtpQuery) Validate() error {
	return q.guard.Validate(ErrGetJobOtpQueryIsNotConstructed)
}

// JobID returns the identifier of the job whose code is requested.
func (q GetJobOtpQuery) JobID() kernel.UUID {
	return q.jobID
}

// CustomerID returns the identifier of the requesting customer.
func (q GetJobOtpQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetJobOtpQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

func (q *GetJobOtpQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetJobOtpQueryResponse carries the active code, nil when none has been
// issued yet or the handshake already completed.
type GetJobOtpQueryResponse struct {
	Code *string
}
