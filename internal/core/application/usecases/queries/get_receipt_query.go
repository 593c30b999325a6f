package queries

import (
	"errors"
	"time"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrGetReceiptQueryIsNotConstructed = errors.New(
	"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
)

// GetReceiptQuery retrieves the itemized receipt of a job for its owner:
// the service, the base and extra amounts and the total, plus the payment
// link while one is outstanding.
type GetReceiptQuery struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates a query for customerID's receipt on jobID.
// Returns an error if either identifier is invalid.
func NewGetReceiptQuery(jobID kernel.UUID, customerID kernel.UUID) (GetReceiptQuery, error) {
	query := GetReceiptQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setJobID(jobID),
		query.setCustomerID(customerID),
	); err != nil {
		return GetReceiptQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReceiptQueryIsNotConstructed if validation fails.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// JobID returns the identifier of the job whose receipt is requested.
func (q GetReceiptQuery) JobID() kernel.UUID {
	return q.jobID
}

// CustomerID returns the identifier of the requesting customer.
func (q GetReceiptQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetReceiptQuery) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	q.jobID = jobID
	return nil
}

func (q *GetReceiptQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// GetReceiptQueryResponse is the itemized receipt of a job.
type GetReceiptQueryResponse struct {
	JobID       kernel.UUID
	Status      string
	ServiceName string
	Description string
	BaseAmount  float64
	ExtraAmount float64
	TotalAmount float64
	PaymentURL  *string
	CreatedAt   time.Time
}
