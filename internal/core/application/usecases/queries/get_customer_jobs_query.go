package queries

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrGetCustomerJobsQueryIsNotConstructed = errors.New(
	"GetCustomerJobsQuery must be created via NewGetCustomerJobsQuery constructor",
)

// GetCustomerJobsQuery retrieves every job a customer has created, in
// creation order, regardless of status.
//
// Example:
//
//	query, _ := NewGetCustomerJobsQuery(customerID)
//	handler := NewGetCustomerJobsQueryHandler(db, pricer)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list jobs: %w", err)
//	}
type GetCustomerJobsQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerJobsQuery creates a query for customerID's jobs.
// Returns an error if the identifier is invalid.
func NewGetCustomerJobsQuery(customerID kernel.UUID) (GetCustomerJobsQuery, error) {
	query := GetCustomerJobsQuery{guard: guard.NewConstructorGuard()}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerJobsQueryIsNotConstructed if validation fails.
func (q GetCustomerJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerJobsQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose jobs are listed.
func (q GetCustomerJobsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerJobsQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
