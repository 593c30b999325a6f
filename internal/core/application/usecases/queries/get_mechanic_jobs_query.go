package queries

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrGetMechanicJobsQueryIsNotConstructed = errors.New(
	"GetMechanicJobsQuery must be created via NewGetMechanicJobsQuery constructor",
)

// GetMechanicJobsQuery retrieves every job assigned to a mechanic, in
// creation order, regardless of status.
type GetMechanicJobsQuery struct { //nolint:recvcheck //using for validation
	mechanicID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMechanicJobsQuery creates a query for mechanicID's assigned jobs.
// Returns an error if the identifier is invalid.
func NewGetMechanicJobsQuery(mechanicID kernel.UUID) (GetMechanicJobsQuery, error) {
	query := GetMechanicJobsQuery{guard: guard.NewConstructorGuard()}

	if err := query.setMechanicID(mechanicID); err != nil {
		return GetMechanicJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMechanicJobsQueryIsNotConstructed if validation fails.
func (q GetMechanicJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetMechanicJobsQueryIsNotConstructed)
}

// MechanicID returns the identifier of the mechanic whose jobs are listed.
func (q GetMechanicJobsQuery) MechanicID() kernel.UUID {
	return q.mechanicID
}

func (q *GetMechanicJobsQuery) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	q.mechanicID = mechanicID
	return nil
}
