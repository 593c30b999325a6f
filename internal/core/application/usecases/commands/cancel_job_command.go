package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a customer's request to withdraw a pending
// job. Only the owning customer may cancel, and only while no mechanic has
// accepted the job.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a pending job on behalf
// of customerID. Returns an error if either identifier is invalid.
func NewCancelJobCommand(jobID kernel.UUID, customerID kernel.UUID) (CancelJobCommand, error) {
	cancelCommand := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setJobID(jobID),
		cancelCommand.setCustomerID(customerID),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelJobCommandIsNotConstructed if validation fails.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to cancel.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the identifier of the requesting customer.
func (c CancelJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
