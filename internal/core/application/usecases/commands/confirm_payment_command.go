package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records that the payment for a job has settled.
// It is issued by the payment provider callback and by the reconciliation
// job, so it must be safe to apply more than once.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to settle the payment for
// jobID. Returns an error if the identifier is invalid.
func NewConfirmPaymentCommand(jobID kernel.UUID) (ConfirmPaymentCommand, error) {
	confirmCommand := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := confirmCommand.setJobID(jobID); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmPaymentCommandIsNotConstructed if validation fails.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// JobID returns the identifier of the job whose payment settled.
func (c ConfirmPaymentCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ConfirmPaymentCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
