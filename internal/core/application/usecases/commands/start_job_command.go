package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrStartJobCommandIsNotConstructed = errors.New(
	"StartJobCommand must be created via NewStartJobCommand constructor",
)

// StartJobCommand represents a mechanic's arrival at the pickup location.
// Issuing it generates a one-time code that the customer reads out to the
// mechanic to prove the two parties actually met. Repeating the command
// while a code is outstanding keeps the existing code.
type StartJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	mechanicID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartJobCommand creates a command for mechanicID to request an OTP for
// jobID. Returns an error if either identifier is invalid.
func NewStartJobCommand(jobID kernel.UUID, mechanicID kernel.UUID) (StartJobCommand, error) {
	startCommand := StartJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setJobID(jobID),
		startCommand.setMechanicID(mechanicID),
	); err != nil {
		return StartJobCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartJobCommandIsNotConstructed if validation fails.
func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to start.
func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// MechanicID returns the identifier of the requesting mechanic.
func (c StartJobCommand) MechanicID() kernel.UUID {
	return c.mechanicID
}

func (c *StartJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *StartJobCommand) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	c.mechanicID = mechanicID
	return nil
}
