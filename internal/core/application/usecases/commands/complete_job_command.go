package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand represents the mechanic closing an ongoing job without
// collecting a staged payment, the path for work settled on the spot.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	mechanicID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command for mechanicID to close jobID.
// Returns an error if either identifier is invalid.
func NewCompleteJobCommand(jobID kernel.UUID, mechanicID kernel.UUID) (CompleteJobCommand, error) {
	completeCommand := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setJobID(jobID),
		completeCommand.setMechanicID(mechanicID),
	); err != nil {
		return CompleteJobCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteJobCommandIsNotConstructed if validation fails.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to close.
func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// MechanicID returns the identifier of the closing mechanic.
func (c CompleteJobCommand) MechanicID() kernel.UUID {
	return c.mechanicID
}

func (c *CompleteJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CompleteJobCommand) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	c.mechanicID = mechanicID
	return nil
}
