package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand represents a mechanic's claim on a pending job.
// When several mechanics race for the same job, exactly one claim succeeds;
// the rest receive a status conflict.
//
// Example:
//
//	cmd, _ := NewAcceptJobCommand(jobID, mechanicID)
//	handler := NewAcceptJobCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStatusConflict) {
//	    // another mechanic claimed the job first
//	}
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	mechanicID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptJobCommand creates a command for mechanicID to claim jobID.
// Returns an error if either identifier is invalid.
func NewAcceptJobCommand(jobID kernel.UUID, mechanicID kernel.UUID) (AcceptJobCommand, error) {
	acceptCommand := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setJobID(jobID),
		acceptCommand.setMechanicID(mechanicID),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptJobCommandIsNotConstructed if validation fails.
func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being claimed.
func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// MechanicID returns the identifier of the claiming mechanic.
func (c AcceptJobCommand) MechanicID() kernel.UUID {
	return c.mechanicID
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	c.mechanicID = mechanicID
	return nil
}
