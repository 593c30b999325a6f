package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var (
	ErrVerifyOtpCommandIsNotConstructed = errors.New(
		"VerifyOtpCommand must be created via NewVerifyOtpCommand constructor",
	)
	ErrOtpCodeIsRequired = errors.New("otp code is required")
)

// VerifyOtpCommand represents the mechanic presenting the code received from
// the customer. A correct code moves the job to "ongoing" and consumes the
// code; a wrong code changes nothing and may be retried.
type VerifyOtpCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	mechanicID kernel.UUID
	code       string

	guard guard.ConstructorGuard
}

// NewVerifyOtpCommand creates a command for mechanicID to present code for
// jobID. Returns an error if an identifier is invalid or the code is empty.
func NewVerifyOtpCommand(jobID kernel.UUID, mechanicID kernel.UUID, code string) (VerifyOtpCommand, error) {
	verifyCommand := VerifyOtpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		verifyCommand.setJobID(jobID),
		verifyCommand.setMechanicID(mechanicID),
		verifyCommand.setCode(code),
	); err != nil {
		return VerifyOtpCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyOtpCommandIsNotConstructed if validation fails.
func (c VerifyOtpCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOtpCommandIsNotConstructed)
}

// JobID returns the identifier of the job being started.
func (c VerifyOtpCommand) JobID() kernel.UUID {
	return c.jobID
}

// MechanicID returns the identifier of the presenting mechanic.
func (c VerifyOtpCommand) MechanicID() kernel.UUID {
	return c.mechanicID
}

// Code returns the presented one-time code.
func (c VerifyOtpCommand) Code() string {
	return c.code
}

func (c *VerifyOtpCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *VerifyOtpCommand) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	c.mechanicID = mechanicID
	return nil
}

func (c *VerifyOtpCommand) setCode(code string) error {
	if code == "" {
		return ErrOtpCodeIsRequired
	}

	c.code = code
	return nil
}
