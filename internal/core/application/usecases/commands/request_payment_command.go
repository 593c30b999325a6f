package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var (
	ErrRequestPaymentCommandIsNotConstructed = errors.New(
		"RequestPaymentCommand must be created via NewRequestPaymentCommand constructor",
	)
	ErrExtraAmountIsNegative = errors.New("extra amount must not be negative")
)

// RequestPaymentCommand represents the mechanic finishing the work and
// asking the customer to pay before closing the job. The extra amount covers
// parts and labor beyond the base price quoted at creation.
type RequestPaymentCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	mechanicID  kernel.UUID
	extraAmount float64

	guard guard.ConstructorGuard
}

// NewRequestPaymentCommand creates a command for mechanicID to stage a
// payment for jobID with the given extra amount. Returns an error if an
// identifier is invalid or the extra amount is negative.
func NewRequestPaymentCommand(
	jobID kernel.UUID,
	mechanicID kernel.UUID,
	extraAmount float64,
) (RequestPaymentCommand, error) {
	paymentCommand := RequestPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setJobID(jobID),
		paymentCommand.setMechanicID(mechanicID),
		paymentCommand.setExtraAmount(extraAmount),
	); err != nil {
		return RequestPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestPaymentCommandIsNotConstructed if validation fails.
func (c RequestPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRequestPaymentCommandIsNotConstructed)
}

// JobID returns the identifier of the job to stage payment for.
func (c RequestPaymentCommand) JobID() kernel.UUID {
	return c.jobID
}

// MechanicID returns the identifier of the requesting mechanic.
func (c RequestPaymentCommand) MechanicID() kernel.UUID {
	return c.mechanicID
}

// ExtraAmount returns the surcharge on top of the base amount.
func (c RequestPaymentCommand) ExtraAmount() float64 {
	return c.extraAmount
}

func (c *RequestPaymentCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RequestPaymentCommand) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	c.mechanicID = mechanicID
	return nil
}

func (c *RequestPaymentCommand) setExtraAmount(extraAmount float64) error {
	if extraAmount < 0 {
		return ErrExtraAmountIsNegative
	}

	c.extraAmount = extraAmount
	return nil
}
