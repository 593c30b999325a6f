package commands

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
)

// CreateJobCommand represents a customer's request for roadside assistance.
// Encapsulates the requested service, the vehicle, a free-form description
// of the problem and an optional pickup location.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	pickup, _ := kernel.NewGeoPoint(12.90, 77.60)
//	cmd, err := NewCreateJobCommand(jobID, customerID, serviceID, vehicleID, "flat tire", &pickup)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory, pricer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	customerID  kernel.UUID
	serviceID   kernel.UUID
	vehicleID   kernel.UUID
	description string
	pickup      *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new assistance job.
// The pickup location may be nil for customers who cannot share coordinates;
// such jobs are ranked last during matching. Returns an error if any
// identifier is invalid or the description is empty.
func NewCreateJobCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	vehicleID kernel.UUID,
	description string,
	pickup *kernel.GeoPoint,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setCustomerID(customerID),
		jobCommand.setServiceID(serviceID),
		jobCommand.setVehicleID(vehicleID),
		jobCommand.setDescription(description),
		jobCommand.setPickup(pickup),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the identifier of the requesting customer.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceID returns the identifier of the requested catalog service.
func (c CreateJobCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// VehicleID returns the identifier of the vehicle needing assistance.
func (c CreateJobCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Description returns the customer's description of the problem.
func (c CreateJobCommand) Description() string {
	return c.description
}

// Pickup returns the optional pickup location, nil when not shared.
func (c CreateJobCommand) Pickup() *kernel.GeoPoint {
	return c.pickup
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}

func (c *CreateJobCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateJobCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateJobCommand) setPickup(pickup *kernel.GeoPoint) error {
	if pickup != nil {
		if err := pickup.Validate(); err != nil {
			return err
		}
	}

	c.pickup = pickup
	return nil
}
