// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job domain aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Maps job domain entities to relational database tables with proper indexing
// for efficient querying by customer, mechanic and status.
type JobDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	ServiceID       uuid.UUID  `gorm:"type:uuid"`
	VehicleID       uuid.UUID  `gorm:"type:uuid"`
	MechanicID      *uuid.UUID `gorm:"type:uuid;index"`
	Description     string
	Status          int `gorm:"index"`
	OtpCode         *string
	PickupLatitude  *float64
	PickupLongitude *float64
	BaseAmount      float64
	ExtraAmount     float64
	TotalAmount     float64
	PaymentURL      *string `gorm:"column:payment_url"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
// Maps all job attributes including the optional mechanic assignment, pickup
// coordinates and payment fields.
func fromDomain(aggregate *job.Job) JobDTO {
	var mechanicID *uuid.UUID
	if id := aggregate.Mechanic(); id != nil {
		raw := id.Bytes()
		mechanicID = &raw
	}

	var pickupLat, pickupLng *float64
	if pickup := aggregate.Pickup(); pickup != nil {
		lat := pickup.Latitude()
		lng := pickup.Longitude()
		pickupLat = &lat
		pickupLng = &lng
	}

	return JobDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.Customer().Bytes(),
		ServiceID:       aggregate.Service().Bytes(),
		VehicleID:       aggregate.Vehicle().Bytes(),
		MechanicID:      mechanicID,
		Description:     aggregate.Description(),
		Status:          int(aggregate.Status()),
		OtpCode:         aggregate.OTP(),
		PickupLatitude:  pickupLat,
		PickupLongitude: pickupLng,
		BaseAmount:      aggregate.BaseAmount(),
		ExtraAmount:     aggregate.ExtraAmount(),
		TotalAmount:     aggregate.TotalAmount(),
		PaymentURL:      aggregate.PaymentURL(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including status, mechanic assignment
// and payment fields using RestoreJob, which re-validates consistency.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var mechanicID *kernel.UUID
	if dto.MechanicID != nil {
		mID, mechanicErr := kernel.UUIDFromBytes((*dto.MechanicID)[:])
		if mechanicErr != nil {
			return nil, mechanicErr
		}

		mechanicID = &mID
	}

	var pickup *kernel.GeoPoint
	if dto.PickupLatitude != nil && dto.PickupLongitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.PickupLatitude, *dto.PickupLongitude)
		if geoErr != nil {
			return nil, geoErr
		}

		pickup = &point
	}

	return job.RestoreJob(
		id,
		customerID,
		serviceID,
		vehicleID,
		mechanicID,
		dto.Description,
		pickup,
		job.Status(dto.Status),
		dto.OtpCode,
		dto.CreatedAt,
		dto.BaseAmount,
		dto.ExtraAmount,
		dto.TotalAmount,
		dto.PaymentURL,
	)
}
