// Package queries contains read-only operations for retrieving job state.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database or repositories and return response structs, never
// domain aggregates.
package queries

import (
	"context"
	"database/sql"
	"time"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/domain/services"

	"github.com/google/uuid"
)

// JobView is the read model of a single job, shared by the customer and
// mechanic listings. The OTP code is deliberately absent; it is only
// disclosed through the dedicated OTP query.
type JobView struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	ServiceID   kernel.UUID
	VehicleID   kernel.UUID
	MechanicID  *kernel.UUID
	Description string
	Status      string
	ServiceName string
	Pickup      *kernel.GeoPoint
	BaseAmount  float64
	ExtraAmount float64
	TotalAmount float64
	PaymentURL  *string
	CreatedAt   time.Time
}

// jobViewColumns is the select list every listing query scans from, in the
// order scanJobView reads it.
const jobViewColumns = `
		id,
		customer_id,
		service_id,
		vehicle_id,
		mechanic_id,
		description,
		status,
		pickup_latitude,
		pickup_longitude,
		base_amount,
		extra_amount,
		total_amount,
		payment_url,
		created_at`

// scanJobView reads one row produced with jobViewColumns. The service name
// is resolved afterwards, per row, through the pricer.
func scanJobView(rows *sql.Rows) (JobView, error) {
	var (
		view        JobView
		id          uuid.UUID
		customerID  uuid.UUID
		serviceID   uuid.UUID
		vehicleID   uuid.UUID
		mechanicID  uuid.NullUUID
		pickupLat   sql.NullFloat64
		pickupLng   sql.NullFloat64
		paymentURL  sql.NullString
		description string
		status      int
	)

	err := rows.Scan(
		&id,
		&customerID,
		&serviceID,
		&vehicleID,
		&mechanicID,
		&description,
		&status,
		&pickupLat,
		&pickupLng,
		&view.BaseAmount,
		&view.ExtraAmount,
		&view.TotalAmount,
		&paymentURL,
		&view.CreatedAt,
	)
	if err != nil {
		return JobView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return JobView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return JobView{}, err
	}
	if view.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
		return JobView{}, err
	}
	if view.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return JobView{}, err
	}

	if mechanicID.Valid {
		mechID, idErr := kernel.UUIDFromBytes(mechanicID.UUID[:])
		if idErr != nil {
			return JobView{}, idErr
		}
		view.MechanicID = &mechID
	}

	if pickupLat.Valid && pickupLng.Valid {
		pickup, geoErr := kernel.NewGeoPoint(pickupLat.Float64, pickupLng.Float64)
		if geoErr != nil {
			return JobView{}, geoErr
		}
		view.Pickup = &pickup
	}

	if paymentURL.Valid {
		view.PaymentURL = &paymentURL.String
	}

	view.Description = description
	view.Status = job.Status(status).String()
	return view, nil
}

// jobViewFromAggregate projects a domain job into the read model, used by
// handlers that go through the repository instead of raw SQL.
func jobViewFromAggregate(aggregate *job.Job) JobView {
	return JobView{
		ID:          aggregate.ID(),
		CustomerID:  aggregate.Customer(),
		ServiceID:   aggregate.Service(),
		VehicleID:   aggregate.Vehicle(),
		MechanicID:  aggregate.Mechanic(),
		Description: aggregate.Description(),
		Status:      aggregate.Status().String(),
		Pickup:      aggregate.Pickup(),
		BaseAmount:  aggregate.BaseAmount(),
		ExtraAmount: aggregate.ExtraAmount(),
		TotalAmount: aggregate.TotalAmount(),
		PaymentURL:  aggregate.PaymentURL(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// resolveServiceNames fills ServiceName on each view through the pricer, so
// deleted catalog entries surface as the fallback name rather than an error.
func resolveServiceNames(ctx context.Context, pricer services.JobPricer, views []JobView) error {
	for i := range views {
		quote, err := pricer.Quote(ctx, views[i].ServiceID)
		if err != nil {
			return err
		}
		views[i].ServiceName = quote.ServiceName
	}
	return nil
}
