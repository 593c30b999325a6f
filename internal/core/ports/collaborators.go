package ports

import (
	"context"

	"spotserve/internal/core/domain/model/kernel"
)

// ServiceOffering is the read-only projection of a catalog entry.
type ServiceOffering struct {
	ID        kernel.UUID
	Name      string
	BasePrice float64
}

// ServiceCatalog is the read-only lookup of the services customers can
// request. Get returns an error unwrapping to errs.ErrObjectNotFound for
// unknown ids; callers tolerate absence through the pricing fallback.
type ServiceCatalog interface {
	Get(ctx context.Context, serviceID kernel.UUID) (ServiceOffering, error)
}

// CheckoutSession is the payment collaborator's answer to a session request.
type CheckoutSession struct {
	// URL is where the customer completes the payment.
	URL string
}

// PaymentProvider is the external payment collaborator. CreateCheckoutSession
// exchanges a job's amounts for a checkout URL; failures must leave the
// caller free to retry. SessionSettled reports whether the session for a job
// has been paid, used by the reconciliation job next to the provider's own
// success callback.
type PaymentProvider interface {
	CreateCheckoutSession(
		ctx context.Context,
		jobID kernel.UUID,
		totalAmount float64,
		description string,
	) (CheckoutSession, error)

	SessionSettled(ctx context.Context, jobID kernel.UUID) (bool, error)
}

// MechanicDirectory supplies a mechanic's last-known position, externally
// maintained and read-only from the matching engine's perspective.
type MechanicDirectory interface {
	Location(ctx context.Context, mechanicID kernel.UUID) (kernel.GeoPoint, error)
}

// MechanicLocationReporter accepts position reports from mechanics. Kept
// separate from MechanicDirectory so the matching path stays read-only.
type MechanicLocationReporter interface {
	UpdateLocation(ctx context.Context, mechanicID kernel.UUID, position kernel.GeoPoint) error
}
