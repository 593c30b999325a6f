package services

import (
	"context"
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"
	"spotserve/internal/pkg/errs"
)

// FallbackServiceName is displayed when the referenced catalog entry no
// longer exists (the service may have been deleted after jobs were created).
const FallbackServiceName = "Unknown Service"

// Quote is the resolved pricing for a requested service.
type Quote struct {
	ServiceName string
	BaseAmount  float64
}

// JobPricer resolves a job's service name and base amount from the service
// catalog, falling back to a configured default price and a placeholder name
// when the catalog record is missing. It is the single derivation point for
// these fields; job creation and every read model go through it instead of
// repeating the fallback logic per call site.
type JobPricer struct {
	catalog       ports.ServiceCatalog
	fallbackPrice float64
}

// NewJobPricer creates a JobPricer over the given catalog. fallbackPrice is
// the configured default base amount applied when a service record is
// absent.
func NewJobPricer(catalog ports.ServiceCatalog, fallbackPrice float64) JobPricer {
	return JobPricer{
		catalog:       catalog,
		fallbackPrice: fallbackPrice,
	}
}

// Quote resolves the service name and base amount for serviceID.
// A missing catalog record yields the fallback quote; any other catalog
// failure is propagated.
func (p JobPricer) Quote(ctx context.Context, serviceID kernel.UUID) (Quote, error) {
	if err := serviceID.Validate(); err != nil {
		return Quote{}, err
	}

	offering, err := p.catalog.Get(ctx, serviceID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Quote{ServiceName: FallbackServiceName, BaseAmount: p.fallbackPrice}, nil
	}
	if err != nil {
		return Quote{}, err
	}

	quote := Quote{ServiceName: offering.Name, BaseAmount: offering.BasePrice}
	if quote.ServiceName == "" {
		quote.ServiceName = FallbackServiceName
	}
	if quote.BaseAmount <= 0 {
		quote.BaseAmount = p.fallbackPrice
	}

	return quote, nil
}
