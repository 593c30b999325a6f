package queries

import (
	"errors"

	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/guard"
)

var (
	ErrGetNearbyJobsQueryIsNotConstructed = errors.New(
		"GetNearbyJobsQuery must be created via NewGetNearbyJobsQuery constructor",
	)
	ErrRadiusIsNegative = errors.New("radius must not be negative")
)

// GetNearbyJobsQuery retrieves unclaimed pending jobs ranked by distance
// from a mechanic's current position. A zero radius means unbounded. A
// positive radius keeps only jobs within that many kilometers. Either way,
// jobs that shared no coordinates trail the list.
//
// Example:
//
//	query, _ := NewGetNearbyJobsQuery(mechanicID, 25)
//	handler := NewGetNearbyJobsQueryHandler(repo, directory, pricer)
//
//	nearby, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to find nearby jobs: %w", err)
//	}
//	for _, ranked := range nearby {
//	    fmt.Printf("%s at %.1f km\n", ranked.ID, ranked.DistanceKm)
//	}
type GetNearbyJobsQuery struct { //nolint:recvcheck //using for validation
	mechanicID kernel.UUID
	radiusKm   float64

	guard guard.ConstructorGuard
}

// NewGetNearbyJobsQuery creates a query for jobs near mechanicID's position.
// radiusKm limits results to that distance; zero disables the limit.
// Returns an error if the identifier is invalid or the radius is negative.
func NewGetNearbyJobsQuery(mechanicID kernel.UUID, radiusKm float64) (GetNearbyJobsQuery, error) {
	query := GetNearbyJobsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setMechanicID(mechanicID),
		query.setRadiusKm(radiusKm),
	); err != nil {
		return GetNearbyJobsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNearbyJobsQueryIsNotConstructed if validation fails.
func (q GetNearbyJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyJobsQueryIsNotConstructed)
}

// MechanicID returns the identifier of the searching mechanic.
func (q GetNearbyJobsQuery) MechanicID() kernel.UUID {
	return q.mechanicID
}

// RadiusKm returns the search radius in kilometers, zero for unbounded.
func (q GetNearbyJobsQuery) RadiusKm() float64 {
	return q.radiusKm
}

func (q *GetNearbyJobsQuery) setMechanicID(mechanicID kernel.UUID) error {
	if err := mechanicID.Validate(); err != nil {
		return err
	}

	q.mechanicID = mechanicID
	return nil
}

func (q *GetNearbyJobsQuery) setRadiusKm(radiusKm float64) error {
	if radiusKm < 0 {
		return ErrRadiusIsNegative
	}

	q.radiusKm = radiusKm
	return nil
}
