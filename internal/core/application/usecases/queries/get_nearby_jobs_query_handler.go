package queries

import (
	"context"

	"spotserve/internal/core/domain/services"
	"spotserve/internal/core/ports"
)

// NearbyJobView is a pending job ranked by distance from the searching
// mechanic. DistanceKm is +Inf for jobs that shared no pickup coordinates;
// such jobs trail the list no matter the radius.
type NearbyJobView struct {
	JobView
	DistanceKm float64
}

// GetNearbyJobsQueryHandler finds unclaimed jobs around a mechanic.
// Resolves the mechanic's position from the directory, then delegates the
// ranking to the matcher, which keeps the ordering rules in one place.
type GetNearbyJobsQueryHandler struct {
	jobRepo   ports.JobRepository
	directory ports.MechanicDirectory
	matcher   services.JobMatcher
	pricer    services.JobPricer
}

// NewGetNearbyJobsQueryHandler creates a handler for proximity searches.
func NewGetNearbyJobsQueryHandler(
	jobRepo ports.JobRepository,
	directory ports.MechanicDirectory,
	pricer services.JobPricer,
) GetNearbyJobsQueryHandler {
	return GetNearbyJobsQueryHandler{
		jobRepo:   jobRepo,
		directory: directory,
		matcher:   services.NewJobMatcher(),
		pricer:    pricer,
	}
}

// Handle executes the proximity search. Jobs are ordered by ascending
// distance; ties keep creation order.
func (h GetNearbyJobsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyJobsQuery,
) ([]NearbyJobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	origin, err := h.directory.Location(ctx, query.MechanicID())
	if err != nil {
		return nil, err
	}

	unassigned, err := h.jobRepo.GetAllUnassigned(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := h.matcher.RankNearby(origin, unassigned, query.RadiusKm())
	if err != nil {
		return nil, err
	}

	views := make([]NearbyJobView, 0, len(ranked))
	for _, r := range ranked {
		views = append(views, NearbyJobView{
			JobView:    jobViewFromAggregate(r.Job),
			DistanceKm: r.DistanceKm,
		})
	}

	for i := range views {
		quote, quoteErr := h.pricer.Quote(ctx, views[i].ServiceID)
		if quoteErr != nil {
			return nil, quoteErr
		}
		views[i].ServiceName = quote.ServiceName
	}

	return views, nil
}
