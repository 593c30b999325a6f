package services

import (
	"math"
	"sort"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
)

// RankedJob pairs a job with its computed distance from the querying
// mechanic. DistanceKm is +Inf for jobs without pickup coordinates.
type RankedJob struct {
	Job        *job.Job
	DistanceKm float64
}

// JobMatcher is a domain service that produces the distance-ranked list of
// jobs a mechanic can claim.
//
// Business rules:
//   - Only Pending, unassigned jobs are eligible
//   - Jobs without pickup coordinates rank last (infinite distance) and are
//     never dropped, whatever the radius
//   - Ordering is ascending by distance; ties keep the input (creation)
//     order, so re-running with the same inputs yields an identical ranking
//   - A positive radius excludes located jobs strictly beyond the cutoff
//
// JobMatcher is a pure read projection: it never mutates the jobs it ranks.
// A job claimed by another mechanic right after a ranking was produced
// simply causes that stale reader's accept attempt to fail with a conflict;
// the caller is expected to re-query.
type JobMatcher struct{}

// NewJobMatcher creates a new JobMatcher instance.
func NewJobMatcher() JobMatcher {
	return JobMatcher{}
}

// RankNearby ranks the eligible jobs by great-circle distance from origin.
//
// jobs must be supplied in creation order; that order is what breaks
// distance ties. radiusKm <= 0 means unbounded; a finite radius cuts off
// located jobs only, coordinate-less jobs still trail the list. Jobs that
// are not Pending or already carry a mechanic are skipped so a stale
// snapshot cannot surface claimed work.
func (m JobMatcher) RankNearby(origin kernel.GeoPoint, jobs []*job.Job, radiusKm float64) ([]RankedJob, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}

		if j.Status() != job.Pending || j.Mechanic() != nil {
			continue
		}

		distance := math.Inf(1)
		if pickup := j.Pickup(); pickup != nil {
			d, err := origin.DistanceKm(*pickup)
			if err != nil {
				return nil, err
			}
			distance = d
		}

		if radiusKm > 0 && !math.IsInf(distance, 1) && distance > radiusKm {
			continue
		}

		ranked = append(ranked, RankedJob{Job: j, DistanceKm: distance})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].DistanceKm < ranked[b].DistanceKm
	})

	return ranked, nil
}
