package queries_test

import (
	"testing"
	"time"

	"spotserve/internal/core/application/usecases/queries"
	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/domain/services"
	"spotserve/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingJobAt(t *testing.T, lat, lng float64, createdAt time.Time) *job.Job {
	t.Helper()

	pickup, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	aggregate, err := job.NewJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"engine will not start",
		&pickup,
		500.0,
		createdAt,
	)
	require.NoError(t, err)
	return aggregate
}

func TestGetNearbyJobsQueryHandler_Handle_RanksByDistance(t *testing.T) {
	ctx := t.Context()
	mechanicID := kernel.NewUUID()
	now := time.Now().UTC()

	near := newPendingJobAt(t, 12.91, 77.61, now)
	far := newPendingJobAt(t, 13.30, 77.90, now.Add(time.Minute))

	origin, err := kernel.NewGeoPoint(12.90, 77.60)
	require.NoError(t, err)

	directory := new(MockMechanicDirectory)
	directory.On("Location", mock.Anything, mechanicID).Return(origin, nil).Once()

	repo := new(MockJobRepository)
	repo.On("GetAllUnassigned", mock.Anything).Return([]*job.Job{far, near}, nil).Once()

	catalog := new(MockServiceCatalog)
	catalog.On("Get", mock.Anything, mock.Anything).
		Return(ports.ServiceOffering{Name: "Towing", BasePrice: 900.0}, nil)

	query, err := queries.NewGetNearbyJobsQuery(mechanicID, 0)
	require.NoError(t, err)

	h := queries.NewGetNearbyJobsQueryHandler(repo, directory, services.NewJobPricer(catalog, 500.0))
	views, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, near.ID(), views[0].ID)
	assert.Equal(t, far.ID(), views[1].ID)
	assert.Less(t, views[0].DistanceKm, views[1].DistanceKm)
	assert.Equal(t, "Towing", views[0].ServiceName)

	directory.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestGetNearbyJobsQueryHandler_Handle_RadiusFiltersFarJobs(t *testing.T) {
	ctx := t.Context()
	mechanicID := kernel.NewUUID()
	now := time.Now().UTC()

	near := newPendingJobAt(t, 12.91, 77.61, now)
	far := newPendingJobAt(t, 13.30, 77.90, now.Add(time.Minute))

	origin, err := kernel.NewGeoPoint(12.90, 77.60)
	require.NoError(t, err)

	directory := new(MockMechanicDirectory)
	directory.On("Location", mock.Anything, mechanicID).Return(origin, nil).Once()

	repo := new(MockJobRepository)
	repo.On("GetAllUnassigned", mock.Anything).Return([]*job.Job{far, near}, nil).Once()

	catalog := new(MockServiceCatalog)
	catalog.On("Get", mock.Anything, mock.Anything).
		Return(ports.ServiceOffering{Name: "Towing", BasePrice: 900.0}, nil)

	query, err := queries.NewGetNearbyJobsQuery(mechanicID, 10)
	require.NoError(t, err)

	h := queries.NewGetNearbyJobsQueryHandler(repo, directory, services.NewJobPricer(catalog, 500.0))
	views, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, views, 1)
	assert.Equal(t, near.ID(), views[0].ID)
}

func TestGetNearbyJobsQueryHandler_Handle_DirectoryError(t *testing.T) {
	ctx := t.Context()
	mechanicID := kernel.NewUUID()

	directory := new(MockMechanicDirectory)
	directory.On("Location", mock.Anything, mechanicID).
		Return(kernel.GeoPoint{}, assert.AnError).Once()

	repo := new(MockJobRepository)
	catalog := new(MockServiceCatalog)

	query, err := queries.NewGetNearbyJobsQuery(mechanicID, 0)
	require.NoError(t, err)

	h := queries.NewGetNearbyJobsQueryHandler(repo, directory, services.NewJobPricer(catalog, 500.0))
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	repo.AssertNotCalled(t, "GetAllUnassigned", mock.Anything)
}

func TestNewGetNearbyJobsQuery_NegativeRadius(t *testing.T) {
	_, err := queries.NewGetNearbyJobsQuery(kernel.NewUUID(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrRadiusIsNegative)
}

func TestGetNearbyJobsQuery_Validate_NotConstructed(t *testing.T) {
	var query queries.GetNearbyJobsQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetNearbyJobsQueryIsNotConstructed)
}
