package queries_test

import (
	"context"
	"errors"

	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(_ context.Context, _ *job.Job) error {
	return errors.New("not implemented in mock")
}

func (m *MockJobRepository) Update(_ context.Context, _ *job.Job) error {
	return errors.New("not implemented in mock")
}

func (m *MockJobRepository) UpdateIfStatus(_ context.Context, _ *job.Job, _ job.Status) error {
	return errors.New("not implemented in mock")
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllUnassigned(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetByCustomer(_ context.Context, _ kernel.UUID) ([]*job.Job, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockJobRepository) GetByMechanic(_ context.Context, _ kernel.UUID) ([]*job.Job, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockJobRepository) GetAllInPaymentPendingStatus(_ context.Context) ([]*job.Job, error) {
	return nil, errors.New("not implemented in mock")
}

type MockMechanicDirectory struct{ mock.Mock }

func (m *MockMechanicDirectory) Location(ctx context.Context, mechanicID kernel.UUID) (kernel.GeoPoint, error) {
	args := m.Called(ctx, mechanicID)
	return args.Get(0).(kernel.GeoPoint), args.Error(1)
}

type MockServiceCatalog struct{ mock.Mock }

func (m *MockServiceCatalog) Get(ctx context.Context, serviceID kernel.UUID) (ports.ServiceOffering, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(ports.ServiceOffering), args.Error(1)
}
