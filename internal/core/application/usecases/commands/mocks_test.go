package commands_test

import (
	"context"
	"errors"

	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateIfStatus(ctx context.Context, j *job.Job, expected job.Status) error {
	args := m.Called(ctx, j, expected)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllUnassigned(_ context.Context) ([]*job.Job, error) {
	return nil, errors.New("not implemented in mock")
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

type MockJobUoW struct{ mock.Mock }

func (m *MockJobUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJobUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

type MockJobUoWFactory struct{ mock.Mock }

func (m *MockJobUoWFactory) Create() commands.JobUoW {
	args := m.Called()
	return args.Get(0).(commands.JobUoW)
}

type MockServiceCatalog struct{ mock.Mock }

func (m *MockServiceCatalog) Get(ctx context.Context, serviceID kernel.UUID) (ports.ServiceOffering, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(ports.ServiceOffering), args.Error(1)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	jobID kernel.UUID,
	totalAmount float64,
	description string,
) (ports.CheckoutSession, error) {
	args := m.Called(ctx, jobID, totalAmount, description)
	return args.Get(0).(ports.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) SessionSettled(ctx context.Context, jobID kernel.UUID) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

// fixedOtpGenerator always returns the same code for predictable tests.
type fixedOtpGenerator struct{ code string }

func (g fixedOtpGenerator) Generate() string { return g.code }
