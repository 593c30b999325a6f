package commands_test

import (
	"testing"

	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/domain/model/job"
	"spotserve/internal/core/domain/model/kernel"
	"spotserve/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := newPendingJob(t, customerID)

	cmd, err := commands.NewCancelJobCommand(aggregate.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, job.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, job.Cancelled, aggregate.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelJobCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingJob(t, kernel.NewUUID())

	cmd, err := commands.NewCancelJobCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, job.Pending, aggregate.Status())
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelJobCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := newAcceptedJob(t, customerID, kernel.NewUUID())

	cmd, err := commands.NewCancelJobCommand(aggregate.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCancelJobCommandHandler_Handle_LostRaceToAccept(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := newPendingJob(t, customerID)

	cmd, err := commands.NewCancelJobCommand(aggregate.ID(), customerID)
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, job.Pending).
			Return(errs.NewStatusConflictError("jobID", aggregate.ID(), job.Pending.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStatusConflict)
}
