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

func TestAcceptJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()
	aggregate := newPendingJob(t, customerID)

	cmd, err := commands.NewAcceptJobCommand(aggregate.ID(), mechanicID)
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

	h := commands.NewAcceptJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, job.Accepted, aggregate.Status())
	require.NotNil(t, aggregate.Mechanic())
	assert.True(t, aggregate.Mechanic().IsEqual(mechanicID))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptJobCommandHandler_Handle_StatusConflict(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()
	aggregate := newPendingJob(t, customerID)

	cmd, err := commands.NewAcceptJobCommand(aggregate.ID(), mechanicID)
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

	h := commands.NewAcceptJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStatusConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptJobCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate := newAcceptedJob(t, customerID, kernel.NewUUID())

	cmd, err := commands.NewAcceptJobCommand(aggregate.ID(), kernel.NewUUID())
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

	h := commands.NewAcceptJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptJobCommandHandler_Handle_JobNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()

	cmd, err := commands.NewAcceptJobCommand(jobID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, jobID).
			Return(nil, errs.NewObjectNotFoundError("jobID", jobID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
