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

func TestConfirmPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()
	aggregate := newPaymentPendingJob(t, customerID, mechanicID)

	cmd, err := commands.NewConfirmPaymentCommand(aggregate.ID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("UpdateIfStatus", mock.Anything, aggregate, job.PaymentPending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, job.Completed, aggregate.Status())
	assert.Nil(t, aggregate.PaymentURL())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_AlreadyCompletedIsNoOp(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()
	aggregate := newPaymentPendingJob(t, customerID, mechanicID)
	require.NoError(t, aggregate.ConfirmPayment())

	cmd, err := commands.NewConfirmPaymentCommand(aggregate.ID())
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

	h := commands.NewConfirmPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestConfirmPaymentCommandHandler_Handle_NotPaymentPending(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()
	aggregate := newOngoingJob(t, customerID, mechanicID)

	cmd, err := commands.NewConfirmPaymentCommand(aggregate.ID())
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

	h := commands.NewConfirmPaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
