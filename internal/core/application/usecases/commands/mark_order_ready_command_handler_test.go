package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkOrderReadyCommand(t *testing.T) {
	code := kernel.NewTrackingCode()

	cmd, err := commands.NewMarkOrderReadyCommand(code)
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.Code().IsEqual(code))

	_, err = commands.NewMarkOrderReadyCommand(kernel.TrackingCode{})
	require.Error(t, err)

	var zero commands.MarkOrderReadyCommand
	require.Error(t, zero.Validate())
}

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	preparing := newOrderInStatus(t, order.InPreparation)
	cmd, err := commands.NewMarkOrderReadyCommand(preparing.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, preparing.Code()).Return(preparing, nil).Once(),
		repo.On("Update", ctx, preparing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Ready, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	code := kernel.NewTrackingCode()
	cmd, err := commands.NewMarkOrderReadyCommand(code)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, code).
			Return(nil, errs.NewObjectNotFoundError("code", code)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	assert.Contains(t, err.Error(), code.String())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkOrderReadyCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	cmd, err := commands.NewMarkOrderReadyCommand(pending.Code())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByCode", ctx, pending.Code()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderReadyCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIllegalTransition)

	var transitionErr *errs.IllegalTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "PENDING", transitionErr.From)
	assert.Equal(t, "READY", transitionErr.To)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
