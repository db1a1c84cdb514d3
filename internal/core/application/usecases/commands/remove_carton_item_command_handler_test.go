package commands_test

import (
	"testing"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveCartonItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove unit and reset remaining verifications", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRemoveCartonItemCommand(7, "W035625000101", "E2534V00", "emp-004")
		require.NoError(t, err)
		target := makePackedCarton(t, 7, "W035625000101", "W035625000102")
		_, err = target.MarkItemVerified("W035625000102", "E2534V00")
		require.NoError(t, err)

		cartonRepo := new(MockCartonRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		cartonRepo.On("Update", ctx, target).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)
		publisher.On("Publish", ctx, mock.AnythingOfType("events.CartonUnpacked")).Return(nil).Once()

		h, err := commands.NewRemoveCartonItemCommandHandler(factory, publisher)
		require.NoError(t, err)

		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, updated.TotalProducts())
		_, ok := updated.FindItem("W035625000101", "E2534V00")
		assert.False(t, ok)
		remaining, ok := updated.FindItem("W035625000102", "E2534V00")
		require.True(t, ok)
		assert.False(t, remaining.IsVerified())

		event := publisher.Calls[0].Arguments.Get(1).(events.CartonUnpacked)
		assert.Equal(t, "W035625000101", event.UnitNumber)
	})

	t.Run("should reject unit that is not packed in the carton", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRemoveCartonItemCommand(7, "W035625000999", "E2534V00", "emp-004")
		require.NoError(t, err)
		target := makePackedCarton(t, 7, "W035625000101")

		cartonRepo := new(MockCartonRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)

		h, err := commands.NewRemoveCartonItemCommandHandler(factory, publisher)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		cartonRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
