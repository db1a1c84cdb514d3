package commands_test

import (
	"testing"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCloseCartonCommandHandler_Handle(t *testing.T) {
	t.Run("should seal fully verified carton", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCloseCartonCommand(7, "emp-003")
		require.NoError(t, err)
		target := makePackedCarton(t, 7, "W035625000101")
		_, err = target.MarkItemVerified("W035625000101", "E2534V00")
		require.NoError(t, err)
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("Update", ctx, target).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)
		publisher.On("Publish", ctx, mock.AnythingOfType("events.CartonClosed")).Return(nil).Once()

		h, err := commands.NewCloseCartonCommandHandler(factory, publisher)
		require.NoError(t, err)

		closed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, carton.Closed, closed.Status())
		assert.Equal(t, "emp-003", closed.CloseEmployeeID())
		require.NotNil(t, closed.CloseDate())
		assert.True(t, closed.CanPrint())
		publisher.AssertExpectations(t)
	})

	t.Run("should reject carton with unverified units", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCloseCartonCommand(7, "emp-003")
		require.NoError(t, err)
		target := makePackedCarton(t, 7, "W035625000101")
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)

		h, err := commands.NewCloseCartonCommandHandler(factory, publisher)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be closed")
		cartonRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
