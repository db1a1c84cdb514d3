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

func TestRemoveCartonCommandHandler_Handle(t *testing.T) {
	t.Run("should remove the last carton of the shipment", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRemoveCartonCommand(7, "emp-004")
		require.NoError(t, err)
		target := makeOpenCarton(t, 7)
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("CountByShipment", ctx, int64(42)).Return(1, nil).Once()
		cartonRepo.On("DeleteItems", ctx, int64(7)).Return(nil).Once()
		cartonRepo.On("Update", ctx, target).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)
		publisher.On("Publish", ctx, mock.AnythingOfType("events.CartonRemoved")).Return(nil).Once()

		h, err := commands.NewRemoveCartonCommandHandler(factory, publisher)
		require.NoError(t, err)

		removed, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, carton.Removed, removed.Status())
		assert.Equal(t, "emp-004", removed.DeleteEmployeeID())
		require.NotNil(t, removed.DeleteDate())
		cartonRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("should reject carton that is not the last of the shipment", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRemoveCartonCommand(7, "emp-004")
		require.NoError(t, err)
		target := makeOpenCarton(t, 7)
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("CountByShipment", ctx, int64(42)).Return(3, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)

		h, err := commands.NewRemoveCartonCommandHandler(factory, publisher)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not the last carton of the shipment")
		cartonRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("should reject removal when the shipment is processing", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewRemoveCartonCommand(7, "emp-004")
		require.NoError(t, err)
		closedTarget := makeClosedCarton(t, 7, "W035625000101")
		shp := makeShipmentInStatus(t, shipment.Processing, []*carton.Carton{closedTarget})
		target := makeOpenCarton(t, 8)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(target, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("CountByShipment", ctx, int64(42)).Return(1, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		h, err := commands.NewRemoveCartonCommandHandler(factory, new(MockEventPublisher))
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be modified")
	})
}
