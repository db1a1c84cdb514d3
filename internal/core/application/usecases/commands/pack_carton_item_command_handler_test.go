package commands_test

import (
	"testing"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makePackCommand(t *testing.T) commands.PackCartonItemCommand {
	t.Helper()
	cmd, err := commands.NewPackCartonItemCommand(7, "W035625000101", "E2534V00", "MH1", "emp-002")
	require.NoError(t, err)
	return cmd
}

func TestPackCartonItemCommandHandler_Handle(t *testing.T) {
	t.Run("should pack validated unit and move shipment in progress", func(t *testing.T) {
		ctx := t.Context()
		cmd := makePackCommand(t)
		packedCarton := makeOpenCarton(t, 7)
		shp := makeShipmentInStatus(t, shipment.Open, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(packedCarton, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("Update", ctx, packedCarton).Return(nil).Once()
		shipmentRepo.On("Update", ctx, shp).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		validator := new(MockUnitValidator)
		validator.On("Validate", ctx, services.Request{
			UnitNumber:    "W035625000101",
			ProductCode:   "E2534V00",
			LocationCode:  "MH1",
			EmployeeID:    "emp-002",
			ProductType:   "RP_FROZEN",
			CustomerCode:  "408",
			TotalProducts: 0,
		}).Return(makeInventory(t, "W035625000101"), nil).Once()

		h, err := commands.NewPackCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, updated.TotalProducts())
		item, ok := updated.FindItem("W035625000101", "E2534V00")
		require.True(t, ok)
		assert.False(t, item.IsVerified())
		assert.Equal(t, shipment.InProgress, shp.Status())
		validator.AssertExpectations(t)
		cartonRepo.AssertExpectations(t)
		shipmentRepo.AssertExpectations(t)
	})

	t.Run("should not persist anything when validation rejects the unit", func(t *testing.T) {
		ctx := t.Context()
		cmd := makePackCommand(t)
		packedCarton := makeOpenCarton(t, 7)
		shp := makeShipmentInStatus(t, shipment.Open, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(packedCarton, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		rejection := inventory.NewRejectedError("Product already used", inventory.ErrorTypeWarn)
		validator := new(MockUnitValidator)
		validator.On("Validate", ctx, mock.AnythingOfType("services.Request")).Return(nil, rejection).Once()

		h, err := commands.NewPackCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, rejection)
		cartonRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		assert.Equal(t, 0, packedCarton.TotalProducts())
	})
}
