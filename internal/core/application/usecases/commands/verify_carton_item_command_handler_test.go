package commands_test

import (
	"testing"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/model/criteria"
	"plasmashipping/internal/core/domain/model/inventory"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeVerifyCommand(t *testing.T) commands.VerifyCartonItemCommand {
	t.Helper()
	cmd, err := commands.NewVerifyCartonItemCommand(7, "W035625000101", "E2534V00", "MH1", "emp-003")
	require.NoError(t, err)
	return cmd
}

func TestVerifyCartonItemCommandHandler_Handle(t *testing.T) {
	t.Run("should verify unit that still passes the validation pipeline", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeVerifyCommand(t)
		packedCarton := makePackedCarton(t, 7, "W035625000101")
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(packedCarton, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("Update", ctx, packedCarton).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		validator := new(MockUnitValidator)
		validator.On("ValidateVerification", ctx, services.Request{
			UnitNumber:    "W035625000101",
			ProductCode:   "E2534V00",
			LocationCode:  "MH1",
			EmployeeID:    "emp-003",
			ProductType:   "RP_FROZEN",
			CustomerCode:  "408",
			TotalProducts: 0,
		}).Return(makeInventory(t, "W035625000101"), nil).Once()

		h, err := commands.NewVerifyCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		item, ok := updated.FindItem("W035625000101", "E2534V00")
		require.True(t, ok)
		assert.True(t, item.IsVerified())
		assert.True(t, updated.CanClose())
		validator.AssertExpectations(t)
		cartonRepo.AssertExpectations(t)
	})

	t.Run("should drop all carton items when the unit is rejected", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeVerifyCommand(t)
		packedCarton := makePackedCarton(t, 7, "W035625000101", "W035625000102")
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(packedCarton, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("DeleteItems", ctx, int64(7)).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		rejectedValidation := &inventory.Validation{Notifications: []inventory.Notification{{
			ErrorName: "INVENTORY_EXPIRED",
			ErrorType: inventory.ErrorTypeWarn,
			Reason:    "Unit is expired",
		}}}
		validator := new(MockUnitValidator)
		validator.On("ValidateVerification", ctx, mock.AnythingOfType("services.Request")).
			Return(nil, inventory.NewRejectedErrorWithValidation(
				"Inventory Validation failed", inventory.ErrorTypeWarn, rejectedValidation)).Once()

		h, err := commands.NewVerifyCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		var rejection *inventory.RejectedError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Inventory Validation failed", rejection.Message)
		assert.False(t, rejection.IsSystem())
		assert.Equal(t, rejectedValidation, rejection.Validation)
		cartonRepo.AssertExpectations(t)
		cartonRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should drop all carton items when the unit breaches criteria", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeVerifyCommand(t)
		packedCarton := makePackedCarton(t, 7, "W035625000101")
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

		cartonRepo := new(MockCartonRepository)
		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(packedCarton, nil).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("DeleteItems", ctx, int64(7)).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		validator := new(MockUnitValidator)
		validator.On("ValidateVerification", ctx, mock.AnythingOfType("services.Request")).
			Return(nil, &criteria.ValidationError{
				Message:     "Volume is below the customer minimum",
				MessageType: "WARN",
				ErrorName:   "MINIMUM_VOLUME",
			}).Once()

		h, err := commands.NewVerifyCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		var breach *criteria.ValidationError
		require.ErrorAs(t, err, &breach)
		assert.Equal(t, "MINIMUM_VOLUME", breach.ErrorName)
		cartonRepo.AssertExpectations(t)
		cartonRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should keep carton items on system fault", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeVerifyCommand(t)
		packedCarton := makePackedCarton(t, 7, "W035625000101")
		shp := makeShipmentInStatus(t, shipment.InProgress, nil)

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

		validator := new(MockUnitValidator)
		validator.On("ValidateVerification", ctx, mock.AnythingOfType("services.Request")).
			Return(nil, inventory.NewRejectedError("inventory service unreachable", inventory.ErrorTypeSystem)).Once()

		h, err := commands.NewVerifyCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		var rejection *inventory.RejectedError
		require.ErrorAs(t, err, &rejection)
		assert.True(t, rejection.IsSystem())
		cartonRepo.AssertNotCalled(t, "DeleteItems", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject unit that is not in the carton", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeVerifyCommand(t)
		packedCarton := makePackedCarton(t, 7, "W035625000199")

		cartonRepo := new(MockCartonRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		uow.On("ShipmentRepository").Return(new(MockShipmentRepository)).Once()
		cartonRepo.On("Get", ctx, int64(7)).Return(packedCarton, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		validator := new(MockUnitValidator)

		h, err := commands.NewVerifyCartonItemCommandHandler(factory, validator)
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		validator.AssertNotCalled(t, "ValidateVerification", mock.Anything, mock.Anything)
	})
}
