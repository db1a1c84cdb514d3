package commands_test

import (
	"errors"
	"testing"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/model/carton"
	"plasmashipping/internal/core/domain/model/location"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeCreateCartonCommand(t *testing.T) commands.CreateCartonCommand {
	t.Helper()
	cmd, err := commands.NewCreateCartonCommand(42, "emp-002")
	require.NoError(t, err)
	return cmd
}

func TestCreateCartonCommandHandler_Handle(t *testing.T) {
	t.Run("should create carton with generated number and next sequence", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeCreateCartonCommand(t)
		shp := makeShipmentInStatus(t, shipment.Open, nil)

		locations := new(MockLocationRepository)
		locations.On("GetByCode", ctx, "MH1").Return(makeLocation(t), nil).Once()
		criteriaRepo := new(MockCriteriaRepository)
		criteriaRepo.On("FindProductCriteria", ctx, "RP_FROZEN", "408").Return(makeCriteria(t), nil).Once()

		shipmentRepo := new(MockShipmentRepository)
		cartonRepo := new(MockCartonRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("CountByShipment", ctx, int64(42)).Return(2, nil).Once()
		cartonRepo.On("NextCartonID", ctx).Return(int64(9), nil).Once()
		cartonRepo.On("Add", ctx, mock.AnythingOfType("*carton.Carton")).Return(nil).Once()
		shipmentRepo.On("Update", ctx, shp).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		publisher := new(MockEventPublisher)
		publisher.On("Publish", ctx, mock.AnythingOfType("events.CartonCreated")).Return(nil).Once()

		h, err := commands.NewCreateCartonCommandHandler(factory, locations, criteriaRepo, publisher)
		require.NoError(t, err)

		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ID())
		assert.Equal(t, "BPMMH19", created.CartonNumber())
		assert.Equal(t, 3, created.CartonSequence())
		assert.Equal(t, carton.Open, created.Status())
		assert.Equal(t, 1, created.MinUnits())
		assert.Equal(t, 10, created.MaxUnits())
		assert.Equal(t, shipment.InProgress, shp.Status())
		cartonRepo.AssertExpectations(t)
	})

	t.Run("should reject carton on closed shipment", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeCreateCartonCommand(t)
		shp := makeShipmentInStatus(t, shipment.Closed, []*carton.Carton{makeClosedCarton(t, 7, "W035625000101")})

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		uow.On("CartonRepository").Return(new(MockCartonRepository)).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		locations := new(MockLocationRepository)
		criteriaRepo := new(MockCriteriaRepository)

		h, err := commands.NewCreateCartonCommandHandler(factory, locations, criteriaRepo, new(MockEventPublisher))
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be modified")
		locations.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("should hide number generation internals behind generic error", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeCreateCartonCommand(t)
		shp := makeShipmentInStatus(t, shipment.Open, nil)

		loc := makeLocationWithoutCartonCodes(t)
		locations := new(MockLocationRepository)
		locations.On("GetByCode", ctx, "MH1").Return(loc, nil).Once()
		criteriaRepo := new(MockCriteriaRepository)
		criteriaRepo.On("FindProductCriteria", ctx, "RP_FROZEN", "408").Return(makeCriteria(t), nil).Once()

		shipmentRepo := new(MockShipmentRepository)
		cartonRepo := new(MockCartonRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		uow.On("CartonRepository").Return(cartonRepo).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		cartonRepo.On("CountByShipment", ctx, int64(42)).Return(0, nil).Once()
		cartonRepo.On("NextCartonID", ctx).Return(int64(9), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		h, err := commands.NewCreateCartonCommandHandler(factory, locations, criteriaRepo, new(MockEventPublisher))
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Carton generation error")
		assert.NotContains(t, err.Error(), "RPS_CARTON_PARTNER_PREFIX")
	})

	t.Run("should hide missing shipment behind generic error", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeCreateCartonCommand(t)

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		uow.On("CartonRepository").Return(new(MockCartonRepository)).Once()
		shipmentRepo.On("Get", ctx, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("shipment", "42")).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		locations := new(MockLocationRepository)

		h, err := commands.NewCreateCartonCommandHandler(factory, locations, new(MockCriteriaRepository), new(MockEventPublisher))
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Carton generation error")
		var notFound *errs.ObjectNotFoundError
		assert.False(t, errors.As(err, &notFound))
		locations.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})

	t.Run("should surface missing location as not found", func(t *testing.T) {
		ctx := t.Context()
		cmd := makeCreateCartonCommand(t)
		shp := makeShipmentInStatus(t, shipment.Open, nil)

		locations := new(MockLocationRepository)
		locations.On("GetByCode", ctx, "MH1").
			Return(nil, errs.NewObjectNotFoundError("location", "MH1")).Once()

		shipmentRepo := new(MockShipmentRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo).Once()
		uow.On("CartonRepository").Return(new(MockCartonRepository)).Once()
		shipmentRepo.On("Get", ctx, int64(42)).Return(shp, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCartonUoWFactory)
		factory.On("Create").Return(uow).Once()

		h, err := commands.NewCreateCartonCommandHandler(factory, locations, new(MockCriteriaRepository), new(MockEventPublisher))
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.NotContains(t, err.Error(), "Carton generation error")
	})
}

func makeLocationWithoutCartonCodes(t *testing.T) *location.Location {
	t.Helper()
	p, err := location.NewProperty("RPS_LOCATION_SHIPMENT_CODE", "MH1")
	require.NoError(t, err)
	loc, err := location.NewLocation(1, "MH1", "Miami Main Center", location.Address{
		AddressLine1: "8669 NW 36th St",
		City:         "Doral",
		State:        "FL",
		PostalCode:   "33166",
		Country:      "United States",
	}, []location.Property{p})
	require.NoError(t, err)
	return loc
}
