package queries

import (
	"context"

	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// GetPackingSlipQueryHandler assembles the data behind a carton packing
// slip: the carton and shipment aggregates, the creating location and the
// packing slip system properties.
type GetPackingSlipQueryHandler struct {
	cartons   ports.CartonRepository
	shipments ports.ShipmentRepository
	locations ports.LocationRepository
	criteria  ports.CriteriaRepository
	sysprops  ports.SyspropRepository
}

// NewGetPackingSlipQueryHandler creates a handler for packing slip queries.
func NewGetPackingSlipQueryHandler(
	cartons ports.CartonRepository,
	shipments ports.ShipmentRepository,
	locations ports.LocationRepository,
	criteriaRepo ports.CriteriaRepository,
	sysprops ports.SyspropRepository,
) (*GetPackingSlipQueryHandler, error) {
	if cartons == nil {
		return nil, errs.NewValueIsRequiredError("cartons")
	}
	if shipments == nil {
		return nil, errs.NewValueIsRequiredError("shipments")
	}
	if locations == nil {
		return nil, errs.NewValueIsRequiredError("locations")
	}
	if criteriaRepo == nil {
		return nil, errs.NewValueIsRequiredError("criteriaRepo")
	}
	if sysprops == nil {
		return nil, errs.NewValueIsRequiredError("sysprops")
	}

	return &GetPackingSlipQueryHandler{
		cartons:   cartons,
		shipments: shipments,
		locations: locations,
		criteria:  criteriaRepo,
		sysprops:  sysprops,
	}, nil
}

// Handle builds the packing slip. The carton must be closed.
func (h *GetPackingSlipQueryHandler) Handle(
	ctx context.Context,
	query GetPackingSlipQuery,
) (*report.PackingSlip, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, err := h.cartons.Get(ctx, query.CartonID())
	if err != nil {
		return nil, err
	}
	shp, err := h.shipments.Get(ctx, c.ShipmentID())
	if err != nil {
		return nil, err
	}
	loc, err := h.locations.GetByCode(ctx, shp.LocationCode())
	if err != nil {
		return nil, err
	}
	properties, err := h.sysprops.GetAllByType(ctx, sysprop.TypeCartonPackingSlip)
	if err != nil {
		return nil, err
	}

	description := resolveProductTypeDescription(ctx, h.criteria, shp.Customer().Code(), shp.ProductType())

	return report.GeneratePackingSlip(c, shp, loc, description, properties)
}
