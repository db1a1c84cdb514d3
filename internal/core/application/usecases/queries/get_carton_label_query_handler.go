package queries

import (
	"context"

	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// GetCartonLabelQueryHandler assembles the data behind a carton shipping
// label.
type GetCartonLabelQueryHandler struct {
	cartons   ports.CartonRepository
	shipments ports.ShipmentRepository
	locations ports.LocationRepository
	criteria  ports.CriteriaRepository
	sysprops  ports.SyspropRepository
}

// NewGetCartonLabelQueryHandler creates a handler for carton label queries.
func NewGetCartonLabelQueryHandler(
	cartons ports.CartonRepository,
	shipments ports.ShipmentRepository,
	locations ports.LocationRepository,
	criteriaRepo ports.CriteriaRepository,
	sysprops ports.SyspropRepository,
) (*GetCartonLabelQueryHandler, error) {
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

	return &GetCartonLabelQueryHandler{
		cartons:   cartons,
		shipments: shipments,
		locations: locations,
		criteria:  criteriaRepo,
		sysprops:  sysprops,
	}, nil
}

// Handle builds the carton label. The carton must be closed.
func (h *GetCartonLabelQueryHandler) Handle(
	ctx context.Context,
	query GetCartonLabelQuery,
) (*report.CartonLabel, error) {
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
	properties, err := h.sysprops.GetAllByType(ctx, sysprop.TypeCartonLabel)
	if err != nil {
		return nil, err
	}

	description := resolveProductTypeDescription(ctx, h.criteria, shp.Customer().Code(), shp.ProductType())

	return report.GenerateCartonLabel(c, shp, loc, description, properties)
}
