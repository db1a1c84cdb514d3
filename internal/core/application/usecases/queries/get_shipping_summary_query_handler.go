package queries

import (
	"context"

	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// GetShippingSummaryQueryHandler assembles the data behind the shipment
// summary report.
type GetShippingSummaryQueryHandler struct {
	shipments ports.ShipmentRepository
	cartons   ports.CartonRepository
	locations ports.LocationRepository
	criteria  ports.CriteriaRepository
	sysprops  ports.SyspropRepository
}

// NewGetShippingSummaryQueryHandler creates a handler for summary report queries.
func NewGetShippingSummaryQueryHandler(
	shipments ports.ShipmentRepository,
	cartons ports.CartonRepository,
	locations ports.LocationRepository,
	criteriaRepo ports.CriteriaRepository,
	sysprops ports.SyspropRepository,
) (*GetShippingSummaryQueryHandler, error) {
	if shipments == nil {
		return nil, errs.NewValueIsRequiredError("shipments")
	}
	if cartons == nil {
		return nil, errs.NewValueIsRequiredError("cartons")
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

	return &GetShippingSummaryQueryHandler{
		shipments: shipments,
		cartons:   cartons,
		locations: locations,
		criteria:  criteriaRepo,
		sysprops:  sysprops,
	}, nil
}

// Handle builds the summary report. The shipment must be closed.
func (h *GetShippingSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetShippingSummaryQuery,
) (*report.ShippingSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shp, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}
	cartons, err := h.cartons.GetAllByShipment(ctx, shp.ID())
	if err != nil {
		return nil, err
	}
	loc, err := h.locations.GetByCode(ctx, shp.LocationCode())
	if err != nil {
		return nil, err
	}
	properties, err := h.sysprops.GetAllByType(ctx, sysprop.TypeShippingSummaryReport)
	if err != nil {
		return nil, err
	}

	description := resolveProductTypeDescription(ctx, h.criteria, shp.Customer().Code(), shp.ProductType())

	return report.GenerateShippingSummary(shp, cartons, loc, description, properties)
}
