package queries

import (
	"context"

	"plasmashipping/internal/core/domain/model/report"
	"plasmashipping/internal/core/domain/model/sysprop"
	"plasmashipping/internal/core/ports"
	"plasmashipping/internal/pkg/errs"
)

// GetUnacceptableUnitsQueryHandler assembles the rejection report of the
// last batch revalidation run.
type GetUnacceptableUnitsQueryHandler struct {
	shipments ports.ShipmentRepository
	entries   ports.UnacceptableUnitReportRepository
	locations ports.LocationRepository
	sysprops  ports.SyspropRepository
}

// NewGetUnacceptableUnitsQueryHandler creates a handler for rejection report queries.
func NewGetUnacceptableUnitsQueryHandler(
	shipments ports.ShipmentRepository,
	entries ports.UnacceptableUnitReportRepository,
	locations ports.LocationRepository,
	sysprops ports.SyspropRepository,
) (*GetUnacceptableUnitsQueryHandler, error) {
	if shipments == nil {
		return nil, errs.NewValueIsRequiredError("shipments")
	}
	if entries == nil {
		return nil, errs.NewValueIsRequiredError("entries")
	}
	if locations == nil {
		return nil, errs.NewValueIsRequiredError("locations")
	}
	if sysprops == nil {
		return nil, errs.NewValueIsRequiredError("sysprops")
	}

	return &GetUnacceptableUnitsQueryHandler{
		shipments: shipments,
		entries:   entries,
		locations: locations,
		sysprops:  sysprops,
	}, nil
}

// Handle builds the rejection report. The report is only available after a
// revalidation run has finished.
func (h *GetUnacceptableUnitsQueryHandler) Handle(
	ctx context.Context,
	query GetUnacceptableUnitsQuery,
) (*report.UnacceptableUnitReport, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shp, err := h.shipments.Get(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}
	items, err := h.entries.GetAllByShipment(ctx, shp.ID())
	if err != nil {
		return nil, err
	}
	loc, err := h.locations.GetByCode(ctx, shp.LocationCode())
	if err != nil {
		return nil, err
	}
	properties, err := h.sysprops.GetAllByType(ctx, sysprop.TypeUnacceptableReport)
	if err != nil {
		return nil, err
	}

	return report.GenerateUnacceptableUnitReport(shp, items, loc, properties)
}
