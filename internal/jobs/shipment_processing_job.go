package jobs

import (
	"context"
	"log/slog"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/domain/model/shipment"
	"plasmashipping/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ShipmentProcessingJob drives the batch revalidation of shipments whose
// close was requested. A close request only moves the shipment to
// PROCESSING; this job picks those shipments up and runs the revalidation
// pipeline for each one.
type ShipmentProcessingJob struct {
	shipments ports.ShipmentRepository
	handler   *commands.ProcessShipmentCommandHandler
	cron      *cron.Cron
	schedule  string
	logger    *slog.Logger
}

// NewShipmentProcessingJob creates a job that processes PROCESSING shipments
// on the given cron schedule.
func NewShipmentProcessingJob(
	shipments ports.ShipmentRepository,
	handler *commands.ProcessShipmentCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ShipmentProcessingJob {
	return &ShipmentProcessingJob{
		shipments: shipments,
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		schedule:  schedule,
		logger:    logger.With("component", "shipment_processing_job"),
	}
}

// Start begins the shipment processing job on its schedule.
func (j *ShipmentProcessingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		j.Run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment processing job started", "schedule", j.schedule)
	return nil
}

// Run executes one processing pass: every shipment in PROCESSING status is
// revalidated. A failure on one shipment does not stop the others; the
// handler itself records ERROR_PROCESSING outcomes on the shipment.
func (j *ShipmentProcessingJob) Run(ctx context.Context) {
	pending, err := j.shipments.GetAllInStatus(ctx, shipment.Processing)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list shipments pending processing", "error", err)
		return
	}

	for _, shp := range pending {
		cmd, err := commands.NewProcessShipmentCommand(shp.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build process command",
				"shipmentNumber", shp.ShipmentNumber(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment processing failed",
				"shipmentNumber", shp.ShipmentNumber(), "error", err)
		}
	}
}

// Stop stops the shipment processing job.
func (j *ShipmentProcessingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment processing job stopped")
}
