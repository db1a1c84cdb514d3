package jobs

import (
	"fmt"
	"log/slog"

	"plasmashipping/internal/core/application/usecases/commands"
	"plasmashipping/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentProcessingJob *ShipmentProcessingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the shipment repository and process handler as dependencies to wire
// up the job execution.
func NewJobManager(
	shipments ports.ShipmentRepository,
	processHandler *commands.ProcessShipmentCommandHandler,
	processingSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentProcessingJob: NewShipmentProcessingJob(shipments, processHandler, processingSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentProcessingJob.Stop()
}
