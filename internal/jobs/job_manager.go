package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockAlertJob   *LowStockAlertJob
	delayedShipmentJob *DelayedShipmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getAllStockHandler queries.GetAllStockQueryHandler,
	logisticsReportHandler queries.LogisticsReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockAlertJob:   NewLowStockAlertJob(getAllStockHandler, logger),
		delayedShipmentJob: NewDelayedShipmentJob(logisticsReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	if err := jm.delayedShipmentJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.lowStockAlertJob.Stop()
		return fmt.Errorf("failed to start delayed shipment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedShipmentJob.Stop()
	jm.lowStockAlertJob.Stop()
}
