package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DelayedShipmentJob periodically checks for in-flight shipments that have
// passed their expected delivery date and logs a warning when any exist.
type DelayedShipmentJob struct {
	handler queries.LogisticsReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDelayedShipmentJob creates a new job monitoring shipment delays.
func NewDelayedShipmentJob(handler queries.LogisticsReportQueryHandler, logger *slog.Logger) *DelayedShipmentJob {
	return &DelayedShipmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delayed_shipment_job"),
	}
}

// Start begins the delay check, running every five minutes.
func (j *DelayedShipmentJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		report, err := j.handler.Handle(ctx, queries.NewLogisticsReportQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delayed shipment check failed", "error", err)
			return
		}

		if report.Logistics.Delayed > 0 {
			j.logger.WarnContext(ctx, "Shipments past expected delivery date",
				"delayed", report.Logistics.Delayed,
				"in_flight_total", report.Logistics.Total)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed shipment job started (running every five minutes)")
	return nil
}

// Stop stops the delayed shipment job.
func (j *DelayedShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delayed shipment job stopped")
}
