package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically scans the stock catalog and logs a warning
// for every item whose quantity has fallen below the low-stock threshold.
type LowStockAlertJob struct {
	handler queries.GetAllStockQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates a new job monitoring stock levels.
func NewLowStockAlertJob(handler queries.GetAllStockQueryHandler, logger *slog.Logger) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low stock scan, running at the top of every hour.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		items, err := j.handler.Handle(ctx, queries.NewGetAllStockQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
			return
		}

		for _, item := range items {
			if item.Quantity < queries.LowStockThreshold {
				j.logger.WarnContext(ctx, "Stock below threshold",
					"product_name", item.ProductName,
					"quantity", item.Quantity,
					"location", item.Location,
					"threshold", queries.LowStockThreshold)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running hourly)")
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
