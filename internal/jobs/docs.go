// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic monitoring the warehouse team relies on.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Runs hourly and logs a warning for every stock item
// below the low-stock threshold
// 2. DelayedShipmentJob - Runs every five minutes and logs a warning when
// in-flight shipments have passed their expected delivery date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getAllStockHandler, logisticsReportHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Both jobs are read-only: they surface conditions for operators but never
// mutate orders or stock themselves.
package jobs
