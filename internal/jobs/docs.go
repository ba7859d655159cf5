// Package jobs provides scheduled background tasks for the meal-box order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SalesReportJob - builds the sales report for today, month, quarter and year and logs it
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(salesReportHandler, config.ReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The sales report
// defaults to DefaultReportSchedule, once an hour; an empty schedule disables it.
//
// # Error Handling
//
// A failed report is logged with its error kind and whether a retry may succeed.
// The next scheduled run is not affected.
package jobs
