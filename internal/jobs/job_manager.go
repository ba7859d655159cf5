package jobs

import (
	"fmt"
	"log/slog"

	"mealbox/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	salesReportJob *SalesReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty reportSchedule disables the sales report job.
func NewJobManager(
	salesReportHandler queries.GetSalesReportQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reportSchedule != "" {
		jm.salesReportJob = NewSalesReportJob(salesReportHandler, reportSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.salesReportJob == nil {
		return nil
	}

	if err := jm.salesReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start sales report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.salesReportJob != nil {
		jm.salesReportJob.Stop()
	}
}
