package jobs

import (
	"context"
	"log/slog"
	"time"

	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the sales report at the top of every hour.
const DefaultReportSchedule = "0 0 * * * *"

const reportTimeout = 30 * time.Second

// SalesReportJob periodically builds the sales report and writes it to the log.
type SalesReportJob struct {
	handler  queries.GetSalesReportQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSalesReportJob creates a job running on schedule, a cron spec with a seconds field.
func NewSalesReportJob(
	handler queries.GetSalesReportQueryHandler,
	schedule string,
	logger *slog.Logger,
) *SalesReportJob {
	return &SalesReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "sales_report_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started", "schedule", j.schedule)
	return nil
}

// Run builds one report and logs a line per period.
func (j *SalesReportJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	report, err := j.handler.Handle(ctx, queries.NewGetSalesReportQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Sales report job failed",
			"error", err,
			"kind", string(errs.KindOf(err)),
			"retryable", errs.IsRetryable(err))
		return
	}

	for _, p := range report.Periods {
		j.logger.InfoContext(ctx, "Sales report",
			"period", p.Period.String(),
			"orders", p.Orders,
			"completed", p.Completed,
			"cancelled", p.Cancelled,
			"revenue", p.Revenue.String(),
			"items_sold", p.ItemsSold)
	}
	if len(report.Warnings) > 0 {
		j.logger.WarnContext(ctx, "Sales report found orders with unrecognized status",
			"count", len(report.Warnings))
	}
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *SalesReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
