package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverychecker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the retention job at the start of every hour.
const DefaultPurgeSchedule = "0 0 * * * *"

// HistoryPurger deletes recorded checks older than a retention period.
type HistoryPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeCheckHistoryCommand) (int64, error)
}

// HistoryRetentionJob periodically deletes recorded checks older than the
// configured retention.
type HistoryRetentionJob struct {
	handler   HistoryPurger
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewHistoryRetentionJob creates the job. schedule is a six field cron
// expression with seconds; an empty schedule means DefaultPurgeSchedule.
func NewHistoryRetentionJob(
	handler HistoryPurger,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *HistoryRetentionJob {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}
	return &HistoryRetentionJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "history_retention_job"),
	}
}

// Start registers the purge on the schedule and starts the scheduler.
func (j *HistoryRetentionJob) Start() error {
	if _, err := commands.NewPurgeCheckHistoryCommand(j.retention); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "History retention job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce purges expired checks immediately and reports how many were removed.
func (j *HistoryRetentionJob) RunOnce(ctx context.Context) int64 {
	cmd, err := commands.NewPurgeCheckHistoryCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "History retention job misconfigured", "error", err)
		return 0
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "History retention job failed", "error", err)
		return 0
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Expired checks purged", "deleted", deleted)
	}
	return deleted
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *HistoryRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "History retention job stopped")
}
