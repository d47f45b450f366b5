// Package jobs provides scheduled background tasks for the delivery checker.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. HistoryRetentionJob - deletes recorded checks older than the configured
// retention period. Only registered when check history is enabled.
//
// # Usage
//
//	jobManager := jobs.NewJobManager().
//		Add("history retention", jobs.NewHistoryRetentionJob(purgeHandler, 30*24*time.Hour, "", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed purge is logged and retried on the next tick
// - A failed job start stops every job already running
package jobs
