// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through JobManager:
//
//	jobManager, err := jobs.NewJobManager(relayHandler, cfg.OutboxBatchSize, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OutboxRelayJob runs every second ("* * * * * *") and hands pending order events from
// the outbox table to the configured broker. Failures are logged and the batch is
// retried on the next tick.
package jobs
