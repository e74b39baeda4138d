package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
}

// NewJobManager wires the jobs to their handlers. A nil relayer disables the relay,
// which is how the service runs without a broker.
func NewJobManager(relayer OutboxRelayer, batchSize int, logger *slog.Logger) (*JobManager, error) {
	jm := &JobManager{}
	if relayer == nil {
		return jm, nil
	}

	job, err := NewOutboxRelayJob(relayer, batchSize, logger)
	if err != nil {
		return nil, err
	}
	jm.outboxRelayJob = job
	return jm, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.outboxRelayJob == nil {
		return nil
	}
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.outboxRelayJob != nil {
		jm.outboxRelayJob.Stop()
	}
}
