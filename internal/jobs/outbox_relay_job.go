package jobs

import (
	"context"
	"log/slog"

	"campusfood/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelayer publishes one batch of pending order events.
type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob drains the outbox every second, one batch per tick. A tick that is
// still running when the next one fires makes the next one skip.
type OutboxRelayJob struct {
	relayer OutboxRelayer
	cmd     commands.RelayOutboxCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewOutboxRelayJob(relayer OutboxRelayer, batchSize int, logger *slog.Logger) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "outbox_relay_job")
	return &OutboxRelayJob{
		relayer: relayer,
		cmd:     cmd,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}, nil
}

// Start schedules the relay to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.tick)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop waits for a running tick to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) tick() {
	ctx := context.Background()

	n, err := j.relayer.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if n > 0 {
		j.logger.DebugContext(ctx, "Relayed order events", "count", n)
	}
}
