package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds how many outbox events one tick may drain.
const dispatchBatchSize = 50

// NotificationDispatchJob drains the status event outbox on a schedule. Runs
// every second so parties hear about order transitions with at most a second
// of lag.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates a new job for dispatching notifications.
// Uses DispatchNotificationsCommandHandler to drain the outbox every second.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the notification dispatch job to run every second.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, err := commands.NewDispatchNotificationsCommand(dispatchBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			switch {
			case errors.Is(err, commands.ErrNoUnpublishedEvents):
				// An empty outbox is the normal idle state.
			case errors.Is(err, commands.ErrPushDeliveryIncomplete):
				j.logger.WarnContext(ctx, "Push delivery incomplete, events marked published", "error", err)
			default:
				j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every second)")
	return nil
}

// Stop stops the notification dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
