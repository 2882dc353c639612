package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingOrderReminderJob periodically re-announces pending orders that no
// restaurant has reacted to, so an owner who missed the first event or
// connected late still learns about waiting orders.
type PendingOrderReminderJob struct {
	handler   queries.GetStalePendingOrdersQueryHandler
	bus       ports.EventBus
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingOrderReminderJob creates the reminder job. Orders pending longer
// than olderThan are republished on every run.
func NewPendingOrderReminderJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	bus ports.EventBus,
	olderThan time.Duration,
	logger *slog.Logger,
) *PendingOrderReminderJob {
	return &PendingOrderReminderJob{
		handler:   handler,
		bus:       bus,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "pending_order_reminder_job"),
	}
}

// Start begins the reminder job, running every 30 seconds.
func (j *PendingOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order reminder job started (running every 30 seconds)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order reminder job stopped")
}

func (j *PendingOrderReminderJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStalePendingOrdersQuery(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order reminder job misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order reminder job failed", "error", err)
		return
	}

	for _, result := range stale {
		j.bus.Publish(ctx, ports.TopicPendingOrders, ports.OrderEvent{
			Order:             result.Order,
			RestaurantOwnerID: result.RestaurantOwnerID,
		})
	}

	if len(stale) > 0 {
		j.logger.InfoContext(ctx, "Re-announced stale pending orders", "count", len(stale))
	}
}
