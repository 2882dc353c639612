package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingOrderReminderJob *PendingOrderReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stalePendingHandler queries.GetStalePendingOrdersQueryHandler,
	bus ports.EventBus,
	reminderAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrderReminderJob: NewPendingOrderReminderJob(stalePendingHandler, bus, reminderAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending order reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrderReminderJob.Stop()
}
