package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	registeredUsersGaugeJob *RegisteredUsersGaugeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	countHandler CountRegisteredUsersHandler,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		registeredUsersGaugeJob: NewRegisteredUsersGaugeJob(countHandler, registerer, logger),
	}
}

// StartAll publishes initial values and starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	jm.registeredUsersGaugeJob.Refresh(context.Background())

	if err := jm.registeredUsersGaugeJob.Start(); err != nil {
		return fmt.Errorf("failed to start registered users gauge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.registeredUsersGaugeJob.Stop()
}
