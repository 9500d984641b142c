package jobs

import (
	"context"
	"log/slog"

	"accounts/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

const registeredUsersGaugeSchedule = "*/30 * * * * *"

// CountRegisteredUsersHandler executes the user count query.
type CountRegisteredUsersHandler interface {
	Handle(ctx context.Context, query queries.CountRegisteredUsersQuery) (int64, error)
}

// RegisteredUsersGaugeJob periodically publishes the number of registered users.
type RegisteredUsersGaugeJob struct {
	handler CountRegisteredUsersHandler
	gauge   prometheus.Gauge
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRegisteredUsersGaugeJob creates the job and registers its gauge on registerer.
func NewRegisteredUsersGaugeJob(
	handler CountRegisteredUsersHandler,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) *RegisteredUsersGaugeJob {
	return &RegisteredUsersGaugeJob{
		handler: handler,
		gauge: promauto.With(registerer).NewGauge(prometheus.GaugeOpts{
			Namespace: "accounts",
			Name:      "registered_users",
			Help:      "Number of registered users.",
		}),
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "registered_users_gauge_job"),
	}
}

// Start schedules the refresh every 30 seconds.
func (j *RegisteredUsersGaugeJob) Start() error {
	if _, err := j.cron.AddFunc(registeredUsersGaugeSchedule, func() {
		j.Refresh(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Registered users gauge job started", "schedule", registeredUsersGaugeSchedule)
	return nil
}

// Refresh queries the count once and updates the gauge.
func (j *RegisteredUsersGaugeJob) Refresh(ctx context.Context) {
	count, err := j.handler.Handle(ctx, queries.NewCountRegisteredUsersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Registered users gauge refresh failed", "error", err)
		return
	}

	j.gauge.Set(float64(count))
}

// Stop stops the job and waits for a running refresh to finish.
func (j *RegisteredUsersGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Registered users gauge job stopped")
}
