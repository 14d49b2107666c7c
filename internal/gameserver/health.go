package gameserver

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthWatcher mirrors a dependency check into the gRPC health service.
type HealthWatcher struct {
	hs       *health.Server
	check    func(context.Context) error
	interval time.Duration
	logger   *zap.Logger
}

// NewHealthWatcher creates a watcher that runs check every interval.
//
// Precondition: hs, check, and logger must be non-nil; interval must be > 0.
func NewHealthWatcher(hs *health.Server, check func(context.Context) error, interval time.Duration, logger *zap.Logger) *HealthWatcher {
	return &HealthWatcher{hs: hs, check: check, interval: interval, logger: logger}
}

// Check runs the check once and updates the serving status of both the
// overall server and BossService.
//
// Postcondition: returns the check error, nil when serving.
func (w *HealthWatcher) Check(ctx context.Context) error {
	err := w.check(ctx)
	status := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		w.logger.Warn("health check failed", zap.Error(err))
	}
	w.hs.SetServingStatus("", status)
	w.hs.SetServingStatus(ServiceName, status)
	return err
}

// Run checks until ctx is cancelled, then marks the server as shutting down.
func (w *HealthWatcher) Run(ctx context.Context) {
	_ = w.Check(ctx)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.hs.Shutdown()
			return
		case <-ticker.C:
			_ = w.Check(ctx)
		}
	}
}
