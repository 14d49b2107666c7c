package gameserver

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

// TickManager runs registered callbacks periodically.
// Callbacks of one tick run sequentially on the manager's goroutine.
//
// Invariant: each callback is invoked at most once per tick interval.
type TickManager struct {
	interval time.Duration
	mu       sync.Mutex
	ticks    map[string]func(context.Context)
}

// NewTickManager returns a manager that fires ticks every interval.
//
// Precondition: interval must be > 0.
func NewTickManager(interval time.Duration) *TickManager {
	if interval <= 0 {
		panic("gameserver.NewTickManager: interval must be > 0")
	}
	return &TickManager{
		interval: interval,
		ticks:    make(map[string]func(context.Context)),
	}
}

// RegisterTick registers fn under name. Replaces any existing callback.
func (m *TickManager) RegisterTick(name string, fn func(context.Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks[name] = fn
}

// Unregister removes the callback registered under name.
func (m *TickManager) Unregister(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ticks, name)
}

// Start begins the tick loop. Runs until ctx is cancelled.
//
// Postcondition: all registered callbacks are invoked once per interval.
func (m *TickManager) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.mu.Lock()
				callbacks := make([]func(context.Context), 0, len(m.ticks))
				for _, fn := range m.ticks {
					callbacks = append(callbacks, fn)
				}
				m.mu.Unlock()
				for _, fn := range callbacks {
					if ctx.Err() != nil {
						return
					}
					fn(ctx)
				}
			}
		}
	}()
}

// RotationTick returns a tick callback that runs the automatic switch check.
// Failures are logged and retried on the next tick.
func RotationTick(svc *boss.Service, logger *zap.Logger) func(context.Context) {
	return func(ctx context.Context) {
		if _, err := svc.RunAutoSwitchCheck(ctx); err != nil && ctx.Err() == nil {
			logger.Error("scheduled boss rotation failed", zap.Error(err))
		}
	}
}
