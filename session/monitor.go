package session

import (
	"context"
	"time"
)

// Monitor reports the number of live counters on every tick.
type Monitor struct {
	store    Store
	interval time.Duration
	report   func(live int)
}

func NewMonitor(store Store, interval time.Duration, report func(live int)) *Monitor {
	return &Monitor{
		store:    store,
		interval: interval,
		report:   report,
	}
}

// Run blocks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.report(m.store.Len())
		case <-ctx.Done():
			return
		}
	}
}
