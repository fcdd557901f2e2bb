// Geoimpact - Geographic Impact Engine for News Coverage Maps
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geoimpact

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/geoimpact/internal/logging"
)

// maxConsecutiveFailures is how many task errors in a row a PeriodicService
// tolerates before returning, which hands the failure to the supervisor's
// backoff.
const maxConsecutiveFailures = 3

// Task is one run of a periodic job, e.g. (*database.DB).Checkpoint.
type Task func(ctx context.Context) error

// PeriodicService runs a Task on a fixed interval.
//
// Single failures are logged and retried on the next tick. After
// maxConsecutiveFailures the service returns the last error and suture
// restarts it with backoff.
type PeriodicService struct {
	name     string
	interval time.Duration
	task     Task
}

// NewPeriodicService creates a service that runs task every interval. The
// first run happens one interval after start.
func NewPeriodicService(name string, interval time.Duration, task Task) *PeriodicService {
	return &PeriodicService{
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	if p.interval <= 0 {
		return fmt.Errorf("%s: interval must be positive, got %v", p.name, p.interval)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		start := time.Now()
		if err := p.task(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			logging.Warn().Err(err).
				Str("service", p.name).
				Int("consecutive_failures", failures).
				Msg("Periodic task failed")
			if failures >= maxConsecutiveFailures {
				return fmt.Errorf("%s failed %d times in a row: %w", p.name, failures, err)
			}
			continue
		}

		failures = 0
		logging.Debug().Str("service", p.name).Dur("duration", time.Since(start)).Msg("Periodic task completed")
	}
}

// String names the service in supervisor logs.
func (p *PeriodicService) String() string {
	return p.name
}
