// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule runs a task repeatedly with a delay computed from the end
// of the previous run. Delays come from a cron.Schedule, so a fixed interval
// and a cron expression are interchangeable.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrNoNextRun is returned when the schedule has no future activation.
var ErrNoNextRun = errors.New("schedule has no next activation")

// Clock supplies the current time and an interruptible sleep.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the
	// latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Delay is a cron.Schedule whose next activation is always exactly the
// delay after the given time. Unlike cron.Every it does not round to whole
// seconds.
type Delay time.Duration

// Next implements cron.Schedule.
func (d Delay) Next(t time.Time) time.Time { return t.Add(time.Duration(d)) }

// Every returns a fixed-delay schedule. The interval must be positive.
func Every(interval time.Duration) (cron.Schedule, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", interval)
	}
	return Delay(interval), nil
}

// Parse accepts a standard five-field cron expression or a descriptor such
// as "@hourly" or "@every 5m".
func Parse(expr string) (cron.Schedule, error) {
	s, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing cron expression %q: %w", expr, err)
	}
	return s, nil
}

// New returns the schedule described by expr when it is set, and a
// fixed-delay schedule of interval otherwise.
func New(interval time.Duration, expr string) (cron.Schedule, error) {
	if expr != "" {
		return Parse(expr)
	}
	return Every(interval)
}

// Task is one unit of scheduled work.
type Task func(ctx context.Context) error

// Run executes task immediately and then again at every activation of sched,
// where each activation is computed from the time the previous run finished.
// Runs never overlap. Run returns the first task error unchanged, ctx.Err()
// when the context ends, or ErrNoNextRun.
func Run(ctx context.Context, sched cron.Schedule, clock Clock, task Task) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx); err != nil {
			return err
		}

		now := clock.Now()
		next := sched.Next(now)
		if next.IsZero() {
			return ErrNoNextRun
		}
		if err := clock.Sleep(ctx, next.Sub(now)); err != nil {
			return err
		}
	}
}
