// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

const (
	PrintMonitor = "print-monitor"
	PrintCleanup = "print-cleanup"
)

var ErrUnknownJob = errors.New("unknown job")

// Job is one periodic sweep. Timeout bounds a single run and is also the
// lifetime of the lock taken for it.
type Job struct {
	Name     string
	Schedule Schedule
	Timeout  time.Duration
	Run      func(ctx context.Context) (int, error)
}

// Scheduler runs each job on its schedule. A run is skipped when another
// replica holds the job lock, failures are logged and counted but never
// retried before the next tick.
type Scheduler struct {
	jobs   []Job
	locker LockerInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, job := range s.jobs {
		g.Go(func() error {
			s.loop(ctx, job)
			return nil
		})
	}

	s.logger.Infof("scheduler started with %d jobs", len(s.jobs))
	return g.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	for {
		wait := job.Schedule.Next(s.now()).Sub(s.now())
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Debugf("job %s stopped", job.Name)
			return
		case <-timer.C:
		}

		if _, _, err := s.execute(ctx, job); err != nil {
			s.logger.Errorf("job %s failed: %v", job.Name, err)
		}
	}
}

// RunOnce executes the named job immediately under its lock. ran is false
// when the lock is held elsewhere.
func (s *Scheduler) RunOnce(ctx context.Context, name string) (affected int, ran bool, err error) {
	for _, job := range s.jobs {
		if job.Name == name {
			return s.execute(ctx, job)
		}
	}

	return 0, false, fmt.Errorf("%w: %s", ErrUnknownJob, name)
}

func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.jobs))
	for _, job := range s.jobs {
		names = append(names, job.Name)
	}
	return names
}

func (s *Scheduler) execute(ctx context.Context, job Job) (int, bool, error) {
	ctx, span := s.tracer.Start(ctx, "jobs.Scheduler.execute")
	defer span.End()

	unlock, ok, err := s.locker.TryLock(ctx, job.Name, job.Timeout)
	if err != nil {
		s.count("job_lock_failed", job.Name)
		return 0, false, err
	}
	if !ok {
		s.logger.Debugf("job %s is running elsewhere, skipping", job.Name)
		return 0, false, nil
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warnf("failed to release lock of job %s: %v", job.Name, err)
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, job.Timeout)
	defer cancel()

	start := s.now()
	n, err := job.Run(runCtx)
	if err != nil {
		s.count("job_failed", job.Name)
		return n, true, err
	}

	s.logger.Infof("job %s affected %d rows in %s", job.Name, n, s.now().Sub(start))
	s.count("job_completed", job.Name)
	return n, true, nil
}

func (s *Scheduler) count(event, job string) {
	if err := s.monitor.IncDomainEvent(map[string]string{"event": event, "detail": job}); err != nil {
		s.logger.Debugf("failed to count job event: %v", err)
	}
}

func NewScheduler(jobs []Job, locker LockerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Scheduler {
	return &Scheduler{
		jobs:    jobs,
		locker:  locker,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
