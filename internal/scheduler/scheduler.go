// Package scheduler runs the pipeline on a cron schedule in daemon mode.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/prop-edge/internal/service"
)

// Scheduler manages the daily pipeline job
type Scheduler struct {
	cron            *cron.Cron
	pipeline        *service.Pipeline
	logger          *logrus.Logger
	runTimeout      time.Duration
	gracefulTimeout time.Duration

	mu        sync.RWMutex
	isRunning bool
	jobIDs    []cron.EntryID
	onSuccess func(*service.RunResult)
}

// NewScheduler creates a scheduler in the given location. The cron
// expression is evaluated in local game time, not UTC, so the job fires
// before that evening's slate regardless of daylight saving.
func NewScheduler(pipeline *service.Pipeline, loc *time.Location, runTimeout time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(loc)),
		pipeline:        pipeline,
		logger:          logger,
		runTimeout:      runTimeout,
		gracefulTimeout: 30 * time.Second,
		jobIDs:          make([]cron.EntryID, 0),
	}
}

// OnSuccess registers a callback invoked after each successful run
func (s *Scheduler) OnSuccess(fn func(*service.RunResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSuccess = fn
}

// SchedulePipeline schedules the daily pipeline run
func (s *Scheduler) SchedulePipeline(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.runTimeout)
		defer cancel()

		s.logger.Info("Starting scheduled pipeline run")
		result, err := s.pipeline.Run(ctx)
		if err != nil {
			s.logger.WithError(err).Error("Scheduled pipeline run failed")
			return
		}
		s.logger.WithFields(logrus.Fields{
			"run_id":  result.RunID,
			"reports": result.ReportPaths,
		}).Info("Scheduled pipeline run complete")

		s.mu.RLock()
		onSuccess := s.onSuccess
		s.mu.RUnlock()
		if onSuccess != nil {
			onSuccess(result)
		}
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled pipeline job")
	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}
	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(s.gracefulTimeout):
		s.logger.Warn("Scheduler stop timed out with a job still running")
	}

	s.isRunning = false
	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns the time of the next scheduled run
func (s *Scheduler) NextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return time.Time{}
	}

	next := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() && (next.IsZero() || entry.Next.Before(next)) {
			next = entry.Next
		}
	}
	return next
}
