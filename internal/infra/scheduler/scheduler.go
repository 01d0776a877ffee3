package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is a single unit of polling work. Its failures are handled by the job itself.
type Job func(ctx context.Context)

// PollScheduler runs a job repeatedly, one run at a time. After every run it
// waits until the schedule's next activation, measured from the moment the run ended,
// so "@every 10m" always leaves ten minutes between two runs.
type PollScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
	wait     func(ctx context.Context, d time.Duration) error
}

// NewPollScheduler parses spec with the standard cron parser, which also
// accepts descriptors such as "@every 10m" and "@hourly".
func NewPollScheduler(spec string, logger *logrus.Entry) (*PollScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollScheduler{
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
		wait:     sleep,
	}, nil
}

// Run executes job until ctx is cancelled. The first run starts immediately.
func (s *PollScheduler) Run(ctx context.Context, job Job) {
	s.logger.Info("Starting poll scheduler...")
	for {
		job(ctx)

		delay := s.NextDelay()
		s.logger.WithField("delay", delay.String()).Debug("Waiting for next poll")
		if err := s.wait(ctx, delay); err != nil {
			s.logger.Info("Poll scheduler stopped.")
			return
		}
	}
}

// NextDelay returns how long to wait from now until the next activation.
func (s *PollScheduler) NextDelay() time.Duration {
	now := s.now()
	return s.schedule.Next(now).Sub(now)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
