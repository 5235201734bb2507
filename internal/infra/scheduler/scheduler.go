// Package scheduler runs the periodic generation jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job is a named unit of periodic work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type registration struct {
	job      Job
	interval time.Duration
}

// Scheduler runs registered jobs on fixed intervals. Each job gets its own
// ticker loop; all loops stop when the Start context is cancelled.
type Scheduler struct {
	mu   sync.Mutex
	jobs map[string]registration
}

// NewScheduler creates a new Scheduler instance.
func NewScheduler() *Scheduler {
	return &Scheduler{jobs: make(map[string]registration)}
}

// Register adds a job with its run interval. Registering after Start has no
// effect on the running loops.
func (s *Scheduler) Register(job Job, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Name()] = registration{job: job, interval: interval}
}

// Start begins one loop per registered job. It blocks until the context is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	regs := make([]registration, 0, len(s.jobs))
	for _, r := range s.jobs {
		regs = append(regs, r)
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, r := range regs {
		wg.Add(1)
		go func(r registration) {
			defer wg.Done()
			s.runLoop(ctx, r)
		}(r)
	}
	wg.Wait()
}

// runLoop runs one job immediately on start, then on its ticker.
func (s *Scheduler) runLoop(ctx context.Context, r registration) {
	slog.Info("Scheduler job started",
		"job", r.job.Name(),
		"interval", r.interval,
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	s.runOnce(ctx, r.job)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler job shutting down", "job", r.job.Name())
			return
		case <-ticker.C:
			s.runOnce(ctx, r.job)
		}
	}
}

// runOnce executes a single job run. A panic in the job is contained here so
// one bad run does not take down the other loops or the process.
func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Scheduler job panicked",
				"job", job.Name(),
				"panic", r,
			)
		}
	}()

	if err := job.Run(ctx); err != nil {
		slog.Error("Scheduler job run failed",
			"job", job.Name(),
			"error", err,
		)
	}
}

// TriggerNow runs a registered job once, synchronously.
func (s *Scheduler) TriggerNow(ctx context.Context, name string) error {
	s.mu.Lock()
	r, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}
	return r.job.Run(ctx)
}
