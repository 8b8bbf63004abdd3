package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Locker grants fleet-wide mutual exclusion per job name.
type Locker interface {
	Acquire(ctx context.Context, name string, atMostFor time.Duration) (bool, error)
	Release(ctx context.Context, name string, atLeastFor time.Duration) error
}

// Job is one periodic unit of work. Run returns how many rows it repaired.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int, error)
}

type LockConfig struct {
	AtMostFor  time.Duration
	AtLeastFor time.Duration
}

// Runner ticks every job on its own goroutine. A tick is skipped when another
// instance holds the job's lock.
type Runner struct {
	Locker Locker
	Lock   LockConfig
	Jobs   []Job

	wg sync.WaitGroup
}

func NewRunner(locker Locker, lock LockConfig, jobs ...Job) *Runner {
	if lock.AtMostFor == 0 {
		lock.AtMostFor = 30 * time.Second
	}
	return &Runner{Locker: locker, Lock: lock, Jobs: jobs}
}

// Start launches the job loops; they stop when ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	for _, job := range r.Jobs {
		r.wg.Add(1)
		go func(job Job) {
			defer r.wg.Done()
			r.loop(ctx, job)
		}(job)
	}
}

// Wait blocks until every loop started by Start has returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, job Job) {
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	logrus.WithField("job", job.Name).Infof("scheduled every %v", job.Interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RunOnce(ctx, job)
		}
	}
}

// RunOnce executes job under its lock. It reports whether the job actually ran.
func (r *Runner) RunOnce(ctx context.Context, job Job) bool {
	log := logrus.WithField("job", job.Name)

	acquired, err := r.Locker.Acquire(ctx, job.Name, r.Lock.AtMostFor)
	if err != nil {
		log.WithError(err).Error("failed to acquire scheduler lock")
		return false
	}
	if !acquired {
		log.Debug("lock held elsewhere, skipping run")
		return false
	}

	jobCtx, cancel := context.WithTimeout(ctx, r.Lock.AtMostFor)
	start := time.Now()
	n, err := job.Run(jobCtx)
	cancel()

	if err != nil {
		log.WithError(err).Error("job failed")
	} else if n > 0 {
		log.WithFields(logrus.Fields{
			"repaired":   n,
			"elapsed_ms": time.Since(start).Milliseconds(),
		}).Info("job finished")
	}

	releaseCtx, releaseCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer releaseCancel()
	if err := r.Locker.Release(releaseCtx, job.Name, r.Lock.AtLeastFor); err != nil {
		log.WithError(err).Warn("failed to release scheduler lock")
	}
	return true
}
