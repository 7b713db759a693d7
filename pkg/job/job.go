package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Runner runs registered jobs on their own ticker until the context is done.
type Runner struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

// Register adds a job unless it is disabled or has no positive interval.
func (r *Runner) Register(enabled bool, name string, interval time.Duration, fn Func) *Runner {
	if !enabled || interval <= 0 {
		slog.Debug("job not registered", "job", name)
		return r
	}

	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Len() int {
	return len(r.jobs)
}

func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)

		go r.loop(ctx, j)
	}
}

// Wait blocks until every started job observed context cancellation.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.DebugContext(ctx, "job started")

		err := runSafe(ctx, j.fn)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job finished")
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "job stopped by ctx")
			return
		case <-ticker.C:
		}
	}
}

func runSafe(ctx context.Context, fn Func) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("job panic: %v\n%s", rec, debug.Stack())
		}
	}()

	return fn(ctx)
}
