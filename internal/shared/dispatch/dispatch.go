// Package dispatch runs fire-and-forget work off the request path.
//
// Dispatch never blocks: when the queue is full the task is dropped and
// counted. Workers bound every task with a timeout and swallow failures
// after logging them.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-shortlink/internal/shared/metrics"

	"go.uber.org/zap"
)

const (
	DefaultQueueSize   = 10000
	DefaultWorkers     = 4
	DefaultTaskTimeout = 2 * time.Second
)

// Task is a unit of background work.
type Task func(ctx context.Context) error

type job struct {
	name string
	task Task
}

// Dispatcher is a bounded queue drained by a fixed set of workers.
type Dispatcher struct {
	queue   chan job
	workers int
	timeout time.Duration
	logger  *zap.Logger
	metrics metrics.Sink

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// New creates a dispatcher. Non-positive arguments fall back to defaults.
func New(size, workers int, timeout time.Duration, logger *zap.Logger, sink metrics.Sink) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultTaskTimeout
	}
	return &Dispatcher{
		queue:   make(chan job, size),
		workers: workers,
		timeout: timeout,
		logger:  logger,
		metrics: metrics.OrNop(sink),
	}
}

// Start launches the workers. Calling it more than once is a no-op.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

// Dispatch enqueues task and reports whether it was accepted. It returns
// false without blocking when the queue is full or the dispatcher is closed.
func (d *Dispatcher) Dispatch(name string, task Task) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}

	select {
	case d.queue <- job{name: name, task: task}:
		return true
	default:
		d.metrics.IncTasksDropped(name)
		d.logger.Debug("background queue full, dropping task", zap.String("task", name))
		return false
	}
}

// Close stops intake and waits for queued tasks to drain, or for ctx to end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("dispatcher: drain interrupted"), ctx.Err())
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for j := range d.queue {
		d.run(j)
	}
}

func (d *Dispatcher) run(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("background task panicked",
				zap.String("task", j.name),
				zap.Any("panic", r),
			)
		}
	}()

	if err := j.task(ctx); err != nil {
		d.logger.Warn("background task failed",
			zap.String("task", j.name),
			zap.Error(err),
		)
	}
}
