package worker

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-list/internal/service"
)

var (
	ErrStopped  = errors.New("dispatcher stopped")
	ErrPanicked = errors.New("gesture panicked")
)

// Gesture is one user action applied to the task service.
type Gesture func(s *service.TaskService)

type job struct {
	fn   Gesture
	done chan struct{}
}

// Dispatcher applies gestures one at a time, in submission order, on a
// single goroutine that owns the service.
type Dispatcher struct {
	svc    *service.TaskService
	logger *zap.Logger
	jobs   chan job
	wg     sync.WaitGroup
	stop   chan struct{}
	start  sync.Once
	once   sync.Once
}

func NewDispatcher(svc *service.TaskService, logger *zap.Logger, queue int) *Dispatcher {
	if queue < 0 {
		queue = 0
	}
	return &Dispatcher{
		svc:    svc,
		logger: logger,
		jobs:   make(chan job, queue),
		stop:   make(chan struct{}),
	}
}

// Start launches the loop goroutine; later calls are no-ops.
func (d *Dispatcher) Start(ctx context.Context) {
	d.start.Do(func() {
		d.logger.Info("Starting gesture dispatcher", zap.Int("queue", cap(d.jobs)))

		d.wg.Add(1)
		go d.loop(ctx)
	})
}

func (d *Dispatcher) Stop() {
	d.halt()
	d.wg.Wait()
	d.logger.Info("Gesture dispatcher stopped")
}

// Submit queues fn and waits until it has run. If ctx ends first the
// gesture may still be applied later; its effect is simply not awaited.
func (d *Dispatcher) Submit(ctx context.Context, fn Gesture) error {
	j := job{fn: fn, done: make(chan struct{})}

	select {
	case d.jobs <- j:
	case <-d.stop:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-j.done:
		return nil
	case <-d.stop:
		// loop may have exited between accepting the job and running it
		select {
		case <-j.done:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Read runs fn on the dispatcher goroutine and returns its result. When ctx
// ends first the zero value is returned; fn may still run later and its
// result is dropped.
func Read[T any](ctx context.Context, d *Dispatcher, fn func(s *service.TaskService) T) (T, error) {
	var zero T
	res := make(chan T, 1)

	if err := d.Submit(ctx, func(s *service.TaskService) {
		res <- fn(s)
	}); err != nil {
		return zero, err
	}

	select {
	case v := <-res:
		return v, nil
	default:
		return zero, ErrPanicked
	}
}

func (d *Dispatcher) loop(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-d.stop:
			return
		case <-ctx.Done():
			d.halt()
			return
		case j := <-d.jobs:
			d.run(j)
		}
	}
}

func (d *Dispatcher) halt() {
	d.once.Do(func() {
		d.logger.Info("Stopping gesture dispatcher...")
		close(d.stop)
	})
}

func (d *Dispatcher) run(j job) {
	defer close(j.done)
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("gesture panicked", zap.Any("panic", r))
		}
	}()
	j.fn(d.svc)
}
