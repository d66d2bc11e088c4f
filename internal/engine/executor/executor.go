// Package executor implements the progress-reporting worker pool.
//
// Callers submit tasks that receive a progress callback as their first
// parameter. The pool binds each callback to the slot of the worker that
// picks the task up, and reports aggregate progress (completed / total)
// after every completion, so arbitrary worker code can drive both
// per-worker and overall progress without knowing who consumes it.
package executor

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// UpdateFunc reports progress for the running task. It is always safe to
// call, also when no sink is attached to the pool.
type UpdateFunc func(u domain.ProgressUpdate)

// Task is a unit of work. The update callback is bound to the worker slot
// executing the task. Tasks must observe ctx for cooperative cancellation;
// there is no hard-stop.
type Task func(ctx context.Context, update UpdateFunc) error

// Future represents the completion of a submitted task.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the task completed or ctx is done. It returns the
// task's error, if any.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed when the task completed.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

type submission struct {
	task Task
	fut  *Future
}

// Pool runs submitted tasks on a fixed set of worker goroutines, numbered
// 1..workers. Only the counters and the queue are protected by the lock;
// tasks run with no additional synchronization.
type Pool struct {
	ctx     context.Context
	sink    ports.ProgressSink
	workers int
	group   errgroup.Group

	mu         sync.Mutex
	cond       *sync.Cond
	queue      []*submission
	closed     bool
	total      int
	completed  int
	mainStatus string
	errs       error
}

// New creates a Pool with the given number of workers reporting to sink.
// A nil sink discards all progress. Workers <= 0 defaults to the number of
// CPUs. Tasks observe ctx; cancelling it fails queued tasks fast and asks
// running tasks to stop.
func New(ctx context.Context, workers int, sink ports.ProgressSink) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &Pool{
		ctx:     ctx,
		sink:    sink,
		workers: workers,
	}
	p.cond = sync.NewCond(&p.mu)

	for slot := 1; slot <= workers; slot++ {
		p.group.Go(func() error {
			p.work(slot)
			return nil
		})
	}

	return p
}

// SetMainStatus sets the base text for aggregate progress updates. The pool
// appends the completed/total counts to it.
func (p *Pool) SetMainStatus(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mainStatus = text
}

// Submit schedules a task for execution and returns a Future for its
// completion. Submitting after Wait fails the returned future with
// domain.ErrPoolClosed.
func (p *Pool) Submit(task Task) *Future {
	fut := &Future{done: make(chan struct{})}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		fut.err = domain.ErrPoolClosed
		close(fut.done)
		return fut
	}
	p.total++
	p.queue = append(p.queue, &submission{task: task, fut: fut})
	p.mu.Unlock()

	p.cond.Signal()
	return fut
}

// Wait closes the pool for submissions, drains the queue and blocks until
// all workers returned. It reports the joined errors of all failed tasks.
// After Wait, completed equals total regardless of completion order.
func (p *Pool) Wait() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()

	_ = p.group.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errs
}

// Stats returns the number of completed and submitted tasks.
func (p *Pool) Stats() (completed, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed, p.total
}

func (p *Pool) work(slot int) {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}
		sub := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.run(slot, sub)
	}
}

func (p *Pool) run(slot int, sub *submission) {
	update := func(u domain.ProgressUpdate) {
		if p.sink != nil {
			p.sink.Update(slot, u)
		}
	}

	var err error
	if ctxErr := p.ctx.Err(); ctxErr != nil {
		// Queued but not started: fail fast without invoking the task.
		err = ctxErr
	} else {
		err = sub.task(p.ctx, update)
	}

	p.complete(sub, err)
}

// complete counts the task as done whether it succeeded or failed, emits
// the aggregate update and resolves the future.
func (p *Pool) complete(sub *submission, err error) {
	p.mu.Lock()
	p.completed++
	completed, total, status := p.completed, p.total, p.mainStatus
	if err != nil {
		p.errs = errors.Join(p.errs, err)
	}
	p.mu.Unlock()

	if p.sink != nil {
		text := fmt.Sprintf("%s (%d / %d)", status, completed, total)
		p.sink.UpdateMain(domain.NewProgress(text, completed, total))
	}

	sub.fut.err = err
	close(sub.fut.done)
}
