// Package taskqueue implements a fixed size pool of workers that process
// submitted items.
package taskqueue

import (
	"context"
	"errors"
	"sync"
)

// ErrNoWorkers is returned when a queue is created without workers.
var ErrNoWorkers = errors.New("worker count must be at least 1")

// WorkerFunc processes a single item.
type WorkerFunc[T any] func(ctx context.Context, item T) error

type job[T any] struct {
	run  WorkerFunc[T]
	item T
}

// Queue distributes items to its workers. The first error returned by a
// worker is kept and cancels the jobs that have not started yet.
type Queue[T any] struct {
	ctx    context.Context
	cancel context.CancelFunc
	jobs   chan job[T]
	wg     sync.WaitGroup
	worker WorkerFunc[T]

	mu  sync.Mutex
	err error
}

// New starts workerCount workers that process submitted items with worker.
// Up to bufferSize items can be queued without blocking.
func New[T any](ctx context.Context, workerCount, bufferSize int, worker WorkerFunc[T]) (*Queue[T], error) {
	if workerCount <= 0 {
		return nil, ErrNoWorkers
	}
	if worker == nil {
		return nil, errors.New("worker can not be nil")
	}

	ctx, cancel := context.WithCancel(ctx)
	q := &Queue[T]{
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(chan job[T], bufferSize),
		worker: worker,
	}

	for range workerCount {
		go func() {
			for j := range q.jobs {
				q.run(j)
			}
		}()
	}
	return q, nil
}

func (q *Queue[T]) run(j job[T]) {
	defer q.wg.Done()
	if q.ctx.Err() != nil {
		return
	}
	if err := j.run(q.ctx, j.item); err != nil {
		q.setErr(err)
	}
}

func (q *Queue[T]) setErr(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err == nil {
		q.err = err
		q.cancel()
	}
}

// Submit queues an item for the default worker.
func (q *Queue[T]) Submit(item T) {
	q.SubmitJob(item, q.worker)
}

// SubmitJob queues an item that is processed by the given function.
func (q *Queue[T]) SubmitJob(item T, run WorkerFunc[T]) {
	q.wg.Add(1)
	q.jobs <- job[T]{run: run, item: item}
}

// Wait blocks until all submitted items are processed and returns the first
// worker error or the cancellation cause of the parent context.
func (q *Queue[T]) Wait() error {
	q.wg.Wait()

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	return context.Cause(q.ctx)
}

// Close stops the workers, no items can be submitted afterwards.
func (q *Queue[T]) Close() {
	close(q.jobs)
	q.cancel()
}
