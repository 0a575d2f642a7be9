package async

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrQueueShutdown is returned for work started after [Queue.Shutdown].
var ErrQueueShutdown = errors.New("queue shut down")

// WorkFunc is the signature for async work.
type WorkFunc func(ctx context.Context) ([]byte, error)

// Queue manages a batch of concurrent async fetches.
//
// Failed results are held by the queue until either the caller reads
// them through [Result.Bytes] or [Result.Err], or [Queue.Wait] reports
// them. Nothing is kept for successful or already-read work.
type Queue struct {
	mu       sync.Mutex
	idle     *sync.Cond
	inflight int
	sem      chan struct{}
	closed   error
	failed   []*Result
}

// NewQueue creates a Queue with the given concurrency limit.
// If maxConcurrent <= 0, concurrency is unlimited.
func NewQueue(maxConcurrent int) *Queue {
	q := &Queue{}
	q.idle = sync.NewCond(&q.mu)
	if maxConcurrent > 0 {
		q.sem = make(chan struct{}, maxConcurrent)
	}
	return q
}

// Wait blocks until no work is in flight. It returns the errors of
// failed work whose results have not been read, joined via
// errors.Join, and forgets them; a second Wait with nothing new to
// report returns nil. Wait may be called concurrently with Start.
func (q *Queue) Wait() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.inflight > 0 {
		q.idle.Wait()
	}

	errs := make([]error, 0, len(q.failed))
	for _, r := range q.failed {
		errs = append(errs, r.err)
	}
	q.failed = nil

	return errors.Join(errs...)
}

// Shutdown stops the queue from accepting new work. Work already
// started runs to completion. Later Starts fail with
// [ErrQueueShutdown], wrapped under cause when cause is non-nil.
// Only the first call has any effect.
func (q *Queue) Shutdown(cause error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed != nil {
		return
	}

	q.closed = ErrQueueShutdown
	if cause != nil {
		q.closed = fmt.Errorf("%w: %w", cause, ErrQueueShutdown)
	}
}

// Start launches fn in a new goroutine managed by the queue
// and returns a Result for tracking it.
func (q *Queue) Start(ctx context.Context, fn WorkFunc) *Result {
	q.mu.Lock()
	if err := q.closed; err != nil {
		q.mu.Unlock()
		return q.Fail(err)
	}
	q.inflight++
	q.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	r := &Result{
		done:   make(chan struct{}),
		cancel: cancel,
		q:      q,
	}

	go func() {
		defer func() {
			cancel()
			q.finish(r)
		}()

		if q.sem != nil {
			select {
			case q.sem <- struct{}{}:
				defer func() {
					<-q.sem
				}()
			case <-ctx.Done():
				r.err = ctx.Err()
				return
			}
		}

		data, err := fn(ctx)
		if err != nil {
			r.err = err
			return
		}
		r.data = data
	}()

	return r
}

// Fail returns an already completed Result carrying err, held by the
// queue like any other failure. Used for work rejected before it starts.
func (q *Queue) Fail(err error) *Result {
	done := make(chan struct{})
	close(done)

	r := &Result{
		done:   done,
		err:    err,
		cancel: func() {},
		q:      q,
	}

	q.mu.Lock()
	q.failed = append(q.failed, r)
	q.mu.Unlock()

	return r
}

// finish publishes r's outcome. A failure is recorded before done is
// closed so a reader that wakes on done always finds it to forget.
func (q *Queue) finish(r *Result) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if r.err != nil {
		q.failed = append(q.failed, r)
	}
	close(r.done)

	q.inflight--
	if q.inflight == 0 {
		q.idle.Broadcast()
	}
}

// forget drops r from the failures Wait would report.
func (q *Queue) forget(r *Result) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i := slices.Index(q.failed, r); i >= 0 {
		q.failed = slices.Delete(q.failed, i, i+1)
	}
}
