package async

import "context"

// Result represents an in-flight or completed async fetch.
type Result struct {
	done   chan struct{}
	data   []byte
	err    error
	cancel context.CancelFunc
	q      *Queue
}

// Done returns a channel that is closed when the fetch completes.
func (r *Result) Done() <-chan struct{} { return r.done }

// Bytes blocks until the fetch completes and returns its payload.
// A failed fetch never returns bytes. Once read, a failure is no
// longer reported by [Queue.Wait].
func (r *Result) Bytes() ([]byte, error) {
	<-r.done
	r.read()
	return r.data, r.err
}

// Err blocks until the fetch completes and returns its error.
// Once read, a failure is no longer reported by [Queue.Wait].
func (r *Result) Err() error {
	<-r.done
	r.read()
	return r.err
}

// Cancel cancels this fetch's context. It has no effect once the
// fetch has completed.
func (r *Result) Cancel() {
	r.cancel()
}

func (r *Result) read() {
	if r.err != nil && r.q != nil {
		r.q.forget(r)
	}
}
