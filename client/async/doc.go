// Package async runs render fetches on their own goroutines and hands
// back a [Result] for each one.
//
// A [Queue] tracks every fetch it starts so callers can wait for the
// whole batch, optionally bounding how many run at once:
//
//	q := async.NewQueue(4)
//	r := q.Start(ctx, func(ctx context.Context) ([]byte, error) {
//		return c.Head(ctx, uuid)
//	})
//	img, err := r.Bytes() // blocks until this fetch finishes
//	err = q.Wait()        // blocks until every fetch finishes
//
// Results complete in whatever order their fetches do.
//
// Most callers should use [github.com/adamwoolhether/mineatar/client.AsyncClient],
// which owns a Queue internally.
package async
