package client

import (
	"context"

	"github.com/adamwoolhether/mineatar/client/async"
	"github.com/adamwoolhether/mineatar/render"
)

// AsyncClient issues renders without blocking the caller. Each call
// starts the fetch on its own goroutine and returns an [async.Result]
// straight away; the fetch itself goes through the same code path as
// [Client.Fetch], so both clients classify responses identically.
type AsyncClient struct {
	c *Client
	q *async.Queue
}

// BuildAsync creates an [AsyncClient]. It accepts every [Option] that
// [Build] does, plus [WithConcurrency].
func BuildAsync(optFns ...Option) (*AsyncClient, error) {
	c, err := Build(optFns...)
	if err != nil {
		return nil, err
	}

	return &AsyncClient{
		c: c,
		q: async.NewQueue(c.concurrency),
	}, nil
}

// Fetch starts a render fetch and returns its pending result.
func (a *AsyncClient) Fetch(ctx context.Context, kind render.Kind, playerUUID string, optFns ...render.Option) *async.Result {
	return a.q.Start(ctx, func(ctx context.Context) ([]byte, error) {
		return a.c.Fetch(ctx, kind, playerUUID, optFns...)
	})
}

// Skin starts fetching the player's raw skin texture.
func (a *AsyncClient) Skin(ctx context.Context, playerUUID string) *async.Result {
	return a.Fetch(ctx, render.Skin, playerUUID)
}

// Head starts fetching a 3D render of the player's head.
func (a *AsyncClient) Head(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.Head, playerUUID, opts...)
}

// Face starts fetching a flat render of the front of the player's head.
func (a *AsyncClient) Face(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.Face, playerUUID, opts...)
}

// FullBody starts fetching a 3D render of the whole player.
func (a *AsyncClient) FullBody(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.BodyFull, playerUUID, opts...)
}

// FrontBody starts fetching a flat render of the front of the player.
func (a *AsyncClient) FrontBody(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.BodyFront, playerUUID, opts...)
}

// BackBody starts fetching a flat render of the back of the player.
func (a *AsyncClient) BackBody(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.BodyBack, playerUUID, opts...)
}

// LeftBody starts fetching a flat render of the player's left side.
func (a *AsyncClient) LeftBody(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.BodyLeft, playerUUID, opts...)
}

// RightBody starts fetching a flat render of the player's right side.
func (a *AsyncClient) RightBody(ctx context.Context, playerUUID string, opts ...render.Option) *async.Result {
	return a.Fetch(ctx, render.BodyRight, playerUUID, opts...)
}

// Blocking returns the [Client] this AsyncClient runs its fetches on.
// Both share one session, so closing either closes both.
func (a *AsyncClient) Blocking() *Client {
	return a.c
}

// Wait blocks until no fetch is in flight and returns the errors of
// failed fetches whose results were never read, joined. Reported
// errors are forgotten, so a later Wait only covers newer failures.
// Wait is safe to call while other goroutines start fetches.
func (a *AsyncClient) Wait() error {
	return a.q.Wait()
}

// Close stops accepting new fetches, waits for in-flight ones to
// finish and then closes the underlying [Client]. Per-fetch errors are
// reported by their results, not by Close. Fetches started after Close
// fail with [ErrClientClosed], as they do on a closed [Client].
func (a *AsyncClient) Close() error {
	a.q.Shutdown(ErrClientClosed)
	_ = a.q.Wait()

	return a.c.Close()
}
