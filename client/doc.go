// Package client provides the blocking and non-blocking Mineatar clients
// built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//	defer c.Close()
//
// # Fetching Renders
//
// Each render kind has a named method; they all share [Client.Fetch]:
//
//	skin, err := c.Skin(ctx, uuid)
//	head, err := c.Head(ctx, uuid, render.WithScale(8), render.WithOverlay(false))
//	body, err := c.Fetch(ctx, render.BodyLeft, uuid)
//
// Bytes are returned exactly as the API sent them.
//
// # Errors
//
// Every non-2xx status is returned as an [*APIError] carrying the status
// code and body. Check the category with [errors.Is]:
//
//	switch {
//	case errors.Is(err, client.ErrRateLimited): // 429
//	case errors.Is(err, client.ErrInvalidUUID): // 400
//	case errors.Is(err, client.ErrUnexpectedStatusCode): // anything else
//	}
//
// Nothing is retried. Network failures are passed through wrapped.
//
// # Async Renders
//
// [AsyncClient] starts each fetch on its own goroutine and returns an
// [github.com/adamwoolhether/mineatar/client/async.Result]:
//
//	ac, err := client.BuildAsync(client.WithConcurrency(4))
//	defer ac.Close()
//
//	head := ac.Head(ctx, uuid)
//	body := ac.FullBody(ctx, uuid)
//	// ... do other work ...
//	img, err := head.Bytes()
//	err = ac.Wait() // blocks until all fetches finish
package client
