// Package mineatar fetches Minecraft player renders from the Mineatar API.
//
// It is a thin front door over [client]: [New] and [NewAsync] build the
// blocking and non-blocking clients, and [Run] and [RunAsync] scope one
// to a function so it is always closed.
//
//	err := mineatar.Run(ctx, func(ctx context.Context, c *client.Client) error {
//		head, err := c.Head(ctx, uuid, mineatar.WithScale(8))
//		...
//	})
package mineatar

import (
	"context"
	"errors"
	"fmt"

	"github.com/adamwoolhether/mineatar/client"
)

// New instantiates a new *client.Client with the provided options.
// If not specified, it talks to the public API over its own
// connection pool with no timeout.
func New(opts ...client.Option) (*client.Client, error) {
	return client.Build(opts...)
}

// NewAsync instantiates a new *client.AsyncClient with the provided options.
func NewAsync(opts ...client.Option) (*client.AsyncClient, error) {
	return client.BuildAsync(opts...)
}

// Run builds a client, hands it to fn and closes it once fn returns,
// panics included. An error from Close is joined with fn's.
func Run(ctx context.Context, fn func(context.Context, *client.Client) error, opts ...client.Option) (err error) {
	c, err := client.Build(opts...)
	if err != nil {
		return fmt.Errorf("building client: %w", err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing client: %w", cerr))
		}
	}()

	return fn(ctx, c)
}

// RunAsync is [Run] for an [client.AsyncClient]. Renders still in flight
// when fn returns are waited for before the client closes.
func RunAsync(ctx context.Context, fn func(context.Context, *client.AsyncClient) error, opts ...client.Option) (err error) {
	c, err := client.BuildAsync(opts...)
	if err != nil {
		return fmt.Errorf("building async client: %w", err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing async client: %w", cerr))
		}
	}()

	return fn(ctx, c)
}
