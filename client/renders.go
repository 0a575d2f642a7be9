package client

import (
	"context"

	"github.com/adamwoolhether/mineatar/render"
)

// Skin returns the player's raw skin texture. Skins take no render options.
func (c *Client) Skin(ctx context.Context, playerUUID string) ([]byte, error) {
	return c.Fetch(ctx, render.Skin, playerUUID)
}

// Head returns a 3D render of the player's head.
func (c *Client) Head(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.Head, playerUUID, opts...)
}

// Face returns a flat render of the front of the player's head.
func (c *Client) Face(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.Face, playerUUID, opts...)
}

// FullBody returns a 3D render of the whole player.
func (c *Client) FullBody(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.BodyFull, playerUUID, opts...)
}

// FrontBody returns a flat render of the front of the player.
func (c *Client) FrontBody(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.BodyFront, playerUUID, opts...)
}

// BackBody returns a flat render of the back of the player.
func (c *Client) BackBody(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.BodyBack, playerUUID, opts...)
}

// LeftBody returns a flat render of the player's left side.
func (c *Client) LeftBody(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.BodyLeft, playerUUID, opts...)
}

// RightBody returns a flat render of the player's right side.
func (c *Client) RightBody(ctx context.Context, playerUUID string, opts ...render.Option) ([]byte, error) {
	return c.Fetch(ctx, render.BodyRight, playerUUID, opts...)
}
