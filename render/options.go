package render

import (
	"errors"
	"fmt"
)

// DefaultScale is the scale used when none is given.
const DefaultScale = 4

// ErrInvalidOptions is wrapped by every error returned from [NewOptions].
var ErrInvalidOptions = errors.New("invalid render options")

// Options tunes a scalable render. Skin renders ignore them.
type Options struct {
	Scale   int  `json:"scale" validate:"min=1"`
	Overlay bool `json:"overlay"`
}

// Defaults returns the options the API is queried with when the
// caller supplies none: scale 4 with the overlay layer on.
func Defaults() Options {
	return Options{
		Scale:   DefaultScale,
		Overlay: true,
	}
}

// Option is a functional option applied on top of [Defaults].
type Option func(*Options) error

// WithScale sets the render scale. It must be at least 1.
func WithScale(scale int) Option {
	return func(opts *Options) error {
		opts.Scale = scale
		return nil
	}
}

// WithOverlay toggles the second skin layer (hat, jacket, sleeves).
func WithOverlay(overlay bool) Option {
	return func(opts *Options) error {
		opts.Overlay = overlay
		return nil
	}
}

// NewOptions applies optFns over [Defaults] and validates the result.
func NewOptions(optFns ...Option) (Options, error) {
	opts := Defaults()
	for _, opt := range optFns {
		if opt == nil {
			continue
		}
		if err := opt(&opts); err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}

	if err := Validate(opts); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return opts, nil
}
