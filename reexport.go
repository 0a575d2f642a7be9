package mineatar

import (
	"fmt"

	"github.com/adamwoolhether/mineatar/client"
	"github.com/adamwoolhether/mineatar/render"
)

// ————————————————————————————————————————————————————————————————————
// Type aliases – re-export user-facing types from [client] and [render].
// ————————————————————————————————————————————————————————————————————

type (
	// Kind names one of the renders the API serves.
	Kind = render.Kind

	// RenderOption customises scale and overlay for scalable kinds.
	RenderOption = render.Option

	// APIError carries the status code and body of a non-2xx response.
	APIError = client.APIError
)

// ————————————————————————————————————————————————————————————————————
// Render kinds
// ————————————————————————————————————————————————————————————————————

const (
	Skin      = render.Skin
	Head      = render.Head
	Face      = render.Face
	BodyFull  = render.BodyFull
	BodyFront = render.BodyFront
	BodyBack  = render.BodyBack
	BodyLeft  = render.BodyLeft
	BodyRight = render.BodyRight
)

// ————————————————————————————————————————————————————————————————————
// Sentinel errors
// ————————————————————————————————————————————————————————————————————

var (
	// ErrInvalidUUID indicates the API answered 400.
	ErrInvalidUUID = client.ErrInvalidUUID

	// ErrRateLimited indicates the API answered 429.
	ErrRateLimited = client.ErrRateLimited

	// ErrUnexpectedStatusCode indicates any other non-2xx answer.
	ErrUnexpectedStatusCode = client.ErrUnexpectedStatusCode

	// ErrClientClosed indicates a fetch on a closed client.
	ErrClientClosed = client.ErrClientClosed

	// ErrUnknownKind indicates a kind outside the render table.
	ErrUnknownKind = client.ErrUnknownKind

	// ErrInvalidOptions indicates render options failed validation.
	ErrInvalidOptions = render.ErrInvalidOptions
)

// ————————————————————————————————————————————————————————————————————
// Render option forwarding functions
// ————————————————————————————————————————————————————————————————————

// WithScale sets the render scale. It must be at least 1.
func WithScale(scale int) RenderOption { return render.WithScale(scale) }

// WithOverlay toggles the skin's second layer.
func WithOverlay(overlay bool) RenderOption { return render.WithOverlay(overlay) }

// URL returns the address of a render on the public API.
func URL(kind Kind, uuid string, opts ...RenderOption) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	o, err := render.NewOptions(opts...)
	if err != nil {
		return "", err
	}
	return render.BuildURL(render.BaseURL, kind, uuid, o)
}
