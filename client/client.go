package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/mineatar/client/throttle"
	"github.com/adamwoolhether/mineatar/render"
)

// Client wraps one *http.Client session that is reused by every fetch
// until [Client.Close] releases it. A Client is safe for concurrent use.
type Client struct {
	c       *http.Client
	session http.RoundTripper
	base    *url.URL
	logger  *slog.Logger
	tracer  trace.Tracer
	closed  atomic.Bool

	concurrency int
}

// Build creates a [Client] configured by optFns. Without options it talks
// to [render.BaseURL] over a connection pool of its own.
func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	client := &Client{
		c:           &http.Client{},
		logger:      slog.Default(),
		tracer:      noop.NewTracerProvider().Tracer(tracerScope),
		concurrency: opts.concurrency,
	}

	if opts.client != nil {
		cpy := *opts.client
		client.c = &cpy
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	if opts.baseURL != nil {
		client.base = opts.baseURL
	} else {
		base, err := url.Parse(render.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing default base url: %w", err)
		}
		client.base = base
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = cloneDefaultTransport()
	}
	client.session = transport

	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(*opts.throttle, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Fetch requests the kind render of the player identified by playerUUID and
// returns the image bytes exactly as the API sent them. Every named
// render method is a thin wrapper around Fetch.
//
// Failures are never accompanied by bytes. A non-2xx status comes back
// as an [*APIError]; transport failures (DNS, refused connections,
// timeouts, cancelled contexts) are wrapped but otherwise untouched.
func (c *Client) Fetch(ctx context.Context, kind render.Kind, playerUUID string, optFns ...render.Option) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	u, err := c.URL(kind, playerUUID, optFns...)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "mineatar.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("mineatar.render.kind", kind.String()),
			attribute.String("mineatar.player.uuid", playerUUID),
			attribute.String("url.full", u.String()),
		),
	)
	defer span.End()

	b, err := c.exec(ctx, kind, u)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("mineatar.render.bytes", len(b)))

	return b, nil
}

// URL returns the address Fetch would request for the same arguments.
func (c *Client) URL(kind render.Kind, playerUUID string, optFns ...render.Option) (*url.URL, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	opts, err := render.NewOptions(optFns...)
	if err != nil {
		return nil, err
	}

	return render.URL(c.base, kind, playerUUID, opts), nil
}

// Close releases the session's pooled connections. Fetches issued after
// Close fail with [ErrClientClosed]; fetches already in flight finish
// normally. Close is idempotent.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if ic, ok := c.session.(idleCloser); ok {
		ic.CloseIdleConnections()
	}

	c.logger.Debug("mineatar client closed", "base_url", c.base.String())

	return nil
}

// exec runs the GET for u and classifies the response. The body is
// always drained and closed so the connection can be reused.
func (c *Client) exec(ctx context.Context, kind render.Kind, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	log := c.logger.With("request_id", requestID(ctx), "kind", kind.String(), "url", u.String())

	resp, err := c.c.Do(req)
	if err != nil {
		log.DebugContext(ctx, "render request failed", "error", err)
		return nil, fmt.Errorf("exec http do: %w", err)
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				log.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", "error", err)
		}
	}()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if err := classify(resp); err != nil {
		log.DebugContext(ctx, "render rejected", "status", resp.StatusCode, "error", err)
		return nil, err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		discardBody = false
		return nil, fmt.Errorf("reading render body: %w", err)
	}

	log.DebugContext(ctx, "render fetched", "status", resp.StatusCode, "bytes", len(b))

	return b, nil
}

// classify maps a response status onto the error taxonomy. It returns
// nil for 2xx. 429 and 400 take priority over the generic case.
func classify(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
	if err != nil {
		b = []byte("unable to read body")
	}

	sentinel, ok := statusErrs[resp.StatusCode]
	if !ok {
		sentinel = ErrUnexpectedStatusCode
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(b),
		Err:        sentinel,
	}
}

// requestID correlates log records with the active trace when there is
// one, and with a fresh random ID otherwise.
func requestID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.TraceID().IsValid() {
		return sc.TraceID().String()
	}
	return uuid.NewString()
}
