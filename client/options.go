package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/mineatar/client/throttle"
)

// Option is a functional option for configuring a [Client] via [Build]
// or an [AsyncClient] via [BuildAsync].
type Option func(*options) error
type options struct {
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	userAgent         string
	throttle          *throttle.Config
	noFollowRedirects bool
	logger            *slog.Logger
	baseURL           *url.URL
	tracer            trace.Tracer
	concurrency       int
}

// WithClient hands the [Client] a pre-existing [http.Client] to use as its
// session. The value is copied; the caller's client is never modified, but
// its transport's idle connections are released by [Client.Close].
func WithClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
// No timeout is applied unless this option is given.
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(c *options) error {
		c.userAgent = header
		return nil
	}
}

// WithThrottle paces outgoing requests with a token bucket of the given
// requests per second and burst capacity. It only spaces requests out;
// a 429 from the API is still returned as [ErrRateLimited].
func WithThrottle(rps, burst int) Option {
	return func(c *options) error {
		cfg := throttle.Config{RPS: rps, Burst: burst}
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.throttle = &cfg
		return nil
	}
}

// WithNoFollowRedirects prevents the [Client] from following HTTP redirects.
// A redirect status is then classified like any other non-2xx status.
func WithNoFollowRedirects() Option {
	return func(c *options) error {
		c.noFollowRedirects = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		c.logger = logger
		return nil
	}
}

// WithBaseURL points the [Client] somewhere other than
// [github.com/adamwoolhether/mineatar/render.BaseURL], such as a
// test server or a caching proxy.
func WithBaseURL(raw string) Option {
	return func(c *options) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base url scheme %q must be http or https", u.Scheme)
		}
		if u.Host == "" {
			return errors.New("base url must have a host")
		}
		c.baseURL = u
		return nil
	}
}

// WithTracer records a span per render fetch. Without it the client
// uses a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		c.tracer = tracer
		return nil
	}
}

// WithConcurrency caps how many renders an [AsyncClient] runs at once.
// If n <= 0, concurrency is unlimited. A blocking [Client] ignores it.
func WithConcurrency(n int) Option {
	return func(c *options) error {
		c.concurrency = n
		return nil
	}
}
