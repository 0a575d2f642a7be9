package client

import (
	"net/http"
)

// maxErrBodySize caps the amount of response body read when
// building an error for a non-2xx status. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

// tracerScope names the instrumentation scope of the default tracer.
const tracerScope = "github.com/adamwoolhether/mineatar/client"

// idleCloser is implemented by transports that pool connections,
// *http.Transport included.
type idleCloser interface {
	CloseIdleConnections()
}

// cloneDefaultTransport gives each Client its own connection pool so
// closing one never touches http.DefaultTransport.
func cloneDefaultTransport() http.RoundTripper {
	if t, ok := http.DefaultTransport.(*http.Transport); ok && t != nil {
		return t.Clone()
	}
	return http.DefaultTransport
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}
