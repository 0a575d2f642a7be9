// Package throttle provides an [http.RoundTripper] that paces outbound
// render requests using a token-bucket algorithm from
// [golang.org/x/time/rate].
//
// # Usage
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		throttle.Config{RPS: 10, Burst: 5},
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When the bucket is empty, a request waits for its reserved token or
// until its context ends, whichever comes first. A request that gives up
// hands its token back. Throttling only spaces requests out; it never
// retries one.
package throttle
