package client_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/adamwoolhether/mineatar/client"
	"github.com/adamwoolhether/mineatar/render"
)

// exampleServer stands in for api.mineatar.io, echoing the request URI
// as the render body.
func exampleServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/head/busy":
			http.Error(w, "slow down", http.StatusTooManyRequests)
		case "/head/bogus":
			http.Error(w, "Invalid UUID", http.StatusBadRequest)
		case "/head/broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			fmt.Fprint(w, r.URL.RequestURI())
		}
	}))
}

func ExampleBuild() {
	c, err := client.Build(
		client.WithTimeout(10*time.Second),
		client.WithUserAgent("example/1.0"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	fmt.Println("client built")
	// Output: client built
}

func ExampleClient_Head() {
	ts := exampleServer()
	defer ts.Close()

	c, _ := client.Build(client.WithBaseURL(ts.URL))
	defer c.Close()

	b, err := c.Head(context.Background(), "069a79f4-44e9-4726-a5be-fca90e38aaf5", render.WithScale(8))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(string(b))
	// Output: /head/069a79f4-44e9-4726-a5be-fca90e38aaf5?scale=8&overlay=true
}

func ExampleClient_Skin() {
	ts := exampleServer()
	defer ts.Close()

	c, _ := client.Build(client.WithBaseURL(ts.URL))
	defer c.Close()

	b, _ := c.Skin(context.Background(), "069a79f4-44e9-4726-a5be-fca90e38aaf5")

	fmt.Println(string(b))
	// Output: /skin/069a79f4-44e9-4726-a5be-fca90e38aaf5
}

func ExampleClient_Fetch() {
	ts := exampleServer()
	defer ts.Close()

	c, _ := client.Build(client.WithBaseURL(ts.URL))
	defer c.Close()

	for _, kind := range []render.Kind{render.Face, render.BodyLeft} {
		b, err := c.Fetch(context.Background(), kind, "069a79f4-44e9-4726-a5be-fca90e38aaf5", render.WithOverlay(false))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(string(b))
	}
	// Output:
	// /face/069a79f4-44e9-4726-a5be-fca90e38aaf5?scale=4&overlay=false
	// /body/left/069a79f4-44e9-4726-a5be-fca90e38aaf5?scale=4&overlay=false
}

func ExampleClient_URL() {
	c, _ := client.Build()
	defer c.Close()

	u, _ := c.URL(render.BodyFull, "069a79f4-44e9-4726-a5be-fca90e38aaf5")

	fmt.Println(u)
	// Output: https://api.mineatar.io/body/full/069a79f4-44e9-4726-a5be-fca90e38aaf5?scale=4&overlay=true
}

func ExampleClient_Close() {
	c, _ := client.Build()
	c.Close()

	_, err := c.Face(context.Background(), "069a79f4-44e9-4726-a5be-fca90e38aaf5")

	fmt.Println(errors.Is(err, client.ErrClientClosed))
	// Output: true
}

func ExampleAPIError() {
	ts := exampleServer()
	defer ts.Close()

	c, _ := client.Build(client.WithBaseURL(ts.URL))
	defer c.Close()

	for _, id := range []string{"busy", "bogus", "broken"} {
		_, err := c.Head(context.Background(), id)

		var apiErr *client.APIError
		errors.As(err, &apiErr)

		switch {
		case errors.Is(err, client.ErrRateLimited):
			fmt.Println("rate limited:", apiErr.StatusCode)
		case errors.Is(err, client.ErrInvalidUUID):
			fmt.Println("invalid uuid:", apiErr.StatusCode)
		case errors.Is(err, client.ErrUnexpectedStatusCode):
			fmt.Println("unexpected:", apiErr.StatusCode)
		}
	}
	// Output:
	// rate limited: 429
	// invalid uuid: 400
	// unexpected: 500
}

func ExampleAsyncClient() {
	ts := exampleServer()
	defer ts.Close()

	ac, _ := client.BuildAsync(client.WithBaseURL(ts.URL), client.WithConcurrency(2))
	defer ac.Close()

	ctx := context.Background()
	head := ac.Head(ctx, "069a79f4-44e9-4726-a5be-fca90e38aaf5")
	skin := ac.Skin(ctx, "069a79f4-44e9-4726-a5be-fca90e38aaf5")

	if err := ac.Wait(); err != nil {
		fmt.Println("error:", err)
		return
	}

	h, _ := head.Bytes()
	s, _ := skin.Bytes()
	fmt.Println(string(h))
	fmt.Println(string(s))
	// Output:
	// /head/069a79f4-44e9-4726-a5be-fca90e38aaf5?scale=4&overlay=true
	// /skin/069a79f4-44e9-4726-a5be-fca90e38aaf5
}

func ExampleWithClient() {
	hc := &http.Client{Timeout: 5 * time.Second}

	c, err := client.Build(client.WithClient(hc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	fmt.Println("ok")
	// Output: ok
}

func ExampleWithUserAgent() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, r.Header.Get("User-Agent"))
	}))
	defer ts.Close()

	c, _ := client.Build(client.WithBaseURL(ts.URL), client.WithUserAgent("myapp/1.0"))
	defer c.Close()

	b, _ := c.Skin(context.Background(), "069a79f4-44e9-4726-a5be-fca90e38aaf5")

	fmt.Println(string(b))
	// Output: myapp/1.0
}

func ExampleWithThrottle() {
	c, err := client.Build(client.WithThrottle(10, 5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	fmt.Println("ok")
	// Output: ok
}

func ExampleWithLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	c, err := client.Build(client.WithLogger(logger))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer c.Close()

	fmt.Println("ok")
	// Output: ok
}
