package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// BaseURL is the public Mineatar API endpoint.
const BaseURL = "https://api.mineatar.io"

// URL joins base with the path for kind and uuid. Scalable kinds get
// a "scale=<n>&overlay=<true|false>" query; Skin gets none.
//
// Any path already on base is kept as a prefix. Any query on base is
// replaced. An invalid kind yields base with only the uuid appended,
// so callers should check [Kind.Valid] first.
func URL(base *url.URL, kind Kind, uuid string, opts Options) *url.URL {
	u := *base
	u.RawPath = ""
	u.Fragment = ""
	u.RawFragment = ""

	var path strings.Builder
	path.WriteString(strings.TrimSuffix(base.Path, "/"))
	if seg := kind.Segment(); seg != "" {
		path.WriteByte('/')
		path.WriteString(seg)
	}
	path.WriteByte('/')
	path.WriteString(uuid)
	u.Path = path.String()

	u.RawQuery = ""
	if kind.Scalable() {
		u.RawQuery = "scale=" + strconv.Itoa(opts.Scale) + "&overlay=" + strconv.FormatBool(opts.Overlay)
	}

	return &u
}

// BuildURL is the string form of [URL]. An empty baseURL means
// [BaseURL]; one that does not parse, or lacks a scheme or host, is an
// error rather than a silent switch to the public API.
func BuildURL(baseURL string, kind Kind, uuid string, opts Options) (string, error) {
	if baseURL == "" {
		baseURL = BaseURL
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("base url %q must have a scheme and host", baseURL)
	}

	return URL(base, kind, uuid, opts).String(), nil
}
