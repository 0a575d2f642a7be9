// Package render maps a render kind, a player UUID and render options onto
// the URL served by the Mineatar API.
//
// # Building a URL
//
// Resolve options with [NewOptions], then call [URL]:
//
//	opts, err := render.NewOptions(render.WithScale(8), render.WithOverlay(false))
//	u := render.URL(base, render.Head, "069a79f4-44e9-4726-a5be-fca90e38aaf5", opts)
//	// https://api.mineatar.io/head/069a79f4-44e9-4726-a5be-fca90e38aaf5?scale=8&overlay=false
//
// [Skin] URLs never carry a query string; every other kind carries
// scale and overlay in that order.
//
// URL building is pure and performs no I/O. The UUID is inserted into the
// path as given and is never validated locally; the remote service decides
// whether it names a player.
package render
