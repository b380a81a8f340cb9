// Package body provides a single-pass, pull-based byte stream abstraction
// for HTTP payloads, together with a size-guarded materializer and typed
// decoders (bytes, UTF-8 text, JSON, URL-encoded form data).
//
// A Body is consumed chunk by chunk and at most once. The Reader wrapper
// collects a Body into one contiguous buffer under a caller-supplied byte
// limit, failing fast when the limit would be exceeded, so response bodies
// of unknown size never cause unbounded memory growth.
//
// # Materializing a response body
//
//	r := body.NewReader(resp.Body)
//	buf, err := r.Bytes(ctx, 1<<20) // at most 1 MiB
//
// # Typed decoding
//
//	var v struct{ Name string }
//	err := body.NewReader(resp.Body).JSON(ctx, 1<<20, &v)
//
// Decoders are pure: decoding the same buffer twice yields identical values.
package body
