package body

import (
	"context"
	"io"
)

// defaultChunkSize is the read size used when pulling from an io.Reader.
const defaultChunkSize = 32 * 1024

// Body is a single-pass, pull-based byte stream.
//
// Next returns the next chunk of the payload, or io.EOF when the stream is
// exhausted. The returned slice is only valid until the following call to
// Next or Close; callers that retain chunk data must copy it. A Body is
// consumed at most once and chunks arrive in transport order.
//
// Close releases the underlying stream. Closing before EOF discards any
// unread data without reading it.
type Body interface {
	// Next returns the next chunk, io.EOF at end of stream, or an error
	// from the underlying transport.
	Next(ctx context.Context) ([]byte, error)

	// SizeHint reports the total payload size when known exactly.
	SizeHint() (size int64, exact bool)

	// Close releases the underlying stream.
	Close() error
}

// Empty returns a Body with no content and an exact size hint of zero.
func Empty() Body {
	return &bytesBody{}
}

// Bytes returns a Body over the given byte slice. The slice is not copied;
// the caller must not modify it while the Body is in use.
func Bytes(data []byte) Body {
	return &bytesBody{data: data}
}

// String returns a Body over the given string.
func String(s string) Body {
	return &bytesBody{data: []byte(s)}
}

type bytesBody struct {
	data []byte
	done bool
}

func (b *bytesBody) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.done || len(b.data) == 0 {
		return nil, io.EOF
	}
	chunk := b.data
	b.data = nil
	b.done = true
	return chunk, nil
}

func (b *bytesBody) SizeHint() (int64, bool) {
	if b.done {
		return 0, true
	}
	return int64(len(b.data)), true
}

func (b *bytesBody) Close() error {
	b.data = nil
	b.done = true
	return nil
}

// FromReader returns a Body that pulls chunks from r. The size hint is
// unknown. If r implements io.Closer, Close is forwarded to it.
func FromReader(r io.Reader) Body {
	return &readerBody{r: r, size: -1}
}

// FromReaderSize returns a Body that pulls chunks from r and reports size
// as an exact size hint. A negative size means unknown.
func FromReaderSize(r io.Reader, size int64) Body {
	return &readerBody{r: r, size: size}
}

type readerBody struct {
	r      io.Reader
	size   int64 // -1 when unknown
	buf    []byte
	closed bool
}

func (b *readerBody) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.closed {
		return nil, io.EOF
	}
	if b.buf == nil {
		b.buf = make([]byte, defaultChunkSize)
	}
	for {
		n, err := b.r.Read(b.buf)
		if n > 0 {
			return b.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
		// Zero-byte read without error: retry, honoring cancellation.
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
	}
}

func (b *readerBody) SizeHint() (int64, bool) {
	if b.size < 0 {
		return 0, false
	}
	return b.size, true
}

func (b *readerBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if c, ok := b.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// AsReader adapts a Body to an io.ReadCloser so it can feed interfaces that
// expect a byte stream, such as an outbound transport request body. The
// given context bounds every underlying chunk pull. Closing the returned
// reader closes the Body.
func AsReader(ctx context.Context, b Body) io.ReadCloser {
	return &bodyReader{ctx: ctx, body: b}
}

type bodyReader struct {
	ctx  context.Context
	body Body
	rest []byte
	err  error
}

func (r *bodyReader) Read(p []byte) (int, error) {
	if len(r.rest) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		chunk, err := r.body.Next(r.ctx)
		if err != nil {
			r.err = err
			return 0, err
		}
		r.rest = chunk
	}
	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}

func (r *bodyReader) Close() error {
	return r.body.Close()
}
