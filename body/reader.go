package body

import (
	"context"
	"io"
)

// Reader materializes a Body into typed values under a byte limit.
//
// Each Reader consumes its Body exactly once; calling more than one of its
// methods reads an already-exhausted stream. The limit argument caps how
// many payload bytes are held in memory: the Reader never accumulates more
// than limit + one chunk before failing with a *SizeError. A limit <= 0
// disables the guard.
type Reader struct {
	body Body
}

// NewReader creates a reader that materializes b.
func NewReader(b Body) *Reader {
	return &Reader{body: b}
}

// Bytes reads the full payload into one contiguous buffer.
//
// If the Body declares a size hint larger than limit, Bytes fails before
// reading anything. If the stream overflows limit mid-read, the Body is
// closed and a *SizeError is returned; the partial data is discarded.
// Errors from the underlying stream propagate unchanged.
func (r *Reader) Bytes(ctx context.Context, limit int64) ([]byte, error) {
	if limit > 0 {
		if size, exact := r.body.SizeHint(); exact && size > limit {
			_ = r.body.Close()
			return nil, &SizeError{Limit: limit, Declared: size}
		}
	}

	var buf []byte
	if size, exact := r.body.SizeHint(); exact && size > 0 {
		buf = make([]byte, 0, size)
	}

	for {
		chunk, err := r.body.Next(ctx)
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			_ = r.body.Close()
			return nil, err
		}
		if limit > 0 && int64(len(buf))+int64(len(chunk)) > limit {
			_ = r.body.Close()
			return nil, &SizeError{Limit: limit, Declared: -1}
		}
		buf = append(buf, chunk...)
	}
}

// Text reads the full payload and decodes it as UTF-8 text.
func (r *Reader) Text(ctx context.Context, limit int64) (string, error) {
	buf, err := r.Bytes(ctx, limit)
	if err != nil {
		return "", err
	}
	return DecodeText(buf)
}

// JSON reads the full payload and unmarshals it into v.
func (r *Reader) JSON(ctx context.Context, limit int64, v any) error {
	buf, err := r.Bytes(ctx, limit)
	if err != nil {
		return err
	}
	return DecodeJSON(buf, v)
}

// Form reads the full payload and decodes it as URL-encoded form data.
func (r *Reader) Form(ctx context.Context, limit int64) (FormData, error) {
	buf, err := r.Bytes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return DecodeForm(buf)
}
