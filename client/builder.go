package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kbukum/httpcall/body"
)

// RequestBuilder constructs a Request fluently. Construction errors are
// deferred: the first one is reported by Build or Send.
//
//	resp, err := client.Post("https://api.example.com/users").
//	    Header("Accept", "application/json").
//	    BodyJSON(user).
//	    Send(ctx, svc)
type RequestBuilder struct {
	method string
	url    string
	header http.Header
	query  url.Values
	body   body.Body
	err    error
}

// NewRequest creates a builder for the given method and absolute URL.
func NewRequest(method, rawURL string) *RequestBuilder {
	return &RequestBuilder{
		method: method,
		url:    rawURL,
		header: make(http.Header),
	}
}

// Get creates a GET request builder.
func Get(rawURL string) *RequestBuilder { return NewRequest(http.MethodGet, rawURL) }

// Post creates a POST request builder.
func Post(rawURL string) *RequestBuilder { return NewRequest(http.MethodPost, rawURL) }

// Put creates a PUT request builder.
func Put(rawURL string) *RequestBuilder { return NewRequest(http.MethodPut, rawURL) }

// Patch creates a PATCH request builder.
func Patch(rawURL string) *RequestBuilder { return NewRequest(http.MethodPatch, rawURL) }

// Delete creates a DELETE request builder.
func Delete(rawURL string) *RequestBuilder { return NewRequest(http.MethodDelete, rawURL) }

// Head creates a HEAD request builder.
func Head(rawURL string) *RequestBuilder { return NewRequest(http.MethodHead, rawURL) }

// Header sets a header, replacing any existing values for the key.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.header.Set(key, value)
	return b
}

// AddHeader appends a header value, preserving existing values for the key.
func (b *RequestBuilder) AddHeader(key, value string) *RequestBuilder {
	b.header.Add(key, value)
	return b
}

// Query appends a URL query parameter.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	if b.query == nil {
		b.query = make(url.Values)
	}
	b.query.Add(key, value)
	return b
}

// BodyBytes sets a raw byte payload.
func (b *RequestBuilder) BodyBytes(data []byte) *RequestBuilder {
	b.body = body.Bytes(data)
	return b
}

// BodyText sets a text payload with a text/plain content type unless one
// is already set.
func (b *RequestBuilder) BodyText(s string) *RequestBuilder {
	b.body = body.String(s)
	b.defaultContentType("text/plain; charset=utf-8")
	return b
}

// BodyJSON marshals v as the payload and sets an application/json content
// type unless one is already set.
func (b *RequestBuilder) BodyJSON(v any) *RequestBuilder {
	data, err := json.Marshal(v)
	if err != nil {
		b.setErr(fmt.Errorf("encode json body: %w", err))
		return b
	}
	b.body = body.Bytes(data)
	b.defaultContentType("application/json")
	return b
}

// BodyForm encodes form fields as the payload, preserving field order, and
// sets an application/x-www-form-urlencoded content type unless one is
// already set.
func (b *RequestBuilder) BodyForm(form body.FormData) *RequestBuilder {
	b.body = body.String(form.Encode())
	b.defaultContentType("application/x-www-form-urlencoded")
	return b
}

// BodyStream sets a streaming payload.
func (b *RequestBuilder) BodyStream(payload body.Body) *RequestBuilder {
	b.body = payload
	return b
}

// Build returns the constructed request or the first construction error.
func (b *RequestBuilder) Build() (*Request, error) {
	if b.err != nil {
		return nil, NewRequestError(b.err.Error())
	}
	target := b.url
	if len(b.query) > 0 {
		u, err := url.Parse(b.url)
		if err != nil {
			return nil, NewRequestError(fmt.Sprintf("parse url %q: %v", b.url, err))
		}
		q := u.Query()
		for key, values := range b.query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
		target = u.String()
	}
	return &Request{
		Method: b.method,
		URL:    target,
		Header: b.header,
		Body:   b.body,
	}, nil
}

// Send builds the request and executes it through h.
func (b *RequestBuilder) Send(ctx context.Context, h Handler) (*Response, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return h.Execute(ctx, req)
}

func (b *RequestBuilder) defaultContentType(ct string) {
	if b.header.Get("Content-Type") == "" {
		b.header.Set("Content-Type", ct)
	}
}

func (b *RequestBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}
