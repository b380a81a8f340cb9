package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kbukum/httpcall/body"
)

// restrictedHeaders are owned by the transport layer of the concrete
// client; net/http would silently ignore or rewrite them, so translation
// rejects them instead.
var restrictedHeaders = map[string]bool{
	"Connection":        true,
	"Keep-Alive":        true,
	"Proxy-Connection":  true,
	"Transfer-Encoding": true,
	"Upgrade":           true,
	"Trailer":           true,
}

// toNative translates a generic Request into the transport client's native
// *http.Request. Headers are copied preserving multi-value semantics; the
// body is wrapped so the transport streams from it lazily. Translation is
// all-or-nothing: a single rejected header fails the whole request and no
// network call is made.
func toNative(ctx context.Context, req *Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("parse url %q: %v", req.URL, err))
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, NewRequestError(fmt.Sprintf("url %q is not absolute", req.URL))
	}

	nr, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, NewRequestError(err.Error())
	}
	if req.Body != nil {
		// Wrap the body so the transport streams from it lazily instead of
		// requiring eager buffering.
		nr.Body = body.AsReader(ctx, req.Body)
		if size, exact := req.Body.SizeHint(); exact {
			nr.ContentLength = size
		} else {
			nr.ContentLength = -1
		}
	}

	for key, values := range req.Header {
		canonical := http.CanonicalHeaderKey(key)
		if restrictedHeaders[canonical] {
			return nil, NewHeaderError(canonical, "header is reserved by the transport")
		}
		switch canonical {
		case "Host":
			// net/http carries the Host header on the request itself.
			if len(values) > 1 {
				return nil, NewHeaderError(canonical, "multiple Host values")
			}
			nr.Host = values[0]
		case "Te":
			for _, v := range values {
				if !strings.EqualFold(strings.TrimSpace(v), "trailers") {
					return nil, NewHeaderError("TE", "only the \"trailers\" value is supported by the transport")
				}
			}
			nr.Header["Te"] = append([]string(nil), values...)
		case "Content-Length":
			// net/http derives the wire value from ContentLength; keep the
			// caller's declaration rather than dropping it.
			if len(values) > 1 {
				return nil, NewHeaderError(canonical, "multiple Content-Length values")
			}
			n, perr := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
			if perr != nil || n < 0 {
				return nil, NewHeaderError(canonical, fmt.Sprintf("invalid value %q", values[0]))
			}
			nr.ContentLength = n
		default:
			nr.Header[canonical] = append([]string(nil), values...)
		}
	}

	return nr, nil
}

// fromNative wraps a native *http.Response in the generic Response type.
// Status and headers pass through unchanged; the native body stream is
// wrapped behind the body.Body abstraction with a size hint taken from
// Content-Length when the transport reported one.
func fromNative(resp *http.Response) *Response {
	var b body.Body
	if resp.ContentLength >= 0 {
		b = body.FromReaderSize(resp.Body, resp.ContentLength)
	} else {
		b = body.FromReader(resp.Body)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
	}
}
