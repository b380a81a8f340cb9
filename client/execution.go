package client

import "context"

// Execution is the in-flight representation of one call through a Handler.
// It resolves to a Response or an error exactly once. Cancelling an
// Execution releases the underlying transport call without affecting the
// Handler's ability to accept further requests.
type Execution struct {
	cancel context.CancelFunc
	done   chan struct{}
	resp   *Response
	err    error
}

// Start begins an asynchronous call through h. The returned Execution owns
// a derived context that also bounds reads of the response body; Cancel
// aborts the transport exchange if the concrete client supports
// cancellation. Callers that abandon an Execution before consuming the
// response should Cancel it so the derived context is released.
func Start(ctx context.Context, h Handler, req *Request) *Execution {
	ctx, cancel := context.WithCancel(ctx)
	e := &Execution{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(e.done)
		e.resp, e.err = h.Execute(ctx, req)
	}()
	return e
}

// Call starts an asynchronous execution through the service. Equivalent to
// Start(ctx, s, req).
func (s *Service) Call(ctx context.Context, req *Request) *Execution {
	return Start(ctx, s, req)
}

// Wait blocks until the execution resolves and returns its result. Wait
// may be called any number of times; every call returns the same result.
func (e *Execution) Wait() (*Response, error) {
	<-e.done
	return e.resp, e.err
}

// Done returns a channel closed when the execution has resolved.
func (e *Execution) Done() <-chan struct{} {
	return e.done
}

// Cancel aborts the in-flight exchange. The execution still resolves,
// with an error when cancellation won the race, so resources owned by a
// partially-read response are always released through the usual path.
func (e *Execution) Cancel() {
	e.cancel()
}
