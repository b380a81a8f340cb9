// Package client provides a generic, middleware-composable HTTP call
// contract over a concrete transport client.
//
// The Handler interface is the uniform contract: anything that accepts a
// Request and produces a Response can wrap or be wrapped by anything else
// that speaks it. Service is the terminal Handler: it translates the
// generic Request into the transport client's native request, performs the
// exchange, and wraps the native response body behind the streaming
// body.Body abstraction.
//
// # Basic usage
//
//	svc, _ := client.New(client.Config{Name: "api"})
//	resp, err := svc.Execute(ctx, &client.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.example.com/users/123",
//	})
//	var user User
//	err = resp.Reader().JSON(ctx, 1<<20, &user)
//
// # Builder
//
//	resp, err := client.Get("https://api.example.com/users/123").
//	    Header("Accept", "application/json").
//	    Send(ctx, svc)
//
// The Service performs no retries, emits no logs, and holds no
// request-scoped state; cross-cutting behavior belongs in middleware
// layered over the Handler contract.
package client
