package middleware

import "encoding/base64"

// WithBearerAuth returns a Middleware that sets the Authorization header
// to "Bearer {token}" on every request. Commonly used for OAuth 2.
func WithBearerAuth(token string) Middleware {
	return WithHeader("Authorization", "Bearer "+token, HeaderOverride)
}

// WithBasicAuth returns a Middleware that sets the Authorization header to
// "Basic {credentials}" where credentials is base64("{username}:{password}").
// Credentials travel in clear text; pair this with TLS.
func WithBasicAuth(username, password string) Middleware {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return WithHeader("Authorization", "Basic "+encoded, HeaderOverride)
}

// WithAPIKeyAuth returns a Middleware that sends an API key in the given
// header on every request.
func WithAPIKeyAuth(header, key string) Middleware {
	if header == "" {
		header = "X-API-Key"
	}
	return WithHeader(header, key, HeaderOverride)
}
