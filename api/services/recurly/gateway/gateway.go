package gateway

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/gateway_mock.go -package=mock_gateway . Gateway

// Gateway abstracts the HTTP round trip to the Recurly v3 API.
// Implementations build headers and the query string, send the request,
// check the status and decode the JSON body into out (when out is non-nil).
type Gateway interface {
	Do(ctx context.Context, req Request, out any) error
}

// Request describes one call against the vendor API.
type Request struct {
	// Op is the human label used in logs and errors, e.g. "List Accounts".
	Op     string
	Method string
	// Path is relative to the base URL and already escaped. It may carry a
	// query string of its own (pagination "next" links do).
	Path  string
	Query any
	Body  any

	APIKey         string
	IdempotencyKey string
	Header         map[string]string
}

// CallOption adjusts a single Request.
type CallOption func(*Request)

// WithAPIKey overrides the configured API key for one call.
func WithAPIKey(key string) CallOption {
	return func(r *Request) { r.APIKey = key }
}

// WithIdempotencyKey sets the Idempotency-Key header.
func WithIdempotencyKey(key string) CallOption {
	return func(r *Request) { r.IdempotencyKey = key }
}

// WithHeader sets an extra request header.
func WithHeader(name, value string) CallOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = map[string]string{}
		}
		r.Header[name] = value
	}
}

// Apply runs opts against r and returns it.
func (r Request) Apply(opts ...CallOption) Request {
	for _, o := range opts {
		if o != nil {
			o(&r)
		}
	}
	return r
}

// NewIdempotencyKey returns a fresh random key suitable for Idempotency-Key.
func NewIdempotencyKey() string { return uuid.NewString() }
