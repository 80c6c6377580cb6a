package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// codePrefix lets most endpoints take a resource code in place of its id.
const codePrefix = "code-"

// AccountCode returns the identifier form for an account code.
func AccountCode(code string) string { return codePrefix + code }

// PlanCode returns the identifier form for a plan code.
func PlanCode(code string) string { return codePrefix + code }

// AddOnCode returns the identifier form for an add-on code.
func AddOnCode(code string) string { return codePrefix + code }

// ItemCode returns the identifier form for an item code.
func ItemCode(code string) string { return codePrefix + code }

// CouponCode returns the identifier form for a coupon code.
func CouponCode(code string) string { return codePrefix + code }

// MeasuredUnitName returns the identifier form for a measured unit name.
func MeasuredUnitName(name string) string { return "name-" + name }

// UUIDRef returns the identifier form for a subscription or unique code UUID.
func UUIDRef(uuid string) string { return "uuid-" + uuid }

// resourcePath fills format with the path-escaped ids. Empty ids fail
// validation so a request never targets the collection by accident.
func resourcePath(op, format string, ids ...string) (string, error) {
	args := make([]any, len(ids))
	for i, id := range ids {
		if id == "" {
			return "", fmt.Errorf("%w: %s: missing resource id", ErrValidation, op)
		}
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...), nil
}

// base carries what every resource service needs.
type base struct {
	gw  gw.Gateway
	log *zap.Logger
}

func newBase(g gw.Gateway, log *zap.Logger) base {
	if log == nil {
		log = zap.NewNop()
	}
	return base{gw: g, log: log}
}

// call validates query and body, then runs one request and decodes into a T.
func call[T any](ctx context.Context, b base, method, op, path string, query, body any, opts []gw.CallOption) (T, error) {
	var out T
	if err := Validate(op, query); err != nil {
		return out, err
	}
	if err := Validate(op, body); err != nil {
		return out, err
	}
	req := gw.Request{Op: op, Method: method, Path: path, Query: query, Body: body}.Apply(opts...)
	if err := b.gw.Do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// callNoContent is call for endpoints whose response body is ignored.
func callNoContent(ctx context.Context, b base, method, op, path string, opts []gw.CallOption) error {
	req := gw.Request{Op: op, Method: method, Path: path}.Apply(opts...)
	return b.gw.Do(ctx, req, nil)
}

func get[T any](ctx context.Context, b base, op, path string, query any, opts []gw.CallOption) (T, error) {
	return call[T](ctx, b, http.MethodGet, op, path, query, nil, opts)
}

// emptyBody is sent where the API expects a JSON object but the caller has
// nothing to set.
var emptyBody = struct{}{}
