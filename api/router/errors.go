package router

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// toStatus maps client errors onto gRPC status codes so that
// runtime.HTTPError renders them with the matching HTTP status.
func toStatus(err error) error {
	var apiErr *gw.APIError
	switch {
	case errors.Is(err, app.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, gw.ErrMissingAPIKey):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.As(err, &apiErr):
		return status.Error(codeForHTTP(apiErr.StatusCode), apiMessage(apiErr))
	case errors.Is(err, gw.ErrTransport):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, gw.ErrDecode):
		return status.Error(codes.Internal, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func codeForHTTP(code int) codes.Code {
	switch {
	case code == http.StatusNotFound:
		return codes.NotFound
	case code == http.StatusUnauthorized:
		return codes.Unauthenticated
	case code == http.StatusForbidden:
		return codes.PermissionDenied
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		return codes.InvalidArgument
	case code == http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case code >= 500:
		return codes.Unavailable
	}
	return codes.Unknown
}

func apiMessage(e *gw.APIError) string {
	if e.Detail != nil && e.Detail.Message != "" {
		return e.Error() + ": " + e.Detail.Message
	}
	return e.Error()
}
