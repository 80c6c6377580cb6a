package app

import (
	"errors"
	"net/http"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// Typed errors for the Recurly app layer. Transport level failures come from
// the gateway package (ErrAPI, ErrTransport, ErrDecode, ErrMissingAPIKey) and
// are passed through unchanged.
var (
	// ErrValidation indicates a request payload or query failed its declared shape.
	// No HTTP request is sent when this is returned.
	ErrValidation = errors.New("validation error")
)

// IsNotFound reports whether err is a 404 from the vendor API.
func IsNotFound(err error) bool { return gw.StatusCode(err) == http.StatusNotFound }
