package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any I/O when neither a per-call nor a
	// configured API key is available.
	ErrMissingAPIKey = errors.New("RECURLY_API_KEY is required")
	// ErrAPI matches every *APIError.
	ErrAPI = errors.New("recurly api error")
	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = errors.New("transport error")
	// ErrDecode indicates a 2xx response whose body could not be decoded.
	ErrDecode = errors.New("decode error")
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
	// Detail is the parsed vendor error envelope; nil when the body is not one.
	Detail *ErrorDetail
}

func (e *APIError) Error() string { return fmt.Sprintf("%s failed: %d", e.Op, e.StatusCode) }

func (e *APIError) Is(target error) bool { return target == ErrAPI }

type ErrorDetail struct {
	Type             string            `json:"type"`
	Message          string            `json:"message"`
	Params           []ErrorParam      `json:"params,omitempty"`
	TransactionError *TransactionError `json:"transaction_error,omitempty"`
}

type ErrorParam struct {
	Param   string `json:"param"`
	Message string `json:"message"`
}

type TransactionError struct {
	Object                    string `json:"object"`
	TransactionID             string `json:"transaction_id"`
	Category                  string `json:"category"`
	Code                      string `json:"code"`
	Message                   string `json:"message"`
	MerchantAdvice            string `json:"merchant_advice"`
	CustomerMessage           string `json:"customer_message"`
	GatewayErrorCode          string `json:"gateway_error_code"`
	ThreeDSecureActionTokenID string `json:"three_d_secure_action_token_id"`
}

// NewAPIError builds an APIError and parses the error envelope out of body
// when possible.
func NewAPIError(op string, status int, body []byte) *APIError {
	e := &APIError{Op: op, StatusCode: status, Body: string(body)}
	var env struct {
		Error *ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		e.Detail = env.Error
	}
	return e
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
