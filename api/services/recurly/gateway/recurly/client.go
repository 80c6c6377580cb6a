package recurlygw

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/tbeaudouin05/recurly-trellai/api/metrics"
	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

const (
	DefaultBaseURL        = "https://v3.recurly.com"
	DefaultAcceptLanguage = "en-US"
	DefaultTimeout        = 30 * time.Second

	// AcceptHeader pins the API version.
	AcceptHeader = "application/vnd.recurly.v2021-02-25"
)

// Options configures the HTTP gateway. Zero values fall back to the defaults.
type Options struct {
	APIKey         string
	BaseURL        string
	AcceptLanguage string
	Timeout        time.Duration
	// HTTPClient replaces the default otelhttp-instrumented client when set.
	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

// client is the net/http implementation of the gateway.
type client struct {
	apiKey         string
	baseURL        string
	acceptLanguage string
	http           *http.Client
	log            *zap.Logger
	metrics        *metrics.Metrics
}

// New returns a Gateway that talks to the Recurly v3 REST API.
func New(opts Options) gw.Gateway {
	c := &client{
		apiKey:         opts.APIKey,
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		acceptLanguage: opts.AcceptLanguage,
		http:           opts.HTTPClient,
		log:            opts.Logger,
		metrics:        opts.Metrics,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.http = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.Named("recurly")
	return c
}

// Headers returns the headers sent on every call.
func Headers(apiKey, acceptLanguage string) (http.Header, error) {
	if apiKey == "" {
		return nil, gw.ErrMissingAPIKey
	}
	if acceptLanguage == "" {
		acceptLanguage = DefaultAcceptLanguage
	}
	h := http.Header{}
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(apiKey+":")))
	h.Set("Accept", AcceptHeader)
	h.Set("Content-Type", "application/json")
	h.Set("Accept-Language", acceptLanguage)
	return h, nil
}

func (c *client) Do(ctx context.Context, req gw.Request, out any) error {
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = c.apiKey
	}
	headers, err := Headers(apiKey, c.acceptLanguage)
	if err != nil {
		return err
	}

	query, err := gw.BuildQueryString(req.Query)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Op, err)
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("%s: encoding request body: %w", req.Op, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+gw.AppendQuery(req.Path, query), body)
	if err != nil {
		return fmt.Errorf("%s: building request: %w", req.Op, err)
	}
	httpReq.Header = headers
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	log := c.log.With(zap.String("op", req.Op), zap.String("request_id", requestID))
	log.Debug("sending request", zap.String("method", req.Method), zap.String("path", req.Path))

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.ObserveRequest(req.Op, req.Method, 0, time.Since(start))
		log.Error("request failed", zap.Error(err))
		return fmt.Errorf("%w: %s: %v", gw.ErrTransport, req.Op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(req.Op, req.Method, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("%w: %s: reading response: %v", gw.ErrTransport, req.Op, err)
	}

	if err := checkResponse(log, req.Op, resp.StatusCode, data); err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", gw.ErrDecode, req.Op, err)
	}
	return nil
}

// checkResponse logs and returns an *APIError for any non-2xx status.
func checkResponse(log *zap.Logger, op string, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	log.Error(fmt.Sprintf("%s failed: %d - %s", op, status, body), zap.Int("status", status))
	return gw.NewAPIError(op, status, body)
}
