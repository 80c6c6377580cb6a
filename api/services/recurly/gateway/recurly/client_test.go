package recurlygw

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tbeaudouin05/recurly-trellai/api/metrics"
	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type captured struct {
	method string
	uri    string
	header http.Header
	body   string
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	c := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		c.method = r.Method
		c.uri = r.URL.RequestURI()
		c.header = r.Header.Clone()
		c.body = string(b)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(ts.Close)
	return ts, c
}

func TestHeaders(t *testing.T) {
	h, err := Headers("secret", "")
	require.NoError(t, err)
	// base64("secret:")
	assert.Equal(t, "Basic c2VjcmV0Og==", h.Get("Authorization"))
	assert.Equal(t, "application/vnd.recurly.v2021-02-25", h.Get("Accept"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "en-US", h.Get("Accept-Language"))

	h, err = Headers("secret", "fr-FR")
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", h.Get("Accept-Language"))

	_, err = Headers("", "en-US")
	assert.ErrorIs(t, err, gw.ErrMissingAPIKey)
	assert.EqualError(t, err, "RECURLY_API_KEY is required")
}

func TestDo_SendsQueryHeadersAndDecodes(t *testing.T) {
	ts, got := newServer(t, http.StatusOK, `{"id":"a1","code":"acme"}`)
	g := New(Options{APIKey: "configured", BaseURL: ts.URL + "/", AcceptLanguage: "de-DE"})

	var out struct {
		ID   string `json:"id"`
		Code string `json:"code"`
	}
	err := g.Do(context.Background(), gw.Request{
		Op:     "List Accounts",
		Method: http.MethodGet,
		Path:   "/accounts",
		Query:  map[string]any{"limit": 2, "ids": []string{"a", "b"}},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/accounts?ids=a%2Cb&limit=2", got.uri)
	assert.Equal(t, "Basic Y29uZmlndXJlZDo=", got.header.Get("Authorization"))
	assert.Equal(t, "de-DE", got.header.Get("Accept-Language"))
	assert.Empty(t, got.body)
	assert.Equal(t, "a1", out.ID)
	assert.Equal(t, "acme", out.Code)
}

func TestDo_NoQuestionMarkWithoutQuery(t *testing.T) {
	ts, got := newServer(t, http.StatusOK, `{}`)
	g := New(Options{APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, g.Do(context.Background(), gw.Request{Op: "Get Plan", Method: http.MethodGet, Path: "/plans/p1"}, nil))
	assert.Equal(t, "/plans/p1", got.uri)
}

func TestDo_PerCallKeyBodyAndIdempotency(t *testing.T) {
	ts, got := newServer(t, http.StatusCreated, `{"id":"new"}`)
	g := New(Options{APIKey: "configured", BaseURL: ts.URL})

	req := gw.Request{Op: "Create Account", Method: http.MethodPost, Path: "/accounts", Body: map[string]string{"code": "acme"}}.
		Apply(gw.WithAPIKey("override"), gw.WithIdempotencyKey("idem-1"), gw.WithHeader("X-Extra", "yes"))
	var out map[string]any
	require.NoError(t, g.Do(context.Background(), req, &out))

	assert.Equal(t, "Basic b3ZlcnJpZGU6", got.header.Get("Authorization"))
	assert.Equal(t, "idem-1", got.header.Get("Idempotency-Key"))
	assert.Equal(t, "yes", got.header.Get("X-Extra"))
	assert.JSONEq(t, `{"code":"acme"}`, got.body)
	assert.Equal(t, "new", out["id"])
}

func TestDo_MissingKeySendsNothing(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	defer ts.Close()

	g := New(Options{BaseURL: ts.URL})
	err := g.Do(context.Background(), gw.Request{Op: "List Plans", Method: http.MethodGet, Path: "/plans"}, nil)
	assert.ErrorIs(t, err, gw.ErrMissingAPIKey)
	assert.False(t, called)
}

func TestDo_NonOKLogsAndReturnsAPIError(t *testing.T) {
	body := `{"error":{"type":"not_found","message":"Couldn't find Account with code = nope"}}`
	ts, _ := newServer(t, http.StatusNotFound, body)
	core, logs := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	g := New(Options{APIKey: "k", BaseURL: ts.URL, Logger: zap.New(core), Metrics: m})

	err := g.Do(context.Background(), gw.Request{Op: "Get Account", Method: http.MethodGet, Path: "/accounts/code-nope"}, &struct{}{})
	require.Error(t, err)
	assert.EqualError(t, err, "Get Account failed: 404")
	assert.ErrorIs(t, err, gw.ErrAPI)

	var apiErr *gw.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.NotNil(t, apiErr.Detail)
	assert.Equal(t, "not_found", apiErr.Detail.Type)

	errLogs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, errLogs, 1)
	assert.Equal(t, "Get Account failed: 404 - "+body, errLogs[0].Message)

	count, err := testutil.GatherAndCount(reg, "recurly_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDo_EmptyBodyLeavesOutUntouched(t *testing.T) {
	ts, _ := newServer(t, http.StatusNoContent, "")
	g := New(Options{APIKey: "k", BaseURL: ts.URL})
	out := map[string]any{"keep": true}
	require.NoError(t, g.Do(context.Background(), gw.Request{Op: "Remove Account Acquisition", Method: http.MethodDelete, Path: "/accounts/a/acquisition"}, &out))
	assert.Equal(t, true, out["keep"])
}

func TestDo_DecodeError(t *testing.T) {
	ts, _ := newServer(t, http.StatusOK, `{"id":`)
	g := New(Options{APIKey: "k", BaseURL: ts.URL})
	var out map[string]any
	err := g.Do(context.Background(), gw.Request{Op: "Get Item", Method: http.MethodGet, Path: "/items/i"}, &out)
	assert.ErrorIs(t, err, gw.ErrDecode)
}

func TestDo_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	g := New(Options{APIKey: "k", BaseURL: url})
	err := g.Do(context.Background(), gw.Request{Op: "Get Item", Method: http.MethodGet, Path: "/items/i"}, nil)
	assert.ErrorIs(t, err, gw.ErrTransport)
}

func TestDo_BodyEncodingError(t *testing.T) {
	g := New(Options{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	err := g.Do(context.Background(), gw.Request{Op: "Create Item", Method: http.MethodPost, Path: "/items", Body: map[string]any{"bad": make(chan int)}}, nil)
	var unsupported *json.UnsupportedTypeError
	assert.True(t, errors.As(err, &unsupported))
}
