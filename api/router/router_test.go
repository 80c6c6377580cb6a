package router

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/grpclog"

	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type stubGateway struct {
	reqs      []gw.Request
	responses map[string]string
	err       error
}

func (s *stubGateway) Do(ctx context.Context, req gw.Request, out any) error {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return s.err
	}
	if body, ok := s.responses[req.Op]; ok && out != nil {
		return json.Unmarshal([]byte(body), out)
	}
	return nil
}

func newTestRouter(t *testing.T, g *stubGateway) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(app.NewClient(g, zap.NewNop()), prometheus.NewRegistry(), zap.NewNop()))
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var sb strings.Builder
	_, _ = io.Copy(&sb, resp.Body)
	return resp, sb.String()
}

func TestGetAccountForwardsHeaders(t *testing.T) {
	g := &stubGateway{responses: map[string]string{"Get Account": `{"id":"a1","code":"acme"}`}}
	ts := newTestRouter(t, g)

	resp, body := do(t, http.MethodGet, ts.URL+"/v3/accounts/code-acme", "", map[string]string{
		APIKeyHeader:      "per-call",
		IdempotencyHeader: "idem-1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Contains(t, body, `"code":"acme"`)

	require.Len(t, g.reqs, 1)
	got := g.reqs[0]
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/accounts/code-acme", got.Path)
	assert.Equal(t, "per-call", got.APIKey)
	assert.Equal(t, "idem-1", got.IdempotencyKey)
}

func TestListAccountsQuery(t *testing.T) {
	g := &stubGateway{responses: map[string]string{"List Accounts": `{"object":"list","has_more":false,"data":[{"id":"a1"}]}`}}
	ts := newTestRouter(t, g)

	resp, body := do(t, http.MethodGet, ts.URL+"/v3/accounts?limit=5&order=asc&subscriber=true&ids=a1,a2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	params, ok := g.reqs[0].Query.(app.ListAccountsParams)
	require.True(t, ok, "query is %T", g.reqs[0].Query)
	assert.Equal(t, 5, params.Limit)
	assert.Equal(t, app.OrderAsc, params.Order)
	assert.Equal(t, []string{"a1", "a2"}, params.IDs)
	require.NotNil(t, params.Subscriber)
	assert.True(t, *params.Subscriber)
}

func TestBadQueryIsRejectedBeforeGateway(t *testing.T) {
	g := &stubGateway{}
	ts := newTestRouter(t, g)

	for _, url := range []string{
		"/v3/accounts?limit=ten",
		"/v3/plans?begin_time=yesterday",
		"/v3/subscriptions/s1?charge=maybe",
	} {
		method := http.MethodGet
		if strings.HasPrefix(url, "/v3/subscriptions/") {
			method = http.MethodDelete
		}
		resp, body := do(t, method, ts.URL+url, "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s: %s", url, body)
	}
	assert.Empty(t, g.reqs)
}

func TestCreateReturnsCreated(t *testing.T) {
	g := &stubGateway{responses: map[string]string{"Create Item": `{"id":"i1","code":"widget"}`}}
	ts := newTestRouter(t, g)

	resp, body := do(t, http.MethodPost, ts.URL+"/v3/items", `{"code":"widget","name":"Widget"}`, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, body)
	assert.Contains(t, body, `"id":"i1"`)

	created, ok := g.reqs[0].Body.(app.CreateItem)
	require.True(t, ok, "body is %T", g.reqs[0].Body)
	assert.Equal(t, "widget", created.Code)
}

func TestValidationMapsToBadRequest(t *testing.T) {
	g := &stubGateway{}
	ts := newTestRouter(t, g)

	resp, body := do(t, http.MethodPost, ts.URL+"/v3/plans", `{"name":"No code"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "validation error")

	resp, _ = do(t, http.MethodPost, ts.URL+"/v3/coupons", `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, g.reqs)
}

func TestVendorErrorsMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", gw.NewAPIError("Get Plan", 404, []byte(`{"error":{"type":"not_found","message":"Couldn't find Plan"}}`)), http.StatusNotFound},
		{"unauthorized", gw.NewAPIError("Get Plan", 401, nil), http.StatusUnauthorized},
		{"forbidden", gw.NewAPIError("Get Plan", 403, nil), http.StatusForbidden},
		{"invalid", gw.NewAPIError("Get Plan", 422, nil), http.StatusBadRequest},
		{"rate limited", gw.NewAPIError("Get Plan", 429, nil), http.StatusTooManyRequests},
		{"vendor down", gw.NewAPIError("Get Plan", 502, nil), http.StatusServiceUnavailable},
		{"missing key", gw.ErrMissingAPIKey, http.StatusUnauthorized},
		{"transport", fmt.Errorf("%w: dial tcp", gw.ErrTransport), http.StatusServiceUnavailable},
		{"decode", fmt.Errorf("%w: bad json", gw.ErrDecode), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestRouter(t, &stubGateway{err: tc.err})
			resp, body := do(t, http.MethodGet, ts.URL+"/v3/plans/code-gold", "", nil)
			assert.Equal(t, tc.want, resp.StatusCode, body)
		})
	}
}

func TestNotFoundCarriesVendorMessage(t *testing.T) {
	apiErr := gw.NewAPIError("Get Plan", 404, []byte(`{"error":{"type":"not_found","message":"Couldn't find Plan"}}`))
	ts := newTestRouter(t, &stubGateway{err: apiErr})

	_, body := do(t, http.MethodGet, ts.URL+"/v3/plans/code-gold", "", nil)
	assert.Contains(t, body, "Couldn't find Plan")
}

func TestRemoveBillingInfoIsNoContent(t *testing.T) {
	g := &stubGateway{}
	ts := newTestRouter(t, g)

	resp, body := do(t, http.MethodDelete, ts.URL+"/v3/accounts/a1/billing_info", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, "/accounts/a1/billing_info", g.reqs[0].Path)
}

func TestSubscriptionActionRoutes(t *testing.T) {
	cases := []struct {
		method, url, body string
		op, path          string
	}{
		{http.MethodPut, "/v3/subscriptions/s1/cancel", `{"timeframe":"term_end"}`, "Cancel subscription", "/subscriptions/s1/cancel"},
		{http.MethodPut, "/v3/subscriptions/s1/reactivate", "", "Reactivate subscription", "/subscriptions/s1/reactivate"},
		{http.MethodPut, "/v3/subscriptions/s1/pause", `{"remaining_pause_cycles":2}`, "Pause subscription", "/subscriptions/s1/pause"},
		{http.MethodPut, "/v3/subscriptions/s1/resume", "", "Resume subscription", "/subscriptions/s1/resume"},
		{http.MethodDelete, "/v3/subscriptions/s1?refund=none", "", "Terminate subscription", "/subscriptions/s1"},
	}
	for _, tc := range cases {
		g := &stubGateway{}
		ts := newTestRouter(t, g)
		resp, body := do(t, tc.method, ts.URL+tc.url, tc.body, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "%s %s: %s", tc.method, tc.url, body)
		require.Len(t, g.reqs, 1)
		assert.Equal(t, tc.op, g.reqs[0].Op)
		assert.Equal(t, tc.path, g.reqs[0].Path)
	}
}

func TestCatalogRoutes(t *testing.T) {
	cases := []struct {
		method, url string
		op, path    string
	}{
		{http.MethodGet, "/v3/plans/p1/add_ons/ao1", "Get Plan Add-on", "/plans/p1/add_ons/ao1"},
		{http.MethodDelete, "/v3/plans/p1", "Remove Plan", "/plans/p1"},
		{http.MethodPut, "/v3/items/i1/reactivate", "Reactivate Item", "/items/i1/reactivate"},
		{http.MethodGet, "/v3/coupons/c1/unique_coupon_codes", "List Unique Coupon Codes", "/coupons/c1/unique_coupon_codes"},
		{http.MethodPut, "/v3/unique_coupon_codes/u1/restore", "Reactivate Unique Coupon Code", "/unique_coupon_codes/u1/restore"},
		{http.MethodDelete, "/v3/measured_units/m1", "Remove Measured Unit", "/measured_units/m1"},
		{http.MethodGet, "/v3/price_segments/ps1", "Get Price Segment", "/price_segments/ps1"},
	}
	for _, tc := range cases {
		g := &stubGateway{}
		ts := newTestRouter(t, g)
		resp, body := do(t, tc.method, ts.URL+tc.url, "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "%s %s: %s", tc.method, tc.url, body)
		assert.Equal(t, tc.op, g.reqs[0].Op)
		assert.Equal(t, tc.path, g.reqs[0].Path)
	}
}

func TestNilClientIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(New(nil, nil, nil))
	defer ts.Close()

	resp, _ := do(t, http.MethodGet, ts.URL+"/v3/accounts", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test counter"})
	reg.MustRegister(c)
	c.Inc()

	ts := httptest.NewServer(New(app.NewClient(&stubGateway{}, nil), reg, nil))
	defer ts.Close()

	resp, body := do(t, http.MethodGet, ts.URL+"/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "router_test_total 1")
}

func TestPreviewRenewal(t *testing.T) {
	t.Run("empty answer is no content", func(t *testing.T) {
		g := &stubGateway{}
		ts := newTestRouter(t, g)

		resp, body := do(t, http.MethodGet, ts.URL+"/v3/subscriptions/s1/preview_renewal", "", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Empty(t, body)
		assert.Equal(t, "Preview renewal", g.reqs[0].Op)
	})
	t.Run("body is passed through", func(t *testing.T) {
		g := &stubGateway{responses: map[string]string{"Preview renewal": `{"charges":{"object":"list"}}`}}
		ts := newTestRouter(t, g)

		resp, body := do(t, http.MethodGet, ts.URL+"/v3/subscriptions/s1/preview_renewal", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"charges":{"object":"list"}}`, body)
	})
}

func TestEscapedIDReachesGateway(t *testing.T) {
	g := &stubGateway{responses: map[string]string{"Get Account": `{"id":"a1"}`}}
	ts := newTestRouter(t, g)

	resp, body := do(t, http.MethodGet, ts.URL+"/v3/accounts/code-a%2Fb", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	require.Len(t, g.reqs, 1)
	assert.Equal(t, "/accounts/code-a%2Fb", g.reqs[0].Path)
}

type lockedBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func TestErrorResponsesDoNotLogMissingMetadata(t *testing.T) {
	var buf lockedBuffer
	grpclog.SetLoggerV2(grpclog.NewLoggerV2(io.Discard, &buf, &buf))
	t.Cleanup(func() { grpclog.SetLoggerV2(grpclog.NewLoggerV2(io.Discard, io.Discard, os.Stderr)) })

	ts := newTestRouter(t, &stubGateway{err: gw.NewAPIError("Get Account", 404, nil)})
	resp, _ := do(t, http.MethodGet, ts.URL+"/v3/accounts/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, ts.URL+"/v3/accounts", `{broken`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.NotContains(t, buf.String(), "ServerMetadata")
}
