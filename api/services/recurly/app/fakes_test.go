package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
	recurlygw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway/recurly"
)

// fakeGateway records every request and answers with canned JSON keyed by Op.
type fakeGateway struct {
	calls     []gw.Request
	responses map[string]string
	err       error
}

func (f *fakeGateway) Do(ctx context.Context, req gw.Request, out any) error {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return f.err
	}
	body, ok := f.responses[req.Op]
	if !ok || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeGateway) last(t *testing.T) gw.Request {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatalf("expected a gateway call, got none")
	}
	return f.calls[len(f.calls)-1]
}

type seenRequest struct {
	method string
	uri    string
	body   string
	apiKey string
}

// vendorServer runs the real gateway against an httptest server standing in
// for the Recurly API.
func vendorServer(t *testing.T, status int, respBody string) (gw.Gateway, *seenRequest) {
	t.Helper()
	seen := &seenRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen.method = r.Method
		seen.uri = r.URL.RequestURI()
		seen.body = string(b)
		seen.apiKey = r.Header.Get("Authorization")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(ts.Close)
	return recurlygw.New(recurlygw.Options{APIKey: "test-key", BaseURL: ts.URL}), seen
}
