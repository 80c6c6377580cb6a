package router

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bootstrap "github.com/tbeaudouin05/recurly-trellai/api/bootstrap"
	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

const (
	// APIKeyHeader carries a per-request Recurly API key.
	APIKeyHeader = "X-Recurly-Api-Key"
	// IdempotencyHeader is forwarded to Recurly unchanged.
	IdempotencyHeader = "Idempotency-Key"
)

// NewRouter returns the central HTTP router for the API using grpc-gateway's
// ServeMux. Routes mirror the Recurly v3 paths under /v3.
func NewRouter() http.Handler {
	// Initialize app dependencies (non-fatal if it fails here; handlers re-check).
	if err := bootstrap.Ensure(); err != nil {
		bootstrap.Logger().Error("bootstrap ensure failed", zap.Error(err))
	}
	return New(bootstrap.GetClient(), bootstrap.Registry(), bootstrap.Logger())
}

// New builds the router over client. metrics may be nil to skip /metrics.
func New(client *app.Client, metrics prometheus.Gatherer, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	mux := runtime.NewServeMux(
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONBuiltin{}),
		// Ids may carry an escaped "/" (code-a%2Fb); match on the raw path.
		runtime.WithUnescapingMode(runtime.UnescapingModeAllExceptReserved),
	)
	rt := &routes{mux: mux, client: client, log: log}
	rt.register()

	if metrics != nil {
		h := promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})
		rt.must(mux.HandlePath(http.MethodGet, "/metrics", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			h.ServeHTTP(w, r)
		}))
	}
	rt.must(mux.HandlePath(http.MethodGet, "/healthz", func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	}))
	return mux
}

type routes struct {
	mux    *runtime.ServeMux
	client *app.Client
	log    *zap.Logger
}

// endpoint runs one client call. An empty result with a nil error answers 204.
type endpoint func(ctx context.Context, c *app.Client, req request) (any, error)

// request is what an endpoint sees of the incoming HTTP request.
type request struct {
	r      *http.Request
	params map[string]string
	opts   []gw.CallOption
	mux    *runtime.ServeMux
}

func (q request) param(name string) string { return q.params[name] }

func (rt *routes) must(err error) {
	if err != nil {
		rt.log.Error("failed to register route", zap.Error(err))
	}
}

func (rt *routes) handle(method, pattern string, ep endpoint) {
	rt.handleStatus(method, pattern, http.StatusOK, ep)
}

func (rt *routes) handleStatus(method, pattern string, okStatus int, ep endpoint) {
	rt.must(rt.mux.HandlePath(method, pattern, func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		// runtime.HTTPError reads header metadata from ctx.
		ctx := runtime.NewServerMetadataContext(r.Context(), runtime.ServerMetadata{})
		_, outbound := runtime.MarshalerForRequest(rt.mux, r)
		if rt.client == nil {
			runtime.HTTPError(ctx, rt.mux, outbound, w, r, status.Error(codes.Unavailable, "recurly client is not initialized"))
			return
		}
		out, err := ep(ctx, rt.client, request{r: r, params: params, opts: callOptions(r), mux: rt.mux})
		if err != nil {
			rt.log.Debug("request failed", zap.String("method", method), zap.String("pattern", pattern), zap.Error(err))
			runtime.HTTPError(ctx, rt.mux, outbound, w, r, toStatus(err))
			return
		}
		if isEmpty(out) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		buf, err := outbound.Marshal(out)
		if err != nil {
			runtime.HTTPError(ctx, rt.mux, outbound, w, r, status.Error(codes.Internal, err.Error()))
			return
		}
		w.Header().Set("Content-Type", outbound.ContentType(out))
		w.WriteHeader(okStatus)
		_, _ = w.Write(buf)
	}))
}

// isEmpty reports a nil result, including a nil map from a 204 answer.
func isEmpty(out any) bool {
	if out == nil {
		return true
	}
	m, ok := out.(map[string]any)
	return ok && m == nil
}

func callOptions(r *http.Request) []gw.CallOption {
	var opts []gw.CallOption
	if key := r.Header.Get(APIKeyHeader); key != "" {
		opts = append(opts, gw.WithAPIKey(key))
	}
	if key := r.Header.Get(IdempotencyHeader); key != "" {
		opts = append(opts, gw.WithIdempotencyKey(key))
	}
	return opts
}

// decode reads the JSON body into a T. An empty body yields the zero value.
func decode[T any](q request) (T, error) {
	var body T
	inbound, _ := runtime.MarshalerForRequest(q.mux, q.r)
	if err := inbound.NewDecoder(q.r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return body, fmt.Errorf("%w: invalid JSON body: %v", app.ErrValidation, err)
	}
	return body, nil
}
