package gateway

import (
	"net/url"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type PageParams struct {
	Limit int    `query:"limit,omitempty"`
	Order string `query:"order,omitempty"`
}

type accountFilter struct {
	IDs []string `query:"ids"`
	PageParams
	Email      string     `query:"email,omitempty"`
	Subscriber *bool      `query:"subscriber"`
	BeginTime  *time.Time `query:"begin_time"`
	internal   string
	Ignored    string `query:"-"`
}

func TestBuildQueryString(t *testing.T) {
	begin := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{name: "nil", params: nil, want: ""},
		{name: "nil pointer", params: (*accountFilter)(nil), want: ""},
		{name: "empty struct", params: accountFilter{}, want: ""},
		{
			name:   "slice joined with comma",
			params: accountFilter{IDs: []string{"a", "b"}},
			want:   "ids=a%2Cb",
		},
		{
			name: "declaration order with embedded struct",
			params: &accountFilter{
				IDs:        []string{"x"},
				PageParams: PageParams{Limit: 20, Order: "desc"},
				Email:      "a b@example.com",
				Subscriber: lo.ToPtr(false),
				BeginTime:  &begin,
				internal:   "nope",
				Ignored:    "nope",
			},
			want: "ids=x&limit=20&order=desc&email=a+b%40example.com&subscriber=false&begin_time=2024-01-02T03%3A04%3A05Z",
		},
		{
			name:   "map keys sorted and nil skipped",
			params: map[string]any{"state": "active", "limit": 5, "cursor": nil},
			want:   "limit=5&state=active",
		},
		{
			name:   "url values",
			params: url.Values{"sort": {"created_at"}, "ids": {"1", "2"}},
			want:   "ids=1%2C2&sort=created_at",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildQueryString(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildQueryString_RejectsScalars(t *testing.T) {
	_, err := BuildQueryString(42)
	assert.Error(t, err)
}

func TestAppendQuery(t *testing.T) {
	assert.Equal(t, "/accounts", AppendQuery("/accounts", ""))
	assert.Equal(t, "/accounts?limit=1", AppendQuery("/accounts", "limit=1"))
	assert.Equal(t, "/accounts?cursor=abc&limit=1", AppendQuery("/accounts?cursor=abc", "limit=1"))
}

func TestRequestApply(t *testing.T) {
	req := Request{Op: "Get Account"}.Apply(
		WithAPIKey("override"),
		WithIdempotencyKey("idem"),
		WithHeader("X-Trace", "1"),
		nil,
	)
	assert.Equal(t, "override", req.APIKey)
	assert.Equal(t, "idem", req.IdempotencyKey)
	assert.Equal(t, map[string]string{"X-Trace": "1"}, req.Header)
}

func TestNewAPIError_ParsesEnvelope(t *testing.T) {
	body := []byte(`{"error":{"type":"validation","message":"Code is invalid","params":[{"param":"code","message":"is invalid"}]}}`)
	e := NewAPIError("Create Account", 422, body)
	assert.Equal(t, "Create Account failed: 422", e.Error())
	assert.ErrorIs(t, e, ErrAPI)
	require.NotNil(t, e.Detail)
	assert.Equal(t, "validation", e.Detail.Type)
	assert.Equal(t, "code", e.Detail.Params[0].Param)
	assert.Equal(t, 422, StatusCode(e))

	plain := NewAPIError("Get Account", 502, []byte("bad gateway"))
	assert.Nil(t, plain.Detail)
	assert.Equal(t, "bad gateway", plain.Body)
}
