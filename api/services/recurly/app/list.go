package app

import (
	"context"
	"net/http"
	"time"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// List is the envelope every collection endpoint returns.
type List[T any] struct {
	Object  string `json:"object"`
	HasMore bool   `json:"has_more"`
	Next    string `json:"next,omitempty"`
	Data    []T    `json:"data"`
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortUpdatedAt SortField = "updated_at"
)

// ListParams are the paging and time-window filters shared by most list endpoints.
type ListParams struct {
	IDs       []string   `query:"ids"`
	Limit     int        `query:"limit,omitempty" validate:"omitempty,min=1,max=200"`
	Order     SortOrder  `query:"order,omitempty" validate:"omitempty,oneof=asc desc"`
	Sort      SortField  `query:"sort,omitempty" validate:"omitempty,oneof=created_at updated_at"`
	BeginTime *time.Time `query:"begin_time"`
	EndTime   *time.Time `query:"end_time"`
}

// NextPage fetches the page after page. It returns ok=false without any I/O
// when page has no further results.
func NextPage[T any](ctx context.Context, g gw.Gateway, page List[T], op string, opts ...gw.CallOption) (next List[T], ok bool, err error) {
	if !page.HasMore || page.Next == "" {
		return List[T]{}, false, nil
	}
	req := gw.Request{Op: op, Method: http.MethodGet, Path: page.Next}.Apply(opts...)
	if err := g.Do(ctx, req, &next); err != nil {
		return List[T]{}, false, err
	}
	return next, true, nil
}

// ListAll returns the records of first followed by every remaining page.
// Pages are fetched one after another.
func ListAll[T any](ctx context.Context, g gw.Gateway, first List[T], op string, opts ...gw.CallOption) ([]T, error) {
	all := append([]T(nil), first.Data...)
	page := first
	for {
		next, ok, err := NextPage(ctx, g, page, op, opts...)
		if err != nil {
			return all, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, next.Data...)
		page = next
	}
}
