package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
)

func badQuery(name string, err error) error {
	return fmt.Errorf("%w: query parameter %s: %v", app.ErrValidation, name, err)
}

func listParams(q url.Values) (app.ListParams, error) {
	p := app.ListParams{
		IDs:   splitIDs(q.Get("ids")),
		Order: app.SortOrder(q.Get("order")),
		Sort:  app.SortField(q.Get("sort")),
	}
	var err error
	if p.Limit, err = intParam(q, "limit"); err != nil {
		return p, err
	}
	if p.BeginTime, err = timeParam(q, "begin_time"); err != nil {
		return p, err
	}
	if p.EndTime, err = timeParam(q, "end_time"); err != nil {
		return p, err
	}
	return p, nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}

func intParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badQuery(name, err)
	}
	return n, nil
}

func boolParam(q url.Values, name string) (*bool, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, badQuery(name, err)
	}
	return &b, nil
}

func timeParam(q url.Values, name string) (*time.Time, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, badQuery(name, err)
	}
	return &ts, nil
}
