package gateway

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// BuildQueryString encodes params as a URL query string without the leading '?'.
//
// params may be nil, url.Values, map[string]any, or a struct (or pointer to one)
// whose fields carry `query:"name[,omitempty]"` tags. Nil pointers and empty
// slices are skipped, slices are joined with ",", time.Time is written as
// RFC 3339 and everything else goes through its string form. Struct fields
// keep declaration order; map keys are sorted. Embedded structs are flattened.
func BuildQueryString(params any) (string, error) {
	pairs, err := queryPairs(params)
	if err != nil {
		return "", err
	}
	return strings.Join(lo.Map(pairs, func(p [2]string, _ int) string {
		return url.QueryEscape(p[0]) + "=" + url.QueryEscape(p[1])
	}), "&"), nil
}

func queryPairs(params any) ([][2]string, error) {
	if params == nil {
		return nil, nil
	}
	switch p := params.(type) {
	case url.Values:
		var out [][2]string
		for _, k := range sortedKeys(p) {
			if vs := p[k]; len(vs) > 0 {
				out = append(out, [2]string{k, strings.Join(vs, ",")})
			}
		}
		return out, nil
	case map[string]any:
		var out [][2]string
		for _, k := range sortedKeys(p) {
			if s, ok := formatQueryValue(reflect.ValueOf(p[k]), false); ok {
				out = append(out, [2]string{k, s})
			}
		}
		return out, nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("query params must be a struct, map or url.Values, got %T", params)
	}
	return structPairs(v), nil
}

func structPairs(v reflect.Value) [][2]string {
	var out [][2]string
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("query")
		if f.Anonymous && tag == "" {
			fv := v.Field(i)
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				out = append(out, structPairs(fv)...)
			}
			continue
		}
		if tag == "" || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if s, ok := formatQueryValue(v.Field(i), opts == "omitempty"); ok {
			out = append(out, [2]string{name, s})
		}
	}
	return out
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func formatQueryValue(v reflect.Value, omitEmpty bool) (string, bool) {
	if !v.IsValid() {
		return "", false
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	if omitEmpty && v.IsZero() {
		return "", false
	}
	if t, ok := v.Interface().(time.Time); ok {
		if t.IsZero() {
			return "", false
		}
		return t.UTC().Format(time.RFC3339), true
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "", false
		}
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			if s, ok := formatQueryValue(v.Index(i), false); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	}
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String(), true
	}
	return fmt.Sprint(v.Interface()), true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AppendQuery joins path and an encoded query, using '&' when path already has one.
func AppendQuery(path, query string) string {
	if query == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&" + query
	}
	return path + "?" + query
}
