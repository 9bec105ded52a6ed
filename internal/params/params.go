// Package params prepares outgoing query and body mappings.
//
// Every operation builds a Values with all of its parameters, set or not, and
// passes it through Filter before handing it to the transport. Filter is the
// only place where "not specified" is decided.
package params

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Values maps wire parameter names to values. A nil value, a nil pointer and
// a nil or empty slice all mean the parameter was not specified.
type Values map[string]any

// Override names a list parameter that replaces its singular counterpart
// whenever the list is present.
type Override struct {
	Singular string
	List     string
}

// SearchOverrides are the list-over-singular rules of search style operations.
var SearchOverrides = []Override{
	{Singular: "categoryId", List: "categoryIds"},
	{Singular: "gameVersion", List: "gameVersions"},
	{Singular: "modLoaderType", List: "modLoaderTypes"},
}

// Filter returns a copy of v without absent entries and with pointers
// dereferenced, then applies the overrides.
func Filter(v Values, overrides ...Override) Values {
	out := make(Values, len(v))
	for k, val := range v {
		if val, ok := present(val); ok {
			out[k] = val
		}
	}

	for _, o := range overrides {
		if _, ok := out[o.List]; ok {
			delete(out, o.Singular)
		}
	}
	return out
}

func present(val any) (any, bool) {
	if val == nil {
		return nil, false
	}

	rv := reflect.ValueOf(val)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.Len() == 0 {
			return nil, false
		}
	}
	return rv.Interface(), true
}

// Query encodes filtered values as URL query parameters. Strings are sent
// as-is; everything else is JSON encoded, so lists travel as "[7,8]" and
// booleans as "true".
func Query(v Values) (url.Values, error) {
	q := make(url.Values, len(v))
	for k, val := range v {
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.String {
			q.Set(k, rv.String())
			continue
		}

		b, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("encoding query parameter %s: %w", k, err)
		}
		q.Set(k, string(b))
	}
	return q, nil
}

// FromStruct collects the fields of an options struct that carry a `param`
// tag. Embedded blocks tagged `param:",squash"` are flattened. A nil pointer
// yields an empty Values.
func FromStruct(opts any) (Values, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:              "param",
		IgnoreUntaggedFields: true,
		Result:               &out,
	})
	if err != nil {
		return nil, fmt.Errorf("creating options decoder: %w", err)
	}
	if err := dec.Decode(opts); err != nil {
		return nil, fmt.Errorf("collecting options: %w", err)
	}
	return Values(out), nil
}
