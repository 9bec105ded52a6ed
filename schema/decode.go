package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/DonovanMods/cfapi/apierr"
)

// Some timestamps (Minecraft versions, mod loaders) are sent without a zone.
const naiveTimeLayout = "2006-01-02T15:04:05.999999999"

var (
	numberType = reflect.TypeOf(json.Number(""))
	timeType   = reflect.TypeOf(time.Time{})
	enumType   = reflect.TypeOf((*enum)(nil)).Elem()
)

// enum is satisfied by every closed enumeration in this package.
type enum interface {
	Valid() bool
}

// Ptr returns a pointer to v, for filling optional fields and parameters.
func Ptr[T any](v T) *T {
	return &v
}

// Decode converts a generic JSON value, as returned by the transport with
// numbers kept as json.Number, into out.
//
// Required fields must be present and not null, enumerations must hold a
// declared member and scalars must match their declared type. Keys without a
// matching field are ignored. Failures are returned as
// *apierr.SchemaValidationError.
func Decode(raw any, out any) error {
	if raw == nil {
		if t := reflect.TypeOf(out); t != nil && t.Kind() == reflect.Pointer {
			if err := rejectNull(t.Elem()); err != nil {
				return &apierr.SchemaValidationError{Err: err}
			}
		}
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:           "json",
		ErrorUnset:        true,
		AllowUnsetPointer: true,
		MatchName:         func(mapKey, fieldName string) bool { return mapKey == fieldName },
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			nullHook,
			strictNumberHook,
			enumHook,
			timeHook,
		),
		Result: out,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	if err := dec.Decode(raw); err != nil {
		return schemaError(err)
	}
	return nil
}

// nullError is a JSON null found under key, a field name or an "[i]" index,
// of the container being decoded.
type nullError struct {
	key string
	err error
}

func (e *nullError) Error() string {
	return fmt.Sprintf("%s: %v", e.key, e.err)
}

func (e *nullError) Unwrap() error {
	return e.err
}

// nullHook rejects nulls in struct fields, list items and map values whose
// type cannot be absent. mapstructure skips its hooks for nil input, so nulls
// are checked from the enclosing container.
func nullHook(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Struct:
		m, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}
		for i := 0; i < to.NumField(); i++ {
			f := to.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if !f.IsExported() || name == "" || name == "-" {
				continue
			}
			if v, ok := m[name]; ok && v == nil {
				if err := rejectNull(f.Type); err != nil {
					return nil, &nullError{key: name, err: err}
				}
			}
		}
	case reflect.Slice, reflect.Array:
		items, ok := data.([]any)
		if !ok {
			return data, nil
		}
		if err := rejectNull(to.Elem()); err != nil {
			for i, v := range items {
				if v == nil {
					return nil, &nullError{key: fmt.Sprintf("[%d]", i), err: err}
				}
			}
		}
	case reflect.Map:
		m, ok := data.(map[string]any)
		if !ok {
			return data, nil
		}
		if err := rejectNull(to.Elem()); err != nil {
			for k, v := range m {
				if v == nil {
					return nil, &nullError{key: "[" + k + "]", err: err}
				}
			}
		}
	}
	return data, nil
}

// rejectNull returns the failure for a null decoded into t, or nil when t
// has a natural "absent" value.
func rejectNull(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return nil
	}
	if t.Implements(enumType) {
		return fmt.Errorf("%w: null for %s", apierr.ErrUnknownEnumValue, t.Name())
	}
	return fmt.Errorf("%w: null for %s", apierr.ErrTypeMismatch, t)
}

// strictNumberHook rejects numbers decoded into strings or timestamps, which
// mapstructure would otherwise accept because json.Number is a string type.
func strictNumberHook(from, to reflect.Type, data any) (any, error) {
	if from != numberType {
		return data, nil
	}
	if to.Kind() == reflect.String || to.Kind() == reflect.Struct {
		return nil, fmt.Errorf("%w: number %s into %s", apierr.ErrTypeMismatch, data, to)
	}
	return data, nil
}

func enumHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int && to.Kind() != reflect.String {
		return data, nil
	}
	if !to.Implements(enumType) {
		return data, nil
	}

	v := reflect.New(to).Elem()
	switch to.Kind() {
	case reflect.Int:
		n, ok := data.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: %s into %s", apierr.ErrTypeMismatch, from, to)
		}
		i, err := n.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s into %s", apierr.ErrTypeMismatch, n, to)
		}
		v.SetInt(i)
	case reflect.String:
		s, ok := data.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s into %s", apierr.ErrTypeMismatch, from, to)
		}
		v.SetString(s)
	}

	e := v.Interface().(enum)
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %v for %s", apierr.ErrUnknownEnumValue, data, to.Name())
	}
	return e, nil
}

func timeHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s into timestamp", apierr.ErrTypeMismatch, from)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(naiveTimeLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timestamp %q", apierr.ErrTypeMismatch, s)
	}
	return t, nil
}

// schemaError turns the first mapstructure failure into a SchemaValidationError
// naming the wire path of the offending field.
func schemaError(err error) error {
	var de *mapstructure.DecodeError
	if !errors.As(err, &de) {
		return &apierr.SchemaValidationError{Err: fmt.Errorf("%w: %v", apierr.ErrTypeMismatch, err)}
	}

	field, cause := de.Name(), de.Unwrap()
	var ne *nullError
	if errors.As(cause, &ne) {
		return &apierr.SchemaValidationError{Field: joinPath(field, ne.key), Err: ne.err}
	}
	if keys, ok := strings.CutPrefix(cause.Error(), "has unset fields: "); ok {
		first, _, _ := strings.Cut(keys, ", ")
		return &apierr.SchemaValidationError{Field: joinPath(field, first), Err: apierr.ErrMissingField}
	}

	if errors.Is(cause, apierr.ErrUnknownEnumValue) || errors.Is(cause, apierr.ErrTypeMismatch) {
		return &apierr.SchemaValidationError{Field: field, Err: cause}
	}
	return &apierr.SchemaValidationError{Field: field, Err: fmt.Errorf("%w: %v", apierr.ErrTypeMismatch, cause)}
}

func joinPath(parent, key string) string {
	if parent == "" || strings.HasPrefix(key, "[") {
		return parent + key
	}
	return parent + "." + key
}
