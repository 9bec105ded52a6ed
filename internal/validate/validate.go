// Package validate checks caller parameters against the limits the API
// documents, so that a request that would be rejected never leaves the process.
//
// Option structs declare their limits with `validate` tags and name their
// fields with the same `param` tag the wire uses:
//
//	PageSize *int `param:"pageSize" validate:"omitempty,min=1,max=50"`
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/DonovanMods/cfapi/apierr"
)

const (
	// DefaultPageSize is the page size the API applies when none is sent.
	DefaultPageSize = 50
	// MaxWindow bounds index + pageSize for every paginated endpoint.
	MaxWindow = 10000
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("param"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		// Registration only fails for an empty tag or a nil func.
		_ = validate.RegisterValidation("window", pageWindow)
		_ = validate.RegisterValidation("enum", enumMember)
	})
	return validate
}

// pageWindow enforces index + pageSize <= MaxWindow. It reads the sibling
// PageSize field and falls back to the API default when it is unset.
func pageWindow(fl validator.FieldLevel) bool {
	size := int64(DefaultPageSize)
	if ps := reflect.Indirect(reflect.Indirect(fl.Parent()).FieldByName("PageSize")); ps.IsValid() {
		size = ps.Int()
	}
	return fl.Field().Int()+size <= MaxWindow
}

// enumMember accepts declared members of a closed enumeration.
func enumMember(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(interface{ Valid() bool })
	return ok && e.Valid()
}

// Struct validates an options struct. A nil pointer is valid: it means every
// option takes the API default.
func Struct(s any) error {
	if s == nil {
		return nil
	}
	if rv := reflect.ValueOf(s); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apierr.ErrInvalidRequest, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		messages = append(messages, e.Field()+" "+describe(e))
	}
	return fmt.Errorf("%w: %s", apierr.ErrInvalidRequest, strings.Join(messages, "; "))
}

// NonEmpty rejects a required list that has no elements.
func NonEmpty[T any](name string, list []T) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: %s must not be empty", apierr.ErrInvalidRequest, name)
	}
	return nil
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		if e.Kind() == reflect.Slice {
			return "must have at least " + e.Param() + " elements"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.Slice {
			return "must have at most " + e.Param() + " elements"
		}
		return "must be at most " + e.Param()
	case "window":
		return fmt.Sprintf("plus pageSize must not exceed %d", MaxWindow)
	case "enum":
		return fmt.Sprintf("has unknown value %v", e.Value())
	default:
		return "is invalid"
	}
}
