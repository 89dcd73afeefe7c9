package models

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json field names so messages match the wire format.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateStruct runs tag validation and maps the first failure to ErrInvalidParameter.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return InvalidParameter("%v", err)
	}

	fe := verrs[0]

	switch fe.Tag() {
	case "required":
		return InvalidParameter("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return InvalidParameter("%s exceeds maximum length of %s", fe.Field(), fe.Param())
		}

		return InvalidParameter("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return InvalidParameter("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return InvalidParameter("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
