package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/packlist/internal/apperror"
	"github.com/sakif/packlist/internal/model"
)

// validate checks input structs against their `validate` tags before any
// store call is made. It is safe for concurrent use and caches struct
// metadata, so a single package-level instance is shared.
var validate = newValidator()

// optionalValue is satisfied by every model.Optional[T].
type optionalValue interface {
	ValuePtr() any
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so messages match what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Look through Optional wrappers. An absent or null Optional becomes a nil
	// pointer, which `omitempty` skips; a present one is validated as a non-nil
	// pointer, so a supplied zero value still hits min/gt.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if o, ok := field.Interface().(optionalValue); ok {
			return o.ValuePtr()
		}
		return nil
	},
		model.Optional[string]{},
		model.Optional[float64]{},
		model.Optional[int]{},
		model.Optional[model.Category]{},
	)

	// gearcategory accepts only the fixed category set.
	_ = v.RegisterValidation("gearcategory", func(fl validator.FieldLevel) bool {
		return model.Category(fl.Field().String()).Valid()
	})

	return v
}

// validateInput runs the struct validator and converts the first failure into
// an apperror.ValidationFailed naming the offending field.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating input: %w", err)
	}

	fe := verrs[0]
	return apperror.ValidationFailed(fe.Field(), validationMessage(fe))
}

func validationMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", field, fe.Param())
	case "gt":
		if fe.Kind() == reflect.Int || fe.Kind() == reflect.Int64 {
			return fmt.Sprintf("%s must be a positive integer", field)
		}
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "gearcategory":
		return fmt.Sprintf("%s must be one of: %s", field, categoryList())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func categoryList() string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// rejectNull returns a validation error when a non-nullable field was sent as
// an explicit JSON null.
func rejectNull[T any](field string, o model.Optional[T]) error {
	if o.Set && o.Null {
		return apperror.ValidationFailed(field, fmt.Sprintf("%s cannot be null", field))
	}
	return nil
}

// trimOptional trims surrounding whitespace from a present string value.
func trimOptional(o model.Optional[string]) model.Optional[string] {
	if o.Present() {
		o.Value = strings.TrimSpace(o.Value)
	}
	return o
}
