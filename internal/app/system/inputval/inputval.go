// Package inputval validates admin form input with struct tags and
// hosts the small standalone checks the handlers share. Validation
// messages are user-facing and built from the `label` tag.
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one validation failure, with a user-facing message.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the failures from one Validate call.
type Result struct {
	Errors []FieldError
}

func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first error message, or "" when valid.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every error message with "; ".
func (r *Result) All() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their `label` tag so messages read naturally.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return IsValidObjectID(fl.Field().String())
	})
	v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return IsValidHTTPURL(fl.Field().String())
	})
	v.RegisterValidation("programstatus", func(fl validator.FieldLevel) bool {
		return IsValidProgramStatus(fl.Field().String())
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsValidISODate(fl.Field().String())
	})

	return v
}

// Validate checks a struct against its `validate` tags and returns a
// Result with one user-facing message per failing field.
func Validate(input any) *Result {
	res := &Result{}

	err := validate.Struct(input)
	if err == nil {
		return res
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.Errors = append(res.Errors, FieldError{Message: "Input tidak valid."})
		return res
	}

	for _, e := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   e.Field(),
			Message: message(e),
		})
	}
	return res
}

func message(e validator.FieldError) string {
	label := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi.", label)
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter.", label, e.Param())
	case "min":
		return fmt.Sprintf("%s minimal %s karakter.", label, e.Param())
	case "email":
		return fmt.Sprintf("%s harus berupa alamat email yang valid.", label)
	case "httpurl":
		return fmt.Sprintf("%s harus berupa URL http atau https.", label)
	case "objectid":
		return fmt.Sprintf("%s bukan ID yang valid.", label)
	case "programstatus":
		return fmt.Sprintf("%s harus ongoing, upcoming, atau completed.", label)
	case "isodate":
		return fmt.Sprintf("%s harus berformat YYYY-MM-DD.", label)
	default:
		return fmt.Sprintf("%s tidak valid.", label)
	}
}
