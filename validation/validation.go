// Package validation checks request shapes against their `validate` struct
// tags and turns failures into a field -> messages map suitable for a
// validation problem response.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Errors maps a JSON field name to the messages describing why it failed.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add appends msg to the messages of field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validator wraps a go-playground validator configured to report JSON names.
type Validator struct {
	v *validator.Validate
}

// messages holds the human readable text for a field/tag pair.
var messages = map[string]string{
	"name.required":     "Please provide the user's name.",
	"name.notblank":     "Please provide the user's name.",
	"email.required":    "Please provide the user's email address.",
	"email.notblank":    "Please provide the user's email address.",
	"email.email":       "Please provide a valid email address.",
	"password.required": "Please provide the user's password.",
	"password.notblank": "Please provide the user's password.",
	"password.utf16min": "The password must be at least %s characters long.",
	"password.utf16len": "The password must be exactly %s characters long.",
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("utf16min", utf16Length(func(n, want int) bool { return n >= want }))
	_ = v.RegisterValidation("utf16len", utf16Length(func(n, want int) bool { return n == want }))
	return &Validator{v: v}
}

// utf16Length builds a string length rule that counts UTF-16 code units, so
// a character outside the BMP counts as two.
func utf16Length(ok func(n, want int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		want, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		n := 0
		for _, r := range fl.Field().String() {
			n += utf16.RuneLen(r)
		}
		return ok(n, want)
	}
}

// Struct validates s. It returns nil or an Errors value.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := Errors{}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	if tmpl, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		if strings.Contains(tmpl, "%s") {
			return fmt.Sprintf(tmpl, fe.Param())
		}
		return tmpl
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid e-mail address.", fe.Field())
	case "min", "utf16min":
		return fmt.Sprintf("The field %s must be at least %s characters long.", fe.Field(), fe.Param())
	case "len", "utf16len":
		return fmt.Sprintf("The field %s must be exactly %s characters long.", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("The field %s is invalid (%s).", fe.Field(), fe.Tag())
}
