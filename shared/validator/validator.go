package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"

	"chiclon/shared/failure"
)

const (
	TagSimpleEmail = "simpleemail"
	TagPhone       = "phone"
)

var (
	validate *val.Validate

	simpleEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern       = regexp.MustCompile(`^\+?[1-9]\d{0,14}$`)
	nonDigitPattern    = regexp.MustCompile(`\D`)
)

// StripNonDigits removes every character that is not a decimal digit.
func StripNonDigits(value string) string {
	return nonDigitPattern.ReplaceAllString(value, "")
}

func registerSimpleEmailValidation(field val.FieldLevel) bool {
	return simpleEmailPattern.MatchString(field.Field().String())
}

// phone numbers are checked on their digits only, so "555-123-4567" and "(555) 123 4567" are equivalent.
func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(StripNonDigits(field.Field().String()))
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation(TagSimpleEmail, registerSimpleEmailValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation(TagPhone, registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})
}

// Decode reads a JSON document from r into data without running struct validation.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
