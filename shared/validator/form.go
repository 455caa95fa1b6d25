package validator

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MessageMissingField = "Hey, you forgot to fill in the %s field."
	MessageInvalidEmail = "That email doesn't look right. Can you check it?"
	MessageInvalidPhone = "That phone number doesn't look right. Can you double-check it?"
)

type FormErrorKind int

const (
	MissingField FormErrorKind = iota + 1
	InvalidEmail
	InvalidPhone
)

func (k FormErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing_field"
	case InvalidEmail:
		return "invalid_email"
	case InvalidPhone:
		return "invalid_phone"
	default:
		return "unknown"
	}
}

// FormError is the first rule a submitted form broke.
type FormError struct {
	Kind    FormErrorKind
	Field   string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

// FormSchema describes how a flat form is checked. Required fields are checked in order and
// before any format rule; the first broken rule ends the check.
type FormSchema struct {
	Required []string
	Email    []string
	Phone    []string
}

// HumanizeField turns a camelCase field name into lower case words, e.g. haircutType -> haircut type.
func HumanizeField(name string) string {
	var builder strings.Builder

	for _, r := range name {
		if unicode.IsUpper(r) {
			builder.WriteRune(' ')
		}

		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}

// Normalize returns a copy of fields with surrounding whitespace removed from every value.
func Normalize(fields map[string]string) map[string]string {
	normalized := make(map[string]string, len(fields))

	for key, value := range fields {
		normalized[key] = strings.TrimSpace(value)
	}

	return normalized
}

// Check runs the schema against fields and returns a *FormError for the first failure.
func (s FormSchema) Check(fields map[string]string) error {
	fields = Normalize(fields)

	for _, name := range s.Required {
		if validate.Var(fields[name], "required") != nil {
			return &FormError{
				Kind:    MissingField,
				Field:   name,
				Message: fmt.Sprintf(MessageMissingField, HumanizeField(name)),
			}
		}
	}

	for _, name := range s.Email {
		value := fields[name]
		if value == "" {
			continue
		}

		if validate.Var(value, TagSimpleEmail) != nil {
			return &FormError{Kind: InvalidEmail, Field: name, Message: MessageInvalidEmail}
		}
	}

	for _, name := range s.Phone {
		value := fields[name]
		if value == "" {
			continue
		}

		if validate.Var(value, TagPhone) != nil {
			return &FormError{Kind: InvalidPhone, Field: name, Message: MessageInvalidPhone}
		}
	}

	return nil
}
