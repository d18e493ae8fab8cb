package errs

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError lists the request fields that were missing or malformed.
type ValidationError struct {
	Fields []string
	reason string
}

func NewValidationError(reason string, fields ...string) *ValidationError {
	uniq := make([]string, 0, len(fields))
	for _, f := range fields {
		if !slices.Contains(uniq, f) {
			uniq = append(uniq, f)
		}
	}
	return &ValidationError{Fields: uniq, reason: reason}
}

func (e *ValidationError) Error() string {
	msg := e.reason
	if msg == "" {
		msg = ErrValidation.Error()
	}
	if len(e.Fields) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HasField reports whether err is a ValidationError naming field.
func HasField(err error, field string) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	return slices.Contains(ve.Fields, field)
}

// ValidationFields returns the offending fields carried by err, if any.
func ValidationFields(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
