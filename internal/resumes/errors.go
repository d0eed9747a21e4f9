package resumes

import (
	"errors"
	"strings"
)

var (
	// ErrValidation indicates malformed or missing input. *ValidationError wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates no resume matches the owner/version pair.
	ErrNotFound = errors.New("resume version not found")

	// ErrVersionConflict indicates the (owner, version) uniqueness constraint rejected a write.
	ErrVersionConflict = errors.New("resume version conflict")

	// ErrStorageUnavailable indicates the backing store could not be reached in time.
	ErrStorageUnavailable = errors.New("resume storage unavailable")
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries the per-field reasons a payload was rejected.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalidField(field, rule, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule, Message: message}}}
}
