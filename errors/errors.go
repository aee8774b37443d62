// Package errors provides structured error types for environment variable
// resolution. Each error carries a machine-readable code, the variable key
// it concerns, and a free-form details map for diagnostic context.
package errors

import (
	stderrors "errors"
	"fmt"
)

// EnvError is the unified resolution error type.
type EnvError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Key is the environment variable the error concerns, if known.
	Key string `json:"key,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *EnvError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *EnvError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *EnvError) WithCause(cause error) *EnvError {
	e.Cause = cause
	return e
}

// WithKey sets the variable key on the error and its details map, and
// returns the receiver.
func (e *EnvError) WithKey(key string) *EnvError {
	e.Key = key
	return e.WithDetail("key", key)
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *EnvError) WithDetails(details map[string]any) *EnvError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *EnvError) WithDetail(key string, value any) *EnvError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new EnvError with the given code and message.
func New(code ErrorCode, message string) *EnvError {
	return &EnvError{Code: code, Message: message}
}

// --- Constructors, one per failure kind ---

// Missing creates a new EnvError for a variable that is absent and has no
// usable default.
func Missing(key string) *EnvError {
	return &EnvError{
		Code: ErrCodeMissingVariable, Message: fmt.Sprintf("Environment variable %q is not set.", key),
		Key:     key,
		Details: map[string]any{"key": key},
	}
}

// Assertion creates a new EnvError for a predicate that rejected the current
// value. The provided context is merged into the details map, then the
// failing key and value always overwrite any same-named context fields.
func Assertion(key string, value any, context map[string]any) *EnvError {
	details := make(map[string]any, len(context)+2)
	for k, v := range context {
		details[k] = v
	}
	details["key"] = key
	details["value"] = value

	message := fmt.Sprintf("Environment variable %q failed validation.", key)
	if desc, ok := context["description"].(string); ok && desc != "" {
		message = fmt.Sprintf("Environment variable %q failed validation: %s.", key, desc)
	}

	return &EnvError{
		Code: ErrCodeFailedAssertion, Message: message,
		Key: key, Details: details,
	}
}

// Conversion creates a new EnvError for a raw value that could not be
// interpreted as the target type. Converters do not know which key their
// input came from; callers annotate the key via WithKey where available.
func Conversion(raw any, target string) *EnvError {
	return &EnvError{
		Code: ErrCodeFailedConversion, Message: fmt.Sprintf("Value %v cannot be converted to %s.", raw, target),
		Details: map[string]any{"value": raw, "expected": target},
	}
}

// Transform creates a new EnvError for a caller-supplied transform that
// reported an error.
func Transform(key string, cause error) *EnvError {
	return &EnvError{
		Code: ErrCodeFailedTransform, Message: fmt.Sprintf("Transform of environment variable %q failed.", key),
		Key:     key,
		Details: map[string]any{"key": key},
		Cause:   cause,
	}
}

// --- Code predicates ---

// IsMissing returns true if err is an EnvError with code MISSING_VARIABLE.
func IsMissing(err error) bool { return hasCode(err, ErrCodeMissingVariable) }

// IsAssertion returns true if err is an EnvError with code FAILED_ASSERTION.
func IsAssertion(err error) bool { return hasCode(err, ErrCodeFailedAssertion) }

// IsConversion returns true if err is an EnvError with code FAILED_CONVERSION.
func IsConversion(err error) bool { return hasCode(err, ErrCodeFailedConversion) }

// IsTransform returns true if err is an EnvError with code FAILED_TRANSFORM.
func IsTransform(err error) bool { return hasCode(err, ErrCodeFailedTransform) }

func hasCode(err error, code ErrorCode) bool {
	var envErr *EnvError
	if !stderrors.As(err, &envErr) {
		return false
	}
	return envErr.Code == code
}
